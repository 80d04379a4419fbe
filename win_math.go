/*
Copyright 2025 Milan Suk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this db except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"math"
)

type OsV2f struct {
	X float32
	Y float32
}

func (a OsV2f) Mul(b OsV2f) OsV2f {
	return OsV2f{a.X * b.X, a.Y * b.Y}
}

type OsV2 struct {
	X int
	Y int
}

func OsV2_32(x, y int32) OsV2 {
	return OsV2{int(x), int(y)}
}

func (v *OsV2) Get32() (int32, int32) {
	return int32(v.X), int32(v.Y)
}

func (a OsV2) Add(b OsV2) OsV2 {
	return OsV2{a.X + b.X, a.Y + b.Y}
}
func (a OsV2) Sub(b OsV2) OsV2 {
	return OsV2{a.X - b.X, a.Y - b.Y}
}
func (a OsV2) MulV(t float32) OsV2 {
	return OsV2{int(float32(a.X) * t), int(float32(a.Y) * t)}
}

func (a OsV2) Cmp(b OsV2) bool {
	return a.X == b.X && a.Y == b.Y
}

func (start OsV2) Inside(end OsV2, test OsV2) bool {
	return test.X >= start.X && test.Y >= start.Y && test.X < end.X && test.Y < end.Y
}

func (v OsV2) Is() bool {
	return v.X != 0 && v.Y != 0
}

func (v OsV2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v OsV2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (a OsV2) Distance(b OsV2) float32 {
	return a.Sub(b).Len()
}

type OsV4 struct {
	Start OsV2
	Size  OsV2
}

func InitOsV4(x, y, w, h int) OsV4 {
	return OsV4{OsV2{x, y}, OsV2{w, h}}
}

func InitOsV4Mid(mid OsV2, size OsV2) OsV4 {
	return InitOsV4(mid.X-size.X/2, mid.Y-size.Y/2, size.X, size.Y)
}

func (v OsV4) End() OsV2 {
	return OsV2{v.Start.X + v.Size.X, v.Start.Y + v.Size.Y}
}

func (v OsV4) Is() bool {
	return v.Size.Is()
}

func (q OsV4) CropX(space int) OsV4 {
	space *= 2
	if space > q.Size.X {
		space = q.Size.X
	}
	return InitOsV4(q.Start.X+space/2, q.Start.Y, q.Size.X-space, q.Size.Y)
}

func (q OsV4) CropY(space int) OsV4 {
	space *= 2
	if space > q.Size.Y {
		space = q.Size.Y
	}
	return InitOsV4(q.Start.X, q.Start.Y+space/2, q.Size.X, q.Size.Y-space)
}

func (q OsV4) Crop(space int) OsV4 {
	r := q.CropX(space)
	return r.CropY(space)
}

func (v OsV4) Middle() OsV2 {
	return v.Start.Add(v.Size.MulV(0.5))
}

func (v OsV4) Inside(test OsV2) bool {
	return v.Start.Inside(v.End(), test)
}

func (a OsV4) Cmp(b OsV4) bool {
	return a.Start.Cmp(b.Start) && a.Size.Cmp(b.Size)
}

func (coord OsV4) Align(size OsV2, align OsV2) OsV2 {
	start := coord.Start

	if align.X == 0 {
		// left
	} else if align.X == 1 {
		// center
		if size.X > coord.Size.X {
			start.X = coord.Start.X
		} else {
			start.X = coord.Middle().X - size.X/2
		}
	} else {
		// right
		start.X = coord.End().X - size.X
	}

	// y
	if size.Y >= coord.Size.Y {
		start.Y += (coord.Size.Y - size.Y) / 2
	} else {
		if align.Y == 0 {
			start.Y = coord.Start.Y
		} else if align.Y == 1 {
			start.Y += (coord.Size.Y - size.Y) / 2
		} else if align.Y == 2 {
			start.Y += (coord.Size.Y) - size.Y
		}
	}

	return start
}
