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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportPan(t *testing.T) {
	v := Viewport{Scale: 2.5, OffsetX: 10, OffsetY: -3}

	got := v.Pan(7, 13)

	assert.Equal(t, 2.5, got.Scale, "pan must not touch the scale")
	assert.Equal(t, 17.0, got.OffsetX)
	assert.Equal(t, 10.0, got.OffsetY)

	//original value untouched
	assert.Equal(t, 10.0, v.OffsetX)
}

func TestViewportZoomAt(t *testing.T) {
	tests := []struct {
		name           string
		view           Viewport
		factor         float64
		pivotX, pivotY float64
		want           Viewport
	}{
		{
			name:   "zoom in right of center",
			view:   Viewport{Scale: 1},
			factor: 1.1, pivotX: 50,
			want: Viewport{Scale: 1.1, OffsetX: -5, OffsetY: 0},
		},
		{
			name:   "zoom at center keeps offsets scaled",
			view:   Viewport{Scale: 2, OffsetX: 30, OffsetY: -10},
			factor: 2,
			want:   Viewport{Scale: 4, OffsetX: 60, OffsetY: -20},
		},
		{
			name:   "clamp at max",
			view:   Viewport{Scale: 8},
			factor: 2,
			want:   Viewport{Scale: 10},
		},
		{
			name:   "clamp at min",
			view:   Viewport{Scale: 0.2},
			factor: 0.1,
			want:   Viewport{Scale: 0.1},
		},
		{
			name:   "identity factor",
			view:   Viewport{Scale: 3, OffsetX: 5, OffsetY: 5},
			factor: 1, pivotX: 100, pivotY: 100,
			want: Viewport{Scale: 3, OffsetX: 5, OffsetY: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.view.ZoomAt(tt.factor, tt.pivotX, tt.pivotY)
			assert.InDelta(t, tt.want.Scale, got.Scale, 1e-12)
			assert.InDelta(t, tt.want.OffsetX, got.OffsetX, 1e-9)
			assert.InDelta(t, tt.want.OffsetY, got.OffsetY, 1e-9)
		})
	}
}

// The point under the pivot must not move on screen, even across clamping.
func TestViewportZoomAt_pivotStability(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	v := InitViewport()
	for i := 0; i < 500; i++ {
		factor := 0.5 + rnd.Float64()*2 //<0.5, 2.5>
		px := (rnd.Float64() - 0.5) * 800
		py := (rnd.Float64() - 0.5) * 600

		got := v.ZoomAt(factor, px, py)

		//world point under the pivot, mapped through old and new transform
		wx := (px - v.OffsetX) / v.Scale
		wy := (py - v.OffsetY) / v.Scale
		assert.InDelta(t, px, wx*got.Scale+got.OffsetX, 1e-6)
		assert.InDelta(t, py, wy*got.Scale+got.OffsetY, 1e-6)

		v = got
	}
}

// Scale must stay inside <0.1, 10> for any sequence of zooms.
func TestViewportZoom_clampInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	v := InitViewport()
	for i := 0; i < 2000; i++ {
		if i%2 == 0 {
			v = v.ZoomAt(rnd.Float64()*8, (rnd.Float64()-0.5)*1000, (rnd.Float64()-0.5)*1000)
		} else {
			v = v.ZoomAbsolute(rnd.Float64()*50, 0, 0)
		}
		require.GreaterOrEqual(t, v.Scale, VIEWPORT_MIN_SCALE)
		require.LessOrEqual(t, v.Scale, VIEWPORT_MAX_SCALE)
	}
}

func TestViewportZoomAbsolute(t *testing.T) {
	v := Viewport{Scale: 2, OffsetX: 10}

	//target 4 == factor 2
	a := v.ZoomAbsolute(4, 50, 0)
	b := v.ZoomAt(2, 50, 0)
	assert.Equal(t, b, a)

	//unclamped target delegates to the same clamp
	c := v.ZoomAbsolute(100, 0, 0)
	assert.Equal(t, VIEWPORT_MAX_SCALE, c.Scale)
}

func TestViewportReset(t *testing.T) {
	//reset ignores prior state and is idempotent
	v := Viewport{Scale: 7, OffsetX: -300, OffsetY: 99}
	v = InitViewport()
	assert.Equal(t, Viewport{Scale: 1, OffsetX: 0, OffsetY: 0}, v)

	v = InitViewport()
	assert.Equal(t, Viewport{Scale: 1, OffsetX: 0, OffsetY: 0}, v)
}

func TestComputeBaseScale(t *testing.T) {
	tests := []struct {
		name                     string
		naturalW, naturalH       int
		containerW, containerH   float64
		want                     float64
	}{
		//2000x1000 into the usable half-window area of a 800x600 window
		{"wide media", 2000, 1000, 368, 568, 0.184},
		{"small media never upscaled", 100, 100, 500, 500, 1.0},
		{"tall media", 100, 1000, 500, 500, 0.5},
		{"exact fit", 640, 480, 640, 480, 1.0},
		{"container not layouted", 1000, 1000, 0, 0, 1.0},
		{"invalid natural size", 0, 0, 500, 500, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBaseScale(tt.naturalW, tt.naturalH, tt.containerW, tt.containerH)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestComputeBaseScale_bound(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		s := ComputeBaseScale(1+rnd.Intn(5000), 1+rnd.Intn(5000), 1+rnd.Float64()*3000, 1+rnd.Float64()*3000)
		require.Greater(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
	}
}

func TestDisplayTrans(t *testing.T) {
	v := Viewport{Scale: 2, OffsetX: 15, OffsetY: -4}

	d := v.Display(0.184)

	assert.InDelta(t, 0.368, d.Scale, 1e-12)
	assert.Equal(t, 15.0, d.TranslateX)
	assert.Equal(t, -4.0, d.TranslateY)
}
