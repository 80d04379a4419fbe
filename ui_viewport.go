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

const (
	VIEWPORT_MIN_SCALE = 0.1
	VIEWPORT_MAX_SCALE = 10.0

	VIEWPORT_BUTTON_ZOOM_IN  = 1.25
	VIEWPORT_BUTTON_ZOOM_OUT = 0.8
)

// Viewport is the user pan/zoom on top of a panel's auto-fit scale.
// Offsets are pixels relative to the panel center and are deliberately
// unclamped - panning media fully off-canvas is allowed.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func InitViewport() Viewport {
	return Viewport{Scale: 1}
}

func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// ZoomAt multiplies the scale and compensates the offsets, so the point under
// the pivot stays put on screen. Scale is clamped *before* the offset math,
// otherwise the pivot starts creeping once a zoom limit is hit repeatedly.
func (v Viewport) ZoomAt(factor, pivotX, pivotY float64) Viewport {
	newScale := OsClampFloat(v.Scale*factor, VIEWPORT_MIN_SCALE, VIEWPORT_MAX_SCALE)

	scaleDiff := newScale / v.Scale

	v.OffsetX = pivotX - (pivotX-v.OffsetX)*scaleDiff
	v.OffsetY = pivotY - (pivotY-v.OffsetY)*scaleDiff
	v.Scale = newScale
	return v
}

// ZoomAbsolute is ZoomAt() for gestures which report a cumulative target scale
// instead of a multiplicative step(pinch).
func (v Viewport) ZoomAbsolute(targetScale, pivotX, pivotY float64) Viewport {
	return v.ZoomAt(targetScale/v.Scale, pivotX, pivotY)
}

type MediaKind int

const (
	MediaKind_Image MediaKind = 0
	MediaKind_Video MediaKind = 1
)

// MediaInfo is computed once when a file finishes decoding. BaseScale is a
// snapshot of the container size at load time - later panel resizes don't
// recompute it, the comparison reference stays stable.
type MediaInfo struct {
	NaturalW  int
	NaturalH  int
	BaseScale float64
	Kind      MediaKind
}

func InitMediaInfo(naturalW, naturalH int, containerW, containerH float64, kind MediaKind) *MediaInfo {
	return &MediaInfo{
		NaturalW:  naturalW,
		NaturalH:  naturalH,
		BaseScale: ComputeBaseScale(naturalW, naturalH, containerW, containerH),
		Kind:      kind,
	}
}

// ComputeBaseScale returns the auto-fit factor which makes the media fit the
// container. Never upscales(max 1.0) - only the user zoom may magnify.
func ComputeBaseScale(naturalW, naturalH int, containerW, containerH float64) float64 {
	if naturalW <= 0 || naturalH <= 0 {
		return 1.0
	}
	if containerW <= 0 || containerH <= 0 {
		return 1.0 //container not layouted yet
	}

	scaleX := containerW / float64(naturalW)
	scaleY := containerH / float64(naturalH)

	return OsMinFloat(OsMinFloat(scaleX, scaleY), 1.0)
}

// DisplayTrans is what the renderer applies: a 2D transform anchored at the
// panel's visual center.
type DisplayTrans struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

func (v Viewport) Display(baseScale float64) DisplayTrans {
	return DisplayTrans{
		TranslateX: v.OffsetX,
		TranslateY: v.OffsetY,
		Scale:      v.Scale * baseScale,
	}
}
