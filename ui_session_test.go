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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	ss := NewSession()
	ss.SetMedia(0, InitMediaInfo(2000, 1000, 368, 568, MediaKind_Image))
	ss.SetMedia(1, InitMediaInfo(800, 800, 368, 568, MediaKind_Image))
	return ss
}

func TestPropagate(t *testing.T) {
	srcOld := Viewport{Scale: 2, OffsetX: 10, OffsetY: 0}
	srcNew := Viewport{Scale: 4, OffsetX: 30, OffsetY: 0} //ratio 2, dx 20
	target := Viewport{Scale: 1, OffsetX: 0, OffsetY: 0}

	got := Propagate(srcOld, srcNew, target)

	assert.InDelta(t, 2.0, got.Scale, 1e-12)
	assert.InDelta(t, 20.0, got.OffsetX, 1e-12)
	assert.InDelta(t, 0.0, got.OffsetY, 1e-12)
}

// Both panels must end up scaled by the same ratio relative to their own
// pre-update scale, whatever their base scales are.
func TestSessionSync_deltaEquivalence(t *testing.T) {
	ss := newTestSession()

	ss.Panels[0].SetView(Viewport{Scale: 2, OffsetX: 5})
	ss.Panels[1].SetView(Viewport{Scale: 0.5, OffsetX: -40})

	a0 := ss.Panels[0].View().Scale
	b0 := ss.Panels[1].View().Scale

	ss.Panels[0].Wheel(0, -120, false, 100, 20) //zoom in on panel A

	a1 := ss.Panels[0].View().Scale
	b1 := ss.Panels[1].View().Scale
	require.InDelta(t, a1/a0, b1/b0, 1e-12)

	//and the pan delta is copied verbatim
	offB := ss.Panels[1].View().OffsetX
	ss.Panels[0].DragStart()
	ss.Panels[0].DragMove(33, 0)
	assert.InDelta(t, offB+33, ss.Panels[1].View().OffsetX, 1e-12)
}

func TestSessionUnlocked_isolates(t *testing.T) {
	ss := newTestSession()
	ss.ToggleLock()
	require.False(t, ss.Locked)

	before := ss.Panels[1].View()

	ss.Panels[0].Wheel(0, -120, false, 0, 0)
	ss.Panels[0].DragStart()
	ss.Panels[0].DragMove(100, 100)

	assert.Equal(t, before, ss.Panels[1].View(), "unlocked panels are independent")

	//re-locking does not retroactively re-align
	ss.ToggleLock()
	assert.Equal(t, before, ss.Panels[1].View())

	//...but couples the next gesture again
	ss.Panels[0].Wheel(0, 10, false, 0, 0)
	assert.NotEqual(t, before, ss.Panels[1].View())
}

func TestSessionZoomStep(t *testing.T) {
	ss := newTestSession()

	ss.ZoomStep(true)
	assert.InDelta(t, 1.25, ss.Panels[0].View().Scale, 1e-12)
	assert.InDelta(t, 1.25, ss.Panels[1].View().Scale, 1e-12)

	ss.ZoomStep(false)
	assert.InDelta(t, 1.0, ss.Panels[0].View().Scale, 1e-12)
	assert.InDelta(t, 1.0, ss.Panels[1].View().Scale, 1e-12)
}

// A locked zoom step near a clamp limit must narrow the step for both sides,
// never let one side hit the wall alone.
func TestSessionZoomStep_lockedClamp(t *testing.T) {
	ss := newTestSession()
	ss.Panels[0].SetView(Viewport{Scale: 9})
	ss.Panels[1].SetView(Viewport{Scale: 2})

	ss.ZoomStep(true) //9*1.25 would exceed 10 => factor narrowed to 10/9

	a := ss.Panels[0].View().Scale
	b := ss.Panels[1].View().Scale
	assert.InDelta(t, 10.0, a, 1e-9)
	assert.InDelta(t, 2.0*(10.0/9.0), b, 1e-9)
	require.InDelta(t, a/9.0, b/2.0, 1e-12, "identical ratio on both sides")
}

func TestSessionReset(t *testing.T) {
	ss := newTestSession()
	ss.Panels[0].SetView(Viewport{Scale: 4, OffsetX: 100, OffsetY: -3})
	ss.Panels[1].SetView(Viewport{Scale: 0.3, OffsetX: 7, OffsetY: 9})

	ss.ResetView()

	assert.Equal(t, InitViewport(), ss.Panels[0].View())
	assert.Equal(t, InitViewport(), ss.Panels[1].View())
}

func TestSessionDisplay(t *testing.T) {
	ss := newTestSession()
	//2000x1000 media in 368x568 container => base scale 0.184
	ss.Panels[0].SetView(Viewport{Scale: 2, OffsetX: 12, OffsetY: 0})

	d := ss.Display(0)
	assert.InDelta(t, 0.368, d.Scale, 1e-12)
	assert.Equal(t, 12.0, d.TranslateX)

	//no media => identity base
	ss.ClearMedia(0)
	d = ss.Display(0)
	assert.InDelta(t, 2.0, d.Scale, 1e-12)
}

func TestSessionSwap(t *testing.T) {
	ss := newTestSession()
	ss.Panels[0].SetView(Viewport{Scale: 3, OffsetX: 1})
	ss.Panels[1].SetView(Viewport{Scale: 0.5, OffsetX: 2})
	mA, mB := ss.Media[0], ss.Media[1]

	ss.Swap()

	assert.Equal(t, mB, ss.Media[0])
	assert.Equal(t, mA, ss.Media[1])
	assert.Equal(t, 0.5, ss.Panels[0].View().Scale)
	assert.Equal(t, 3.0, ss.Panels[1].View().Scale)
}

func TestSessionMedia_enablesGestures(t *testing.T) {
	ss := NewSession()

	//nothing loaded => gestures are no-ops
	ss.Panels[0].Wheel(0, -120, false, 0, 0)
	assert.Equal(t, InitViewport(), ss.Panels[0].View())

	ss.SetMedia(0, InitMediaInfo(100, 100, 500, 500, MediaKind_Image))
	ss.Panels[0].Wheel(0, -120, false, 0, 0)
	assert.InDelta(t, 1.1, ss.Panels[0].View().Scale, 1e-12)

	//clearing disables again and abandons any running gesture
	ss.Panels[0].DragStart()
	ss.ClearMedia(0)
	assert.False(t, ss.Panels[0].IsActive())
}
