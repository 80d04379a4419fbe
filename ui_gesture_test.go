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

func newTestGestures() (*Gestures, *int) {
	emits := 0
	gs := NewGestures(func(old, new Viewport) {
		emits++
	})
	gs.SetEnabled(true)
	return gs, &emits
}

func TestGesturesDrag_cumulative(t *testing.T) {
	gs, emits := newTestGestures()
	gs.SetView(Viewport{Scale: 1, OffsetX: 100, OffsetY: 50})

	gs.DragStart()
	gs.DragMove(10, 0)
	gs.DragMove(20, 5)
	gs.DragMove(30, -5) //cumulative since start, not per-frame

	v := gs.View()
	assert.Equal(t, 130.0, v.OffsetX)
	assert.Equal(t, 45.0, v.OffsetY)
	assert.Equal(t, 3, *emits)

	gs.DragEnd()
	gs.DragMove(500, 500) //ignored after end
	assert.Equal(t, 130.0, gs.View().OffsetX)
}

func TestGesturesDrag_noDriftOnRepeat(t *testing.T) {
	gs, _ := newTestGestures()

	gs.DragStart()
	for i := 0; i < 100; i++ {
		gs.DragMove(10, 10) //same cumulative delta reported repeatedly
	}
	gs.DragEnd()

	assert.Equal(t, 10.0, gs.View().OffsetX)
	assert.Equal(t, 10.0, gs.View().OffsetY)
}

func TestGesturesPinch(t *testing.T) {
	gs, _ := newTestGestures()
	gs.SetView(Viewport{Scale: 2})

	gs.PinchStart(40, 0)
	gs.PinchMove(1.5) //cumulative multiplier => target 3.0

	v := gs.View()
	require.InDelta(t, 3.0, v.Scale, 1e-12)

	//pivot kept: world point under (40,0) stays under (40,0)
	assert.InDelta(t, 40.0, (40.0/2.0)*v.Scale+v.OffsetX, 1e-9)

	//pivot does not follow fingers mid-pinch; scale is absolute from session start
	gs.PinchMove(1.0)
	assert.InDelta(t, 2.0, gs.View().Scale, 1e-12)

	gs.PinchEnd()
	gs.PinchMove(9)
	assert.InDelta(t, 2.0, gs.View().Scale, 1e-12, "pinch after end is ignored")
}

func TestGesturesWheel(t *testing.T) {
	gs, emits := newTestGestures()

	act := gs.Wheel(0, -120, false, 50, 0)
	assert.Equal(t, WheelIntent_Zoom, act.Intent)
	assert.InDelta(t, 1.1, gs.View().Scale, 1e-12)
	assert.InDelta(t, -5.0, gs.View().OffsetX, 1e-9)

	gs.SetView(InitViewport())
	*emits = 0

	act = gs.Wheel(0, 10, false, 0, 0)
	assert.Equal(t, WheelIntent_Pan, act.Intent)
	assert.Equal(t, -10.0, gs.View().OffsetY)
	assert.Equal(t, 1, *emits)

	//ctrl+wheel must pass through untouched
	before := gs.View()
	act = gs.Wheel(0, 240, true, 0, 0)
	assert.Equal(t, WheelIntent_Ignore, act.Intent)
	assert.Equal(t, before, gs.View())
}

func TestGesturesDisabled(t *testing.T) {
	gs, emits := newTestGestures()
	gs.SetEnabled(false) //no media loaded

	gs.DragStart()
	gs.DragMove(10, 10)
	gs.PinchStart(0, 0)
	gs.PinchMove(3)
	gs.Wheel(0, -120, false, 0, 0)

	assert.Equal(t, InitViewport(), gs.View())
	assert.Equal(t, 0, *emits)
	assert.False(t, gs.IsActive())
}

func TestGesturesCancel(t *testing.T) {
	gs, _ := newTestGestures()

	gs.DragStart()
	require.True(t, gs.IsActive())

	gs.Cancel() //pointer-leave or lost touch point
	assert.False(t, gs.IsActive())

	gs.DragMove(50, 50)
	assert.Equal(t, InitViewport(), gs.View())
}

// Disabling mid-gesture(media replaced under the finger) abandons the session.
func TestGesturesDisableWhileDragging(t *testing.T) {
	gs, _ := newTestGestures()

	gs.DragStart()
	gs.DragMove(5, 5)

	gs.SetEnabled(false)
	assert.False(t, gs.IsActive())

	gs.SetEnabled(true)
	gs.DragMove(100, 100) //no DragStart since => ignored
	assert.Equal(t, 5.0, gs.View().OffsetX)
}
