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

// PinchSession is captured at gesture start and consumed through the whole
// gesture. The pivot does not follow the fingers mid-pinch.
type PinchSession struct {
	initScale   float64
	initOffsetX float64
	initOffsetY float64
	pivotX      float64
	pivotY      float64
}

// Gestures turns raw input events into Viewport updates for one panel. It is
// a long-lived object, so handlers always read the current transform, never a
// value captured at registration time.
type Gestures struct {
	view    Viewport
	enabled bool

	dragging bool
	dragRef  Viewport //pre-drag transform, drag deltas are cumulative

	pinching bool
	pinch    PinchSession

	changed func(old, new Viewport) //called on every successful transition
}

func NewGestures(changed func(old, new Viewport)) *Gestures {
	return &Gestures{view: InitViewport(), changed: changed}
}

func (gs *Gestures) View() Viewport {
	return gs.view
}

// SetView replaces the transform without firing the changed callback. Used by
// the session for sync propagation and the atomic both-panel operations.
func (gs *Gestures) SetView(v Viewport) {
	gs.view = v
}

// SetEnabled turns the whole controller into a no-op. A panel without loaded
// media(or still loading) must not react to input - absence of media is a
// normal state, not a fault.
func (gs *Gestures) SetEnabled(enable bool) {
	gs.enabled = enable
	if !enable {
		gs.dragging = false
		gs.pinching = false
	}
}

func (gs *Gestures) IsActive() bool {
	return gs.dragging || gs.pinching
}

func (gs *Gestures) apply(v Viewport) {
	old := gs.view
	gs.view = v
	if gs.changed != nil {
		gs.changed(old, v)
	}
}

func (gs *Gestures) DragStart() {
	if !gs.enabled {
		return
	}
	gs.dragging = true
	gs.dragRef = gs.view
}

// DragMove takes the *cumulative* movement since DragStart, so panning is
// computed from the captured reference and never accumulates drift.
func (gs *Gestures) DragMove(dx, dy float64) {
	if !gs.enabled || !gs.dragging {
		return
	}
	gs.apply(gs.dragRef.Pan(dx, dy))
}

func (gs *Gestures) DragEnd() {
	gs.dragging = false
}

// PinchStart captures the session. pivotX/Y are already panel-center-relative.
func (gs *Gestures) PinchStart(pivotX, pivotY float64) {
	if !gs.enabled {
		return
	}
	gs.pinching = true
	gs.pinch = PinchSession{
		initScale:   gs.view.Scale,
		initOffsetX: gs.view.OffsetX,
		initOffsetY: gs.view.OffsetY,
		pivotX:      pivotX,
		pivotY:      pivotY,
	}
}

// PinchMove takes the cumulative scale multiplier the gesture reports since
// its start.
func (gs *Gestures) PinchMove(cumulativeScale float64) {
	if !gs.enabled || !gs.pinching {
		return
	}
	target := gs.pinch.initScale * cumulativeScale
	gs.apply(gs.view.ZoomAbsolute(target, gs.pinch.pivotX, gs.pinch.pivotY))
}

func (gs *Gestures) PinchEnd() {
	gs.pinching = false
}

// Wheel classifies and applies a wheel event. pivotX/Y is the pointer position
// relative to the panel center. The returned action lets the caller suppress
// the host's back/forward navigation on horizontal wheels.
func (gs *Gestures) Wheel(deltaX, deltaY float64, ctrl bool, pivotX, pivotY float64) WheelAction {
	act := ClassifyWheel(deltaX, deltaY, ctrl)
	if !gs.enabled {
		return act
	}

	switch act.Intent {
	case WheelIntent_Pan:
		gs.apply(gs.view.Pan(act.PanX, act.PanY))
	case WheelIntent_Zoom:
		gs.apply(gs.view.ZoomAt(act.ZoomFactor, pivotX, pivotY))
	}
	return act
}

// Cancel abandons a running drag or pinch(pointer-leave, lost touch point).
func (gs *Gestures) Cancel() {
	gs.dragging = false
	gs.pinching = false
}
