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

import "math"

// Trackpads report many small continuous deltas, mouse wheel notches report
// large discrete ones(typically >=100). Tunable heuristic, not a physical law.
const TRACKPAD_DELTA_THRESHOLD = 40.0

const (
	WHEEL_ZOOM_IN  = 1.1
	WHEEL_ZOOM_OUT = 0.9
)

type WheelIntent int

const (
	WheelIntent_Ignore WheelIntent = 0
	WheelIntent_Pan    WheelIntent = 1
	WheelIntent_Zoom   WheelIntent = 2
)

type WheelAction struct {
	Intent WheelIntent

	PanX, PanY float64 //WheelIntent_Pan
	ZoomFactor float64 //WheelIntent_Zoom

	Horizontal bool //dominant dx, caller must suppress back/forward navigation
}

// ClassifyWheel decides whether a wheel event means scrolling(trackpad) or
// zoom steps(mouse notches). Ctrl+wheel is reserved for the app zoom(cell
// size), so it is ignored here.
func ClassifyWheel(deltaX, deltaY float64, ctrl bool) WheelAction {
	horizontal := math.Abs(deltaX) > math.Abs(deltaY)

	if ctrl {
		return WheelAction{Intent: WheelIntent_Ignore, Horizontal: horizontal}
	}

	if math.Abs(deltaY) < TRACKPAD_DELTA_THRESHOLD {
		return WheelAction{Intent: WheelIntent_Pan, PanX: -deltaX, PanY: -deltaY, Horizontal: horizontal}
	}

	//fixed multiplicative steps, not proportional to the delta magnitude
	factor := WHEEL_ZOOM_IN
	if deltaY > 0 {
		factor = WHEEL_ZOOM_OUT //scroll down = zoom out
	}
	return WheelAction{Intent: WheelIntent_Zoom, ZoomFactor: factor, Horizontal: horizontal}
}
