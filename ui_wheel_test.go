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
)

func TestClassifyWheel(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     float64
		ctrl       bool
		wantIntent WheelIntent
		wantFactor float64
		wantHoriz  bool
	}{
		{name: "ctrl is reserved", dy: 120, ctrl: true, wantIntent: WheelIntent_Ignore},
		{name: "mouse notch down", dy: 120, wantIntent: WheelIntent_Zoom, wantFactor: WHEEL_ZOOM_OUT},
		{name: "mouse notch up", dy: -120, wantIntent: WheelIntent_Zoom, wantFactor: WHEEL_ZOOM_IN},
		{name: "trackpad scroll", dy: 12, wantIntent: WheelIntent_Pan},
		{name: "trackpad scroll up", dy: -30, wantIntent: WheelIntent_Pan},
		{name: "threshold itself is a notch", dy: TRACKPAD_DELTA_THRESHOLD, wantIntent: WheelIntent_Zoom, wantFactor: WHEEL_ZOOM_OUT},
		{name: "just under threshold pans", dy: TRACKPAD_DELTA_THRESHOLD - 0.001, wantIntent: WheelIntent_Pan},
		{name: "horizontal dominant is flagged", dx: 50, dy: 10, wantIntent: WheelIntent_Pan, wantHoriz: true},
		{name: "horizontal notch still zooms on dy", dx: 30, dy: 120, wantIntent: WheelIntent_Zoom, wantFactor: WHEEL_ZOOM_OUT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act := ClassifyWheel(tt.dx, tt.dy, tt.ctrl)

			assert.Equal(t, tt.wantIntent, act.Intent)
			assert.Equal(t, tt.wantHoriz, act.Horizontal)
			if tt.wantIntent == WheelIntent_Zoom {
				assert.Equal(t, tt.wantFactor, act.ZoomFactor)
			}
		})
	}
}

// Pan deltas move content along the scroll direction(inverted deltas).
func TestClassifyWheel_panDeltas(t *testing.T) {
	act := ClassifyWheel(6, 20, false)

	assert.Equal(t, WheelIntent_Pan, act.Intent)
	assert.Equal(t, -6.0, act.PanX)
	assert.Equal(t, -20.0, act.PanY)
}
