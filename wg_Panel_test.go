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

// play, mute and timeline split the footer without overlapping, so a click
// always hits exactly one control.
func TestPanelFooterLayout(t *testing.T) {
	ui := &Ui{win: &Win{io: &WinIO{Ini: WinIni{Cell: 40}}}}
	pn := NewPanel(ui, 0)

	footer := InitOsV4(100, 500, 400, 40)

	play := pn.footerPlayCoord(footer)
	mute := pn.footerMuteCoord(footer)
	tml := pn.footerTimelineCoord(footer)

	assert.Equal(t, footer.Start, play.Start)
	assert.Equal(t, play.End().X, mute.Start.X)
	assert.GreaterOrEqual(t, tml.Start.X, mute.End().X)
	assert.LessOrEqual(t, tml.End().X, footer.End().X)

	assert.False(t, play.Inside(mute.Middle()))
	assert.False(t, mute.Inside(tml.Middle()))
	assert.True(t, footer.Inside(tml.Middle()))
}
