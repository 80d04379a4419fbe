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
	"fmt"
	"image/color"

	"mediff/media"
)

// how far two locked videos may drift before the right side is re-seeked
const UI_VIDEO_SYNC_DRIFT_MS = 300

type Ui struct {
	win *Win

	media *media.Media

	session *Session
	panels  [2]*Panel
	toolbar *Toolbar

	recents *Recents

	last_sync_ticks int64
}

func NewUi(win *Win) (*Ui, error) {
	ui := &Ui{win: win}

	ui.session = NewSession()
	ui.panels[0] = NewPanel(ui, 0)
	ui.panels[1] = NewPanel(ui, 1)
	ui.toolbar = NewToolbar(ui)

	var err error
	ui.media, err = media.NewMedia(func(path string) {
		for _, pn := range ui.panels {
			pn.Changed(path)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("NewMedia() failed: %w", err)
	}

	ui.recents, err = NewRecents("cache.sqlite")
	if err != nil {
		return nil, fmt.Errorf("NewRecents() failed: %w", err)
	}

	return ui, nil
}

func (ui *Ui) Destroy() {
	ui.media.Destroy()
	ui.recents.Destroy()

	for _, pn := range ui.panels {
		pn.Destroy()
	}
}

func (ui *Ui) Cell() int {
	return ui.win.io.Ini.Cell
}

func (ui *Ui) GetPalette() *DevPalette {
	return &DevPalette{
		P:   color.RGBA{37, 100, 235, 255},
		S:   color.RGBA{85, 95, 100, 255},
		E:   color.RGBA{180, 40, 30, 255},
		B:   color.RGBA{250, 250, 250, 255},
		OnP: color.RGBA{255, 255, 255, 255},
		OnS: color.RGBA{255, 255, 255, 255},
		OnE: color.RGBA{255, 255, 255, 255},
		OnB: color.RGBA{25, 25, 25, 255},
	}
}

// Open loads a path(file or http url) into one side.
func (ui *Ui) Open(side int, path string) {
	if path == "" {
		return
	}

	ui.panels[side].SetPath(path)

	err := ui.recents.Add(ui.panels[0].path, ui.panels[1].path)
	LogsError(err)
}

// OpenLast restores the previously compared pair.
func (ui *Ui) OpenLast() {
	left, right := ui.recents.Last()
	ui.Open(0, left)
	ui.Open(1, right)
}

func (ui *Ui) SwapSides() {
	ui.session.Swap()

	// textures travel with the sides, nothing reloads
	ui.panels[0].path, ui.panels[1].path = ui.panels[1].path, ui.panels[0].path
	ui.panels[0].img, ui.panels[1].img = ui.panels[1].img, ui.panels[0].img

	ui.win.SetRedraw()
}

// ActualSize shows both media at pixel 1:1 regardless of the fitted base.
func (ui *Ui) ActualSize() {
	for side, pn := range ui.session.Panels {
		info := ui.session.Media[side]
		if info == nil {
			continue
		}
		v := pn.View()
		pn.SetView(v.ZoomAbsolute(1/info.BaseScale, 0, 0))
	}
	ui.win.SetRedraw()
}

// layout: toolbar strip on top, the rest split into two equal panels.
func (ui *Ui) layout(screen OsV4) (OsV4, OsV4, OsV4) {
	cell := ui.Cell()
	tbH := cell + cell/4

	toolbar := InitOsV4(screen.Start.X, screen.Start.Y, screen.Size.X, tbH)

	pnW := screen.Size.X / 2
	pnH := screen.Size.Y - tbH
	left := InitOsV4(screen.Start.X, screen.Start.Y+tbH, pnW, pnH)
	right := InitOsV4(screen.Start.X+pnW, screen.Start.Y+tbH, screen.Size.X-pnW, pnH)

	return toolbar, left, right
}

func (ui *Ui) UpdateIO(screen OsV4) {
	win := ui.win
	keys := &win.io.Keys

	//keyboard shortcuts
	if keys.Esc {
		for _, gs := range ui.session.Panels {
			gs.Cancel()
		}
	}
	if keys.Reset {
		ui.session.ResetView()
		win.SetRedraw()
	}
	if keys.LockSwap {
		ui.session.ToggleLock()
		win.SetRedraw()
	}
	if keys.SwapBoth {
		ui.SwapSides()
	}
	if keys.Space {
		for _, pn := range ui.panels {
			if pn.hasFooter() {
				pn.img.SetPlay(!pn.img.is_playing, ui.media)
			}
		}
		win.SetRedraw()
	}

	//app(cell) zoom
	if keys.ZoomAdd {
		win.io.Ini.Cell = OsClamp(ui.Cell()+3, 20, 160)
		win.SetRedraw()
	}
	if keys.ZoomSub {
		win.io.Ini.Cell = OsClamp(ui.Cell()-3, 20, 160)
		win.SetRedraw()
	}
	if keys.ZoomDef {
		win.io.Ini.Cell = int(float64(GetDeviceDPI()) / 2.5)
		win.SetRedraw()
	}

	tbq, leftq, rightq := ui.layout(screen)

	ui.toolbar.Input(tbq)
	ui.panels[0].Input(leftq)
	ui.panels[1].Input(rightq)

	//unclaimed drop falls on the side under the cursor
	if win.io.Touch.Drop_path != "" {
		side := OsTrn(win.io.Touch.Pos.X < screen.Middle().X, 0, 1)
		ui.Open(side, win.io.Touch.Drop_path)
		win.io.Touch.Drop_path = ""
	}
}

func (ui *Ui) Tick(screen OsV4) {
	_, leftq, rightq := ui.layout(screen)
	ui.panels[0].Tick(leftq)
	ui.panels[1].Tick(rightq)

	for _, pn := range ui.panels {
		if pn.img != nil {
			pn.img.Maintenance()
		}
	}

	ui.videoSync()
}

// videoSync keeps two locked playing videos coarsely together. Frame-accuracy
// is out of scope, this only re-seeks the right side when the drift grows.
func (ui *Ui) videoSync() {
	if !ui.session.Locked {
		return
	}
	if OsIsTicksIn(ui.last_sync_ticks, 800) {
		return
	}
	ui.last_sync_ticks = OsTicks()

	a := ui.panels[0].img
	b := ui.panels[1].img
	if a == nil || b == nil || !a.IsVideo() || !b.IsVideo() {
		return
	}
	if !a.is_playing || !b.is_playing {
		return
	}

	drift := a.play_pos - b.play_pos
	if drift < 0 {
		drift = -drift
	}
	if drift > UI_VIDEO_SYNC_DRIFT_MS {
		b.SetSeek(a.play_pos, ui.media)
	}
}

func (ui *Ui) NeedRedraw() bool {
	for _, pn := range ui.panels {
		if pn.img != nil && pn.img.is_playing {
			return true
		}
	}
	return false
}

func (ui *Ui) Draw() {
	win := ui.win
	screen := win.GetScreenCoord()
	pl := ui.GetPalette()

	tbq, leftq, rightq := ui.layout(screen)

	ui.toolbar.Draw(tbq, 10)
	ui.panels[0].Draw(leftq, 0)
	ui.panels[1].Draw(rightq, 0)

	//divider
	win.render.SetClipRect(screen, screen)
	win.render.DrawLine(OsV2{rightq.Start.X, leftq.Start.Y}, OsV2{rightq.Start.X, leftq.End().Y}, 10, 2, pl.GetGrey(0.8))

	//last error in the corner
	errStr := g_logs.Last()
	if errStr != "" {
		props := InitWinFontPropsDef(ui.Cell())
		cq := InitOsV4(screen.Start.X, screen.End().Y-props.lineH, screen.Size.X, props.lineH)
		win.DrawText(errStr, props, pl.E, cq, 20, OsV2{0, 1})
	}
}
