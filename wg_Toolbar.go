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

// Toolbar is the strip above the panels. Buttons act through the session, so
// the zoom/reset operations hit both panels atomically.
type Toolbar struct {
	ui *Ui
}

type toolbarButton struct {
	label   string
	tip     string
	widthC  float64 //in cells
	clicked func()
}

func NewToolbar(ui *Ui) *Toolbar {
	return &Toolbar{ui: ui}
}

func (tb *Toolbar) buttons() []toolbarButton {
	ui := tb.ui
	ss := ui.session

	lockLabel := "Unlock"
	if !ss.Locked {
		lockLabel = "Lock"
	}

	return []toolbarButton{
		{label: "Open L", tip: "open clipboard path on the left", widthC: 1.6, clicked: func() {
			ui.Open(0, ui.win.GetClipboardText())
		}},
		{label: "Open R", tip: "open clipboard path on the right", widthC: 1.6, clicked: func() {
			ui.Open(1, ui.win.GetClipboardText())
		}},
		{label: "−", tip: "zoom out", widthC: 1, clicked: func() {
			ss.ZoomStep(false)
			ui.win.SetRedraw()
		}},
		{label: "+", tip: "zoom in", widthC: 1, clicked: func() {
			ss.ZoomStep(true)
			ui.win.SetRedraw()
		}},
		{label: "100%", tip: "pixel 1:1", widthC: 1.4, clicked: func() {
			ui.ActualSize()
		}},
		{label: "Fit", tip: "reset both views", widthC: 1, clicked: func() {
			ss.ResetView()
			ui.win.SetRedraw()
		}},
		{label: lockLabel, tip: "toggle synchronized pan&zoom", widthC: 1.6, clicked: func() {
			ss.ToggleLock()
			ui.win.SetRedraw()
		}},
		{label: "Swap", tip: "exchange the sides", widthC: 1.4, clicked: func() {
			ui.SwapSides()
		}},
	}
}

func (tb *Toolbar) buttonCoord(coord OsV4, bts []toolbarButton, i int) OsV4 {
	cell := tb.ui.Cell()

	x := coord.Start.X + cell/4
	for j := 0; j < i; j++ {
		x += int(bts[j].widthC*float64(cell)) + cell/4
	}
	return InitOsV4(x, coord.Start.Y, int(bts[i].widthC*float64(cell)), coord.Size.Y).CropY(cell / 8)
}

func (tb *Toolbar) Draw(coord OsV4, depth int) {
	win := tb.ui.win
	pl := tb.ui.GetPalette()
	cell := tb.ui.Cell()
	props := InitWinFontPropsDef(cell)

	win.render.SetClipRect(win.GetScreenCoord(), coord)
	win.render.DrawRect(coord.Start, coord.End(), depth, pl.GetGrey(0.93))

	bts := tb.buttons()
	for i, bt := range bts {
		cq := tb.buttonCoord(coord, bts, i)

		cd := pl.GetGrey(0.85)
		if cq.Inside(win.io.Touch.Pos) {
			cd = pl.GetGrey(0.75)
			win.PaintCursor("hand")
		}
		if bt.label == "Unlock" {
			cd = Color_Aprox(cd, pl.P, 0.25) //locked state stands out
		}

		win.DrawRectRound(cq, cell/4, depth, cd, 0)
		win.DrawText(bt.label, props, pl.OnB, cq, depth, OsV2{1, 1})
	}
}

func (tb *Toolbar) Input(coord OsV4) {
	win := tb.ui.win
	touch := &win.io.Touch

	if !touch.Start || !coord.Inside(touch.Pos) {
		return
	}

	bts := tb.buttons()
	for i, bt := range bts {
		if tb.buttonCoord(coord, bts, i).Inside(touch.Pos) {
			bt.clicked()
			touch.Start = false //consumed
			return
		}
	}
}
