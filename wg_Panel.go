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
)

// keeps the fitted media off the panel edges
const PANEL_MARGIN = 16

// Panel is one side of the comparison: the media(if any), its streaming
// texture and the footer for videos. The transform itself lives in the
// session.
type Panel struct {
	ui   *Ui
	side int

	path string
	img  *WinImage

	dragStart OsV2 //pointer position when the drag began

	seek_active bool
}

func NewPanel(ui *Ui, side int) *Panel {
	return &Panel{ui: ui, side: side}
}

func (pn *Panel) Destroy() {
	if pn.img != nil {
		pn.img.Destroy()
	}
}

func (pn *Panel) SetPath(path string) {
	if pn.img != nil {
		pn.img.Destroy()
		pn.img = nil
	}

	pn.path = path
	pn.ui.session.ClearMedia(pn.side)

	if path != "" {
		pn.img = NewWinImage(path, uint64(pn.side), pn.ui.media, pn.ui.win)
	}

	pn.ui.win.SetRedraw()
}

func (pn *Panel) IsLoaded() bool {
	return pn.ui.session.Media[pn.side] != nil
}

// Tick snapshots the base scale once the first frame(and so the natural size)
// arrived. Later container resizes do not re-fit.
func (pn *Panel) Tick(coord OsV4) {
	if pn.img == nil || pn.IsLoaded() {
		return
	}

	nat := pn.img.NaturalSize()
	if !nat.Is() {
		return
	}

	kind := MediaKind_Image
	if pn.img.IsVideo() {
		kind = MediaKind_Video
	}

	container := pn.contentCoord(coord).Crop(PANEL_MARGIN)
	info := InitMediaInfo(nat.X, nat.Y, float64(container.Size.X), float64(container.Size.Y), kind)
	pn.ui.session.SetMedia(pn.side, info)
}

func (pn *Panel) hasFooter() bool {
	return pn.img != nil && pn.img.IsVideo() && pn.IsLoaded()
}

// contentCoord is the panel minus the video footer.
func (pn *Panel) contentCoord(coord OsV4) OsV4 {
	if pn.hasFooter() {
		coord.Size.Y -= pn.ui.Cell()
	}
	return coord
}

func (pn *Panel) footerCoord(coord OsV4) OsV4 {
	cell := pn.ui.Cell()
	return InitOsV4(coord.Start.X, coord.End().Y-cell, coord.Size.X, cell)
}

func (pn *Panel) Draw(coord OsV4, depth int) {
	win := pn.ui.win
	pl := pn.ui.GetPalette()
	cell := pn.ui.Cell()
	props := InitWinFontPropsDef(cell)

	win.render.SetClipRect(win.GetScreenCoord(), coord)

	content := pn.contentCoord(coord)

	if pn.img == nil {
		win.DrawText("drop a file here", props, pl.GetGrey(0.5), content, depth, OsV2{1, 1})
		return
	}

	//destination rect from the display transform
	tr := pn.ui.session.Display(pn.side)
	nat := pn.img.NaturalSize()

	if nat.Is() {
		size := OsV2{int(float64(nat.X) * tr.Scale), int(float64(nat.Y) * tr.Scale)}
		mid := content.Middle().Add(OsV2{int(tr.TranslateX), int(tr.TranslateY)})
		dst := InitOsV4Mid(mid, size)

		errStr := pn.img.Draw(dst, depth, color.RGBA{255, 255, 255, 255})
		if errStr != "" {
			win.DrawText(errStr, props, pl.E, content, depth, OsV2{1, 1})
		}
	} else {
		label := "loading ..."
		if pn.img.err != nil {
			label = pn.img.err.Error()
		}
		win.DrawText(label, props, pl.GetGrey(0.5), content, depth, OsV2{1, 1})
	}

	//zoom HUD, 100% = fitted
	{
		v := pn.ui.session.Panels[pn.side].View()
		hud := fmt.Sprintf("%d%%", OsRoundHalf(v.Scale*100))
		cq := InitOsV4(content.Start.X+cell/4, content.Start.Y+cell/4, cell*2, props.lineH)
		win.DrawText(hud, props, pl.GetGrey(0.3), cq, depth+1, OsV2{0, 1})
	}

	if pn.hasFooter() {
		pn.drawFooter(pn.footerCoord(coord), depth+1)
	}
}

func (pn *Panel) drawFooter(coord OsV4, depth int) {
	win := pn.ui.win
	pl := pn.ui.GetPalette()
	cell := pn.ui.Cell()
	props := InitWinFontPropsDef(cell)

	win.render.DrawRect(coord.Start, coord.End(), depth, pl.GetGrey(0.9))

	//play/pause
	bt := pn.footerPlayCoord(coord)
	label := "▶"
	if pn.img.is_playing {
		label = "⏸"
	}
	if bt.Inside(win.io.Touch.Pos) {
		win.DrawRectRound(bt.Crop(cell/8), cell/4, depth, pl.GetGrey(0.8), 0)
		win.PaintCursor("hand")
	}
	win.DrawText(label, props, pl.OnB, bt, depth, OsV2{1, 1})

	//mute
	mt := pn.footerMuteCoord(coord)
	if mt.Inside(win.io.Touch.Pos) {
		win.DrawRectRound(mt.Crop(cell/8), cell/4, depth, pl.GetGrey(0.8), 0)
		win.PaintCursor("hand")
	}
	muteCd := pl.OnB
	if pn.img.muted {
		muteCd = pl.E //silenced stands out
	}
	win.DrawText("♪", props, muteCd, mt, depth, OsV2{1, 1})

	//timeline
	if pn.img.play_duration > 0 {
		tml := pn.footerTimelineCoord(coord)

		t := float64(pn.img.play_pos) / float64(pn.img.play_duration)
		t = OsClampFloat(t, 0, 1)

		mid_y := tml.Middle().Y
		knob_x := tml.Start.X + int(float64(tml.Size.X)*t)

		win.render.DrawLine(OsV2{tml.Start.X, mid_y}, OsV2{tml.End().X, mid_y}, depth, 2, pl.GetGrey(0.7))
		win.render.DrawLine(OsV2{tml.Start.X, mid_y}, OsV2{knob_x, mid_y}, depth, 2, pl.P)
		win.render.DrawRect(OsV2{knob_x - 3, mid_y - 6}, OsV2{knob_x + 3, mid_y + 6}, depth, pl.P)

		if tml.Inside(win.io.Touch.Pos) {
			win.PaintCursor("hand")
		}
	}
}

func (pn *Panel) footerPlayCoord(footer OsV4) OsV4 {
	cell := pn.ui.Cell()
	return InitOsV4(footer.Start.X, footer.Start.Y, cell, cell)
}

func (pn *Panel) footerMuteCoord(footer OsV4) OsV4 {
	cell := pn.ui.Cell()
	return InitOsV4(footer.Start.X+cell, footer.Start.Y, cell, cell)
}

func (pn *Panel) footerTimelineCoord(footer OsV4) OsV4 {
	cell := pn.ui.Cell()
	return InitOsV4(footer.Start.X+2*cell, footer.Start.Y, footer.Size.X-2*cell, cell).CropX(cell / 4)
}

func (pn *Panel) Input(coord OsV4) {
	ui := pn.ui
	win := ui.win
	touch := &win.io.Touch
	gs := ui.session.Panels[pn.side]

	//file drop
	if touch.Drop_path != "" && coord.Inside(touch.Pos) {
		ui.Open(pn.side, touch.Drop_path)
		touch.Drop_path = ""
		return
	}

	//video footer
	if pn.hasFooter() {
		footer := pn.footerCoord(coord)

		if touch.Start && footer.Inside(touch.Pos) {
			if pn.footerPlayCoord(footer).Inside(touch.Pos) {
				pn.img.SetPlay(!pn.img.is_playing, ui.media)
				win.SetRedraw()
			} else if pn.footerMuteCoord(footer).Inside(touch.Pos) {
				pn.img.SetMute(!pn.img.muted, ui.media)
				win.SetRedraw()
			} else if pn.footerTimelineCoord(footer).Inside(touch.Pos) {
				pn.seek_active = true
			}
			return
		}
		if pn.seek_active {
			tml := pn.footerTimelineCoord(footer)
			t := float64(touch.Pos.X-tml.Start.X) / float64(tml.Size.X)
			t = OsClampFloat(t, 0, 1)
			pn.img.SetSeek(int64(t*float64(pn.img.play_duration)), ui.media)
			win.SetRedraw()

			if touch.End {
				pn.seek_active = false
			}
			return
		}
	}

	content := pn.contentCoord(coord)
	mid := content.Middle()

	//pinch
	if touch.PinchStart && content.Inside(touch.PinchPos) {
		pivot := touch.PinchPos.Sub(mid)
		gs.PinchStart(float64(pivot.X), float64(pivot.Y))
	}
	if touch.Pinching && gs.pinching {
		gs.PinchMove(touch.PinchScale)
		win.SetRedraw()
	}
	if touch.PinchEnd {
		gs.PinchEnd()
	}

	//drag
	if touch.Start && !touch.Rm && content.Inside(touch.Pos) {
		pn.dragStart = touch.Pos
		gs.DragStart()
	}
	if gs.dragging {
		d := touch.Pos.Sub(pn.dragStart)
		gs.DragMove(float64(d.X), float64(d.Y))
		win.PaintCursor("move")
		win.SetRedraw()

		if touch.End {
			gs.DragEnd()
		}
	}

	//wheel
	if (touch.WheelX != 0 || touch.WheelY != 0) && content.Inside(touch.Pos) {
		pivot := touch.Pos.Sub(mid)
		act := gs.Wheel(touch.WheelX, touch.WheelY, win.io.Keys.Ctrl, float64(pivot.X), float64(pivot.Y))
		if act.Intent != WheelIntent_Ignore {
			win.SetRedraw()
		}
	}
}

// Changed reacts to the media backend reporting a fresh frame or a rewritten
// file for this panel's path.
func (pn *Panel) Changed(path string) {
	if pn.img != nil && pn.path == path {
		pn.img.Refresh(pn.ui.media, pn.ui.win)
	}
}
