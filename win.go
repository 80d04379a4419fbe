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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

func InitSDLGlobal() error {
	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return fmt.Errorf("sdl.Init() failed: %w", err)
	}

	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return fmt.Errorf("GetNumVideoDisplays() failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("0 video displays")
	}

	return nil
}
func DestroySDLGlobal() {
	sdl.Quit()
}

type WinCursor struct {
	name   string
	tp     sdl.SystemCursor
	cursor *sdl.Cursor
}

type Win struct {
	io *WinIO

	window *sdl.Window

	render *WinRender

	winVisible       bool
	redraw           bool
	redraw_new_image atomic.Int64

	lastClickUp OsV2
	numClicks   int

	fullscreen_now          bool
	fullscreen              bool
	recover_fullscreen_size OsV2

	cursors  []WinCursor
	cursorId int

	gph *WinGph

	quit bool
}

func NewWin() (*Win, error) {
	win := &Win{}

	var err error
	win.io, err = NewWinIO()
	if err != nil {
		return nil, fmt.Errorf("NewWinIO() failed: %w", err)
	}
	err = win.io.Open(MEDIFF_INI_PATH)
	if err != nil {
		return nil, fmt.Errorf("Open() failed: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "2")

	// create SDL
	win.window, err = sdl.CreateWindow("Mediff", int32(win.io.Ini.WinX), int32(win.io.Ini.WinY), int32(win.io.Ini.WinW), int32(win.io.Ini.WinH), sdl.WINDOW_RESIZABLE|sdl.WINDOW_OPENGL)
	if err != nil {
		return nil, fmt.Errorf("CreateWindow() failed: %w", err)
	}

	win.render, err = NewWinRender(win.window)
	if err != nil {
		return nil, fmt.Errorf("NewWinRender() failed: %w", err)
	}

	win.gph = NewWinGph()

	sdl.EventState(sdl.DROPFILE, sdl.ENABLE)

	// cursors
	win.cursors = append(win.cursors, WinCursor{"default", sdl.SYSTEM_CURSOR_ARROW, sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_ARROW)})
	win.cursors = append(win.cursors, WinCursor{"hand", sdl.SYSTEM_CURSOR_HAND, sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_HAND)})
	win.cursors = append(win.cursors, WinCursor{"move", sdl.SYSTEM_CURSOR_SIZEALL, sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_SIZEALL)})

	return win, nil
}

func (win *Win) Destroy() error {
	var err error

	win.io.Save(MEDIFF_INI_PATH)

	err = win.io.Destroy()
	if err != nil {
		return fmt.Errorf("IO.Destroy() failed: %w", err)
	}

	for _, cur := range win.cursors {
		sdl.FreeCursor(cur.cursor)
	}

	win.gph.Destroy()

	win.render.Destroy()

	err = win.window.Destroy()
	if err != nil {
		return fmt.Errorf("Window.Destroy() failed: %w", err)
	}

	return nil
}

func IsCtrlActive() bool {
	state := sdl.GetKeyboardState()
	return state[sdl.SCANCODE_LCTRL] != 0 || state[sdl.SCANCODE_RCTRL] != 0
}

func IsShiftActive() bool {
	state := sdl.GetKeyboardState()
	return state[sdl.SCANCODE_LSHIFT] != 0 || state[sdl.SCANCODE_RSHIFT] != 0
}

func (win *Win) GetMousePosition() (OsV2, bool, bool) {
	x, y, state := sdl.GetGlobalMouseState()

	wx, wy := win.window.GetPosition()
	ww, wh := win.window.GetSize()
	return OsV2_32(x, y).Sub(OsV2_32(wx, wy)), (state != 0 && state != sdl.ButtonLMask()), InitOsV4(int(wx), int(wy), int(ww), int(wh)).Inside(OsV2_32(x, y))
}

func (win *Win) GetScreenCoord() OsV4 {
	w, h := win.window.GLGetDrawableSize()
	return OsV4{Start: OsV2{}, Size: OsV2{int(w), int(h)}}
}

func (win *Win) GetScreenshot(coord OsV4) (*image.RGBA, error) {

	surface, err := sdl.CreateRGBSurface(0, int32(coord.Size.X), int32(coord.Size.Y), 32, 0, 0, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("CreateRGBSurface() failed: %w", err)
	}
	defer surface.Free()

	//copies pixels
	err = win.render.ReadGLScreenPixels(win.GetScreenCoord(), coord, &surface.Pixels()[0])
	if err != nil {
		return nil, fmt.Errorf("ReadGLScreenPixels() failed: %w", err)
	}

	img := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{int(surface.W), int(surface.H)}})
	for y := int32(0); y < surface.H; y++ {
		for x := int32(0); x < surface.W; x++ {
			r := surface.Pixels()[y*surface.W*4+x*4+0]
			g := surface.Pixels()[y*surface.W*4+x*4+1]
			b := surface.Pixels()[y*surface.W*4+x*4+2]
			img.SetRGBA(int(x), int(surface.H-1-y), color.RGBA{r, g, b, 255})
		}
	}
	return img, nil
}

func (win *Win) SaveScreenshot() error {
	img, err := win.GetScreenshot(win.GetScreenCoord())
	if err != nil {
		return err
	}

	// creates file
	file, err := os.Create("screenshot_" + time.Now().Format("2006-1-2_15-4-5") + ".png")
	if err != nil {
		return fmt.Errorf("Create() failed: %w", err)
	}
	defer file.Close()

	//saves PNG
	err = png.Encode(file, img)
	if err != nil {
		return fmt.Errorf("Encode() failed: %w", err)
	}

	return nil
}

var g_dropPath string //dirty trick, because, when drop, the mouse position is invalid

func (win *Win) Event() (bool, bool, error) {
	io := win.io
	inputChanged := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() { // some cases have RETURN(don't miss it in tick), some (can be missed in tick)!

		switch val := event.(type) {
		case *sdl.QuitEvent:
			fmt.Println("Exiting ...")
			return false, false, nil

		case *sdl.WindowEvent:
			switch val.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				inputChanged = true
			case sdl.WINDOWEVENT_MOVED:
				inputChanged = true
			case sdl.WINDOWEVENT_SHOWN:
				win.winVisible = true
				inputChanged = true
			case sdl.WINDOWEVENT_HIDDEN:
				win.winVisible = false
				inputChanged = true
			}

		case *sdl.MouseMotionEvent:
			inputChanged = true

		case *sdl.MouseButtonEvent:
			win.numClicks = int(val.Clicks)
			if val.Clicks > 1 {
				if win.lastClickUp.Distance(OsV2_32(val.X, val.Y)) > float32(GetDeviceDPI())/13 { //7px error space
					win.numClicks = 1
				}
			}

			io.Touch.Pos = OsV2_32(val.X, val.Y)
			io.Touch.Rm = (val.Button != sdl.BUTTON_LEFT)

			switch val.Type {
			case sdl.MOUSEBUTTONDOWN:
				io.Touch.Start = true
				sdl.CaptureMouse(true) // keep getting info even mouse is outside window

			case sdl.MOUSEBUTTONUP:
				win.lastClickUp = io.Touch.Pos
				io.Touch.End = true
				sdl.CaptureMouse(false)
			}
			return true, true, nil

		case *sdl.MouseWheelEvent:
			if IsCtrlActive() { // app zoom, viewport never sees ctrl+wheel
				if val.Y > 0 {
					io.Keys.ZoomAdd = true
				}
				if val.Y < 0 {
					io.Keys.ZoomSub = true
				}
			} else {
				//notch = 120, trackpads send fractions of a notch
				io.Touch.WheelX = float64(val.PreciseX) * -120
				io.Touch.WheelY = float64(val.PreciseY) * -120
			}
			return true, true, nil

		case *sdl.MultiGestureEvent:
			if val.NumFingers == 2 {
				if !io.Touch.Pinching {
					io.Touch.Pinching = true
					io.Touch.PinchStart = true
					io.Touch.PinchScale = 1
				}
				io.Touch.PinchScale *= 1 + float64(val.DDist)*2

				ww, wh := win.window.GetSize()
				io.Touch.PinchPos = OsV2{int(val.X * float32(ww)), int(val.Y * float32(wh))}
			}
			return true, true, nil

		case *sdl.TouchFingerEvent:
			if val.Type == sdl.FINGERUP && io.Touch.Pinching {
				io.Touch.Pinching = false
				io.Touch.PinchEnd = true
			}
			return true, true, nil

		case *sdl.KeyboardEvent:
			if val.Type == sdl.KEYDOWN {

				if IsCtrlActive() {
					if val.Keysym.Sym == sdl.K_PLUS || val.Keysym.Sym == sdl.K_KP_PLUS {
						io.Keys.ZoomAdd = true
					}
					if val.Keysym.Sym == sdl.K_MINUS || val.Keysym.Sym == sdl.K_KP_MINUS {
						io.Keys.ZoomSub = true
					}
					if val.Keysym.Sym == sdl.K_0 || val.Keysym.Sym == sdl.K_KP_0 {
						io.Keys.ZoomDef = true
					}
				}

				keys := &io.Keys

				keys.Esc = val.Keysym.Sym == sdl.K_ESCAPE
				keys.Space = val.Keysym.Sym == sdl.K_SPACE

				if !IsCtrlActive() {
					keys.Reset = val.Keysym.Sym == sdl.K_0 || val.Keysym.Sym == sdl.K_KP_0
					keys.LockSwap = val.Keysym.Sym == sdl.K_l
					keys.SwapBoth = val.Keysym.Sym == sdl.K_s
				}

				keys.F8 = val.Keysym.Sym == sdl.K_F8
				keys.F11 = val.Keysym.Sym == sdl.K_F11

				keys.HasChanged = true
			}
			return true, true, nil

		case *sdl.DropEvent:
			if val.Type == sdl.DROPFILE {
				g_dropPath = val.File
			}
			return true, true, nil
		}
	}

	return true, inputChanged, nil
}

func (win *Win) Maintenance() {
	win.gph.Maintenance()
}

func (win *Win) SetRedraw() {
	win.redraw = true
}

func (win *Win) SetRedrawNewImage() {
	win.redraw_new_image.Add(1)
}

func (win *Win) UpdateIO() (bool, bool, error) {
	if win == nil {
		return true, false, nil
	}

	run, redraw, err := win.Event()
	if err != nil {
		return run, true, fmt.Errorf("Event() failed: %w", err)
	}
	if !run {
		return false, redraw, nil
	}

	if win.quit {
		return false, redraw, nil
	}

	//one more time
	if win.redraw {
		redraw = true
		win.redraw = false //reset
	}

	if win.redraw_new_image.Load() != 0 {
		win.redraw_new_image.Store(0)
		redraw = true
	}

	// update Win
	io := win.io

	{
		start := OsV2_32(win.window.GetPosition())
		size := OsV2_32(win.window.GetSize())
		io.Ini.WinX = start.X
		io.Ini.WinY = start.Y
		io.Ini.WinW = size.X
		io.Ini.WinH = size.Y
	}

	if !io.Touch.Start && !io.Touch.End && !io.Touch.Rm {
		var inside bool
		io.Touch.Pos, io.Touch.Rm, inside = win.GetMousePosition()

		//drop file
		if inside && g_dropPath != "" {
			win.io.Touch.Drop_path = g_dropPath
			g_dropPath = ""
			win.SetRedraw()
		}
	}
	io.Touch.NumClicks = win.numClicks
	if io.Touch.End {
		win.numClicks = 0
	}

	io.Keys.Shift = IsShiftActive()
	io.Keys.Ctrl = IsCtrlActive()

	if io.Keys.F8 {
		err := win.SaveScreenshot()
		if err != nil {
			return true, true, fmt.Errorf("SaveScreenshot() failed: %w", err)
		}
	}

	if io.Keys.F11 {
		win.fullscreen = !win.fullscreen
	}

	win.cursorId = 0

	return true, redraw, nil
}

func (win *Win) StartRender(clearCd color.RGBA) error {
	if win == nil {
		return nil
	}

	win.render.StartRender(win.GetScreenCoord(), clearCd)
	return nil
}

func (win *Win) EndRender(present bool) error {
	if win == nil {
		return nil
	}

	if present {
		win.window.GLSwap()

		if win.cursorId >= 0 {
			if win.cursorId >= len(win.cursors) {
				return errors.New("cursorID is out of range")
			}
			sdl.SetCursor(win.cursors[win.cursorId].cursor)
		}
	}

	if win.fullscreen != win.fullscreen_now {
		fullFlag := uint32(0)
		if win.fullscreen {
			win.recover_fullscreen_size = OsV2_32(win.window.GetSize())
			fullFlag = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
		}
		err := win.window.SetFullscreen(fullFlag)
		if err != nil {
			return fmt.Errorf("SetFullscreen() failed: %w", err)
		}
		if fullFlag == 0 {
			win.window.SetSize(win.recover_fullscreen_size.Get32()) //otherwise, wierd bug happens
		}

		win.fullscreen_now = win.fullscreen
	}

	return nil
}

func (win *Win) Finish() {
	win.io.ResetTouchAndKeys()

	win.Maintenance()
}

func (win *Win) SetClipboardText(text string) {
	sdl.SetClipboardText(text)
}
func (win *Win) GetClipboardText() string {
	text, err := sdl.GetClipboardText()
	if err != nil {
		fmt.Printf("GetClipboardText() failed: %v\n", err)
	}
	return strings.Trim(text, "\r\n ")
}

func (win *Win) PaintCursor(name string) error {
	if win == nil {
		return nil
	}

	for i, cur := range win.cursors {
		if strings.EqualFold(cur.name, name) {
			win.cursorId = i
			return nil
		}
	}

	return errors.New("Cursor(" + name + ") not found: ")
}

func (win *Win) DrawRectRound(coord OsV4, rad int, depth int, cd color.RGBA, thick int) {
	rr := win.gph.GetRoundedRectangle(float64(thick), float64(rad))
	if rr != nil {

		s := coord.Start
		e := coord.End()
		w := coord.Size.X
		h := coord.Size.Y

		//top corners
		rr.item.DrawUV(InitOsV4(s.X, s.Y, rad, rad), depth, cd, OsV2f{0, 0}, OsV2f{0.33333, 0.33333}, win.gph)     //left
		rr.item.DrawUV(InitOsV4(e.X-rad, s.Y, rad, rad), depth, cd, OsV2f{0.66667, 0}, OsV2f{1, 0.33333}, win.gph) //right
		//bottom corners
		rr.item.DrawUV(InitOsV4(s.X, e.Y-rad, rad, rad), depth, cd, OsV2f{0, 0.66667}, OsV2f{0.33333, 1}, win.gph)     //left
		rr.item.DrawUV(InitOsV4(e.X-rad, e.Y-rad, rad, rad), depth, cd, OsV2f{0.66667, 0.66667}, OsV2f{1, 1}, win.gph) //right

		//rects
		rr.item.DrawUV(InitOsV4(s.X, s.Y+rad, rad, h-2*rad), depth, cd, OsV2f{0, 0.33333}, OsV2f{0.33333, 0.66667}, win.gph)     //left
		rr.item.DrawUV(InitOsV4(e.X-rad, s.Y+rad, rad, h-2*rad), depth, cd, OsV2f{0.66667, 0.33333}, OsV2f{1, 0.66667}, win.gph) //right

		rr.item.DrawUV(InitOsV4(s.X+rad, s.Y, w-2*rad, rad), depth, cd, OsV2f{0.33333, 0}, OsV2f{0.66667, 0.33333}, win.gph)     //top
		rr.item.DrawUV(InitOsV4(s.X+rad, e.Y-rad, w-2*rad, rad), depth, cd, OsV2f{0.33333, 0.66667}, OsV2f{0.66667, 1}, win.gph) //bottom

		if thick == 0 {
			win.render.DrawRect(s.Add(OsV2{rad, rad}), e.Sub(OsV2{rad, rad}), depth, cd) // mid
		}
	}
}

// single line only!
func (win *Win) DrawText(ln string, prop WinFontProps, frontCd color.RGBA, coord OsV4, depth int, align OsV2) {
	item := win.gph.GetText(prop, ln)
	if item != nil {
		start := win.GetTextStart(ln, prop, coord, align.X, align.Y)
		item.item.DrawCut(OsV4{Start: start, Size: item.size}, depth, frontCd, win.gph)
	}
}

func (win *Win) GetTextSize(ln string, prop WinFontProps) OsV2 {
	return win.gph.GetTextSize(prop, ln)
}

func (win *Win) GetTextStart(ln string, prop WinFontProps, coord OsV4, align_h, align_v int) OsV2 {

	//lineH
	lnSize := win.GetTextSize(ln, prop)
	size := OsV2{lnSize.X, prop.lineH}
	start := coord.Align(size, OsV2{align_h, align_v})

	//letters
	coord.Start = start
	coord.Size.X = size.X
	coord.Size.Y = prop.lineH
	start = coord.Align(lnSize, OsV2{align_h, 1}) //letters must be always in the middle of line

	return start
}
