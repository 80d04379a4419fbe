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
	"image/color"
	"log"
	"os"
)

const MEDIFF_INI_PATH = "ini.json"

func main() {
	log.SetFlags(log.Llongfile)

	//SDL
	err := InitSDLGlobal()
	if err != nil {
		log.Fatalf("InitSDLGlobal() failed: %v\n", err)
	}
	defer DestroySDLGlobal()

	//Window(GL)
	win, err := NewWin()
	if err != nil {
		log.Fatalf("NewWin() failed: %v\n", err)
	}
	defer win.Destroy()

	//UI
	ui, err := NewUi(win)
	if err != nil {
		log.Fatalf("NewUi() failed: %v\n", err)
	}
	defer ui.Destroy()

	//mediff <left> <right>
	if len(os.Args) > 1 {
		ui.Open(0, os.Args[1])
		if len(os.Args) > 2 {
			ui.Open(1, os.Args[2])
		}
	} else {
		ui.OpenLast() //continue where the last run ended
	}

	//Loop
	run := true
	redraw := true
	for run {

		var err error
		run, redraw, err = win.UpdateIO()
		if err != nil {
			log.Fatalf("UpdateIO() failed: %v\n", err)
		}

		screen := win.GetScreenCoord()

		ui.UpdateIO(screen)

		ui.Tick(screen)

		if !redraw && ui.NeedRedraw() {
			redraw = true
		}

		if redraw {
			win.StartRender(color.RGBA{220, 220, 220, 255})
			ui.Draw()
			win.EndRender(true)
		}

		win.Finish()
	}
}
