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
	"sync"
	"sync/atomic"

	"mediff/media"
)

// WinImage streams frames of one media path(image or video) into a GL texture.
// Loading runs in a background goroutine, Draw() uploads the last loaded frame.
type WinImage struct {
	path     string
	playerID uint64

	loaded_lock sync.Mutex
	loaded_rgba []byte
	loaded_size OsV2

	kind          media.Kind
	play_pos      int64
	play_duration int64
	is_playing    bool
	muted         bool

	num_loads atomic.Uint64
	loading   atomic.Bool

	err error

	texture *WinTexture

	lastDrawTick int64
}

func NewWinImage(path string, playerID uint64, md *media.Media, win *Win) *WinImage {
	img := &WinImage{path: path, playerID: playerID}

	img.Refresh(md, win)

	return img
}

func (img *WinImage) FreeTexture() {
	if img.texture != nil {
		img.texture.Destroy()
	}
	img.texture = nil
}

func (img *WinImage) Destroy() {
	img.FreeTexture()
}

// Refresh fetches a fresh frame. Only one fetch runs at a time.
func (img *WinImage) Refresh(md *media.Media, win *Win) {
	if !img.loading.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer img.loading.Store(false)
		defer img.num_loads.Add(1)

		frame, err := md.GetFrame(img.path, img.playerID)

		img.loaded_lock.Lock()
		defer img.loaded_lock.Unlock()

		img.err = err
		if err != nil {
			return
		}

		img.kind = frame.Kind
		img.play_pos = frame.SeekMs
		img.play_duration = frame.DurationMs
		img.is_playing = frame.IsPlaying
		img.loaded_size = OsV2{frame.Width, frame.Height}
		img.loaded_rgba = frame.Data

		win.SetRedrawNewImage()
	}()
}

func (img *WinImage) SetPlay(playIt bool, md *media.Media) {
	img.is_playing = playIt
	err := md.Play(img.path, img.playerID, playIt)
	LogsError(err)
}

func (img *WinImage) SetMute(mute bool, md *media.Media) {
	img.muted = mute
	err := md.SetVolume(img.path, img.playerID, OsTrnFloat(mute, 0, 1))
	LogsError(err)
}

func (img *WinImage) SetSeek(pos_ms int64, md *media.Media) {
	img.play_pos = pos_ms
	err := md.Seek(img.path, img.playerID, pos_ms)
	LogsError(err)
}

// NaturalSize is the media's pixel size, zero until the first frame arrived.
func (img *WinImage) NaturalSize() OsV2 {
	img.loaded_lock.Lock()
	defer img.loaded_lock.Unlock()
	return img.loaded_size
}

func (img *WinImage) IsVideo() bool {
	return img.kind == media.Kind_Video
}

func (img *WinImage) Maintenance() bool {
	// free un-used
	if img.texture != nil && !OsIsTicksIn(img.lastDrawTick, 60000) {
		img.FreeTexture()
		return false
	}

	return true
}

func (img *WinImage) Draw(coord OsV4, depth int, cd color.RGBA) string {
	img.loaded_lock.Lock()
	if len(img.loaded_rgba) > 0 {

		if img.texture == nil || !img.texture.size.Cmp(img.loaded_size) {
			//new
			var tex *WinTexture
			var err error
			if img.kind == media.Kind_Video {
				tex, err = InitWinVideoTexture(img.loaded_size) //frames stream into it
				if err == nil {
					tex.UpdateContent(img.loaded_rgba)
				}
			} else {
				tex, err = InitWinTextureFromImageRGBAPix(img.loaded_rgba, img.loaded_size)
			}
			if LogsError(err) == nil {
				img.FreeTexture()
				img.texture = tex
			}
		} else {
			//update
			img.texture.UpdateContent(img.loaded_rgba)
		}

		img.loaded_rgba = nil //reset
	}
	img.loaded_lock.Unlock()

	if coord.Size.Is() {
		img.lastDrawTick = OsTicks()
	}

	if img.texture != nil {
		img.texture.DrawQuad(coord, depth, cd)
	} else {
		if img.err != nil {
			return img.err.Error()
		}

		return "loading ..."
	}

	return ""
}
