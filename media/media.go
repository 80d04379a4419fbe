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

package media

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unsafe"
)

type Kind int

const (
	Kind_Image Kind = iota
	Kind_Video
)

func getFileExtensionFromUrl(path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	pos := strings.LastIndex(u.Path, ".")
	if pos == -1 {
		return "", errors.New("'.' not found")
	}
	return u.Path[pos+1:], nil
}

func IsUrl(path string) bool {
	path = strings.TrimSpace(path)
	path = strings.ToLower(path)
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func GetKind(path string) (bool, Kind) {
	var ext string
	isUrl := IsUrl(path)
	if isUrl {
		ext, _ = getFileExtensionFromUrl(path)
		ext = "." + ext
	} else {
		ext = strings.ToLower(filepath.Ext(path))
	}

	vid := (ext == ".mp4" || ext == ".mkv" || ext == ".webm" || ext == ".mov" || ext == ".avi" || ext == ".flv")
	if vid {
		return isUrl, Kind_Video
	}

	return isUrl, Kind_Image //default = try to open as image
}

// Frame is a decoded RGBA snapshot of the media. For videos the Data slice
// points into the player's pixel buffer and is only valid until the next frame.
type Frame struct {
	Width  int
	Height int
	Data   []byte //rgba

	Kind Kind

	SeekMs     int64
	DurationMs int64
	IsPlaying  bool
}

// Media runs image decoding, the http cache and the vlc players in-process.
// fnChanged is called from a background goroutine when a file changed on disk
// or a playing video has a new frame.
type Media struct {
	vlc   *VLC
	imgs  *Images
	cache *Cache

	fnChanged func(path string)

	quit chan bool
	wg   sync.WaitGroup
}

func NewMedia(fnChanged func(path string)) (*Media, error) {
	md := &Media{fnChanged: fnChanged}

	md.vlc = NewVLC()
	md.imgs = NewImages()

	var err error
	md.cache, err = NewCache()
	if err != nil {
		return nil, fmt.Errorf("NewCache() failed: %w", err)
	}

	md.quit = make(chan bool)

	//check if files changed
	md.wg.Add(1)
	go func() {
		defer md.wg.Done()
		for {
			select {
			case <-md.quit:
				return
			case <-time.After(1 * time.Second):
			}
			md.imgs.UpdateFileTimes()
			md.vlc.UpdateFileTimes()
		}
	}()

	//report updates(file changed or new frame)
	md.wg.Add(1)
	go func() {
		defer md.wg.Done()
		for {
			select {
			case <-md.quit:
				return
			case <-time.After(10 * time.Millisecond):
			}

			min_time := time.Now().Add(-60 * time.Second).UnixNano()

			md.imgs.Maintenance(min_time, md.fnChanged)
			md.vlc.Maintenance(min_time, func(path string, playerID uint64) {
				md.fnChanged(path)
			})
		}
	}()

	return md, nil
}

func (md *Media) Destroy() {
	close(md.quit)
	md.wg.Wait()

	md.vlc.Destroy()
	md.imgs.Destroy()
	md.cache.Destroy()
}

// GetFrame decodes(or re-uses) the media and returns its current pixels.
// playerID separates video players showing the same path.
func (md *Media) GetFrame(path string, playerID uint64) (*Frame, error) {
	isUrl, kind := GetKind(path)

	if kind == Kind_Video {
		item, err := md.vlc.Add(path, playerID)
		if err != nil {
			return nil, err
		}
		item.UpdateUseTime()

		var data []byte
		if item.pixels_size > 0 {
			data = unsafe.Slice((*byte)(item.videoCtx.pixels), item.pixels_size)
		}
		return &Frame{
			Width:      item.width,
			Height:     item.height,
			Data:       data,
			Kind:       Kind_Video,
			SeekMs:     item.GetSeek(),
			DurationMs: item.GetDuration(),
			IsPlaying:  item.IsPlaying(),
		}, nil
	}

	//image
	var blob []byte
	if isUrl {
		var err error
		blob, err = md.cache.Get(path)
		if err != nil {
			return nil, err
		}
	}

	item, err := md.imgs.Add(path, blob)
	if err != nil {
		return nil, err
	}
	item.UpdateUseTime()

	return &Frame{Width: item.width, Height: item.height, Data: item.data, Kind: Kind_Image}, nil
}

func (md *Media) Play(path string, playerID uint64, playIt bool) error {
	_, kind := GetKind(path)
	if kind != Kind_Video {
		return fmt.Errorf("'%s' video format is not supported", path)
	}

	item, err := md.vlc.Add(path, playerID)
	if err != nil {
		return err
	}

	if playIt {
		item.Play()
	} else {
		item.Pause()
	}
	return nil
}

func (md *Media) Seek(path string, playerID uint64, pos_ms int64) error {
	_, kind := GetKind(path)
	if kind != Kind_Video {
		return fmt.Errorf("'%s' video format is not supported", path)
	}

	item, err := md.vlc.Add(path, playerID)
	if err != nil {
		return err
	}

	item.SetSeek(pos_ms)
	return nil
}

func (md *Media) SetVolume(path string, playerID uint64, t float64) error {
	_, kind := GetKind(path)
	if kind != Kind_Video {
		return fmt.Errorf("'%s' video format is not supported", path)
	}

	item, err := md.vlc.Add(path, playerID)
	if err != nil {
		return err
	}

	item.SetVolume(t)
	return nil
}
