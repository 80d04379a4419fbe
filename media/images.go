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
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"sync"
	"time"

	"github.com/pbnjay/memory"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type Images struct {
	media map[string]*ImagesItem
	lock  sync.Mutex
}

func NewImages() *Images {
	imgs := &Images{}

	image.RegisterFormat("png", "png", png.Decode, png.DecodeConfig)
	image.RegisterFormat("webp", "webp", webp.Decode, webp.DecodeConfig)
	image.RegisterFormat("jpeg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("jpg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("gif", "gif", gif.Decode, gif.DecodeConfig)
	image.RegisterFormat("tiff", "tiff", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("bmp", "bmp", bmp.Decode, bmp.DecodeConfig)

	imgs.media = make(map[string]*ImagesItem)

	return imgs
}

func (imgs *Images) Destroy() {
	imgs.lock.Lock()
	defer imgs.lock.Unlock()

	for _, it := range imgs.media {
		it.Destroy()
	}
}

func (imgs *Images) UpdateFileTimes() {
	imgs.lock.Lock()
	var ims []*ImagesItem
	for _, it := range imgs.media {
		ims = append(ims, it)
	}
	imgs.lock.Unlock()

	//slow
	for _, it := range ims {
		inf, err := os.Stat(it.path)
		if err == nil && inf != nil {
			it.check_file_time = inf.ModTime().UnixNano()
		}
	}
}

// MaxImagesBytes caps the decoded pixels at 1/8 of the machine RAM.
func MaxImagesBytes() uint64 {
	return memory.TotalMemory() / 8
}

func (imgs *Images) GetImagesBytes() uint64 {
	imgs.lock.Lock()
	defer imgs.lock.Unlock()

	var sum uint64
	for _, it := range imgs.media {
		sum += uint64(len(it.data))
	}
	return sum
}

func (imgs *Images) Maintenance(min_time int64, fnImgChanged func(path string)) {
	imgs.lock.Lock()
	defer imgs.lock.Unlock()

	var sum uint64
	for path, it := range imgs.media {
		diff := (it.check_file_time != it.open_file_time)
		if diff {
			fnImgChanged(path) //file changed, it's removed here and Add() later
		}

		if (it.last_use_time > 0 && it.last_use_time < min_time) || diff {
			it.Destroy()
			delete(imgs.media, path)
		} else {
			sum += uint64(len(it.data))
		}
	}

	//over RAM budget, drop oldest first
	max := MaxImagesBytes()
	for sum > max {
		var oldest *ImagesItem
		var oldestPath string
		for path, it := range imgs.media {
			if oldest == nil || it.last_use_time < oldest.last_use_time {
				oldest = it
				oldestPath = path
			}
		}
		if oldest == nil {
			break
		}
		sum -= uint64(len(oldest.data))
		oldest.Destroy()
		delete(imgs.media, oldestPath)
	}
}

func (imgs *Images) Add(path string, blob []byte) (*ImagesItem, error) {
	imgs.lock.Lock()
	item, found := imgs.media[path]
	imgs.lock.Unlock()
	if found {
		return item, nil
	}

	//create new media
	item, err := NewImagesItem(path, blob)
	if err != nil {
		return nil, err
	}

	//add
	imgs.lock.Lock()
	imgs.media[path] = item
	imgs.lock.Unlock()

	return item, nil
}

type ImagesItem struct {
	path string

	width  int
	height int
	data   []byte //rgba

	last_use_time int64

	open_file_time  int64
	check_file_time int64
}

func NewImagesItem(path string, blob []byte) (*ImagesItem, error) {
	sp := &ImagesItem{path: path}

	//create new media
	var img image.Image
	if len(blob) > 0 {
		var err error
		img, _, err = image.Decode(bytes.NewReader(blob))
		if err != nil {
			return nil, err
		}
	} else if path != "" {
		imgf, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer imgf.Close()

		img, _, err = image.Decode(imgf)
		if err != nil {
			return nil, err
		}

		//file_time
		inf, err := imgf.Stat()
		if err == nil && inf != nil {
			sp.open_file_time = inf.ModTime().UnixNano()
			sp.check_file_time = sp.open_file_time
		}
	} else {
		return nil, fmt.Errorf("'%s' image format is not supported", path)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Pt(0, 0), draw.Src)

	sp.width = rgba.Rect.Size().X
	sp.height = rgba.Rect.Size().Y
	sp.data = rgba.Pix

	return sp, nil
}

func (sp *ImagesItem) UpdateUseTime() {
	sp.last_use_time = time.Now().UnixNano()
}

func (sp *ImagesItem) Destroy() {
}
