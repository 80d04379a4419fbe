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
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type WinGphItem struct {
	realSize     OsV2
	lastDrawTick int64

	alpha   *image.Alpha
	texture *WinTexture
}

func NewWinGphItemAlpha(alpha *image.Alpha, realSize OsV2) *WinGphItem {
	return &WinGphItem{realSize: realSize, alpha: alpha}
}

func (it *WinGphItem) getTexture() *WinTexture {
	if it.texture == nil && it.alpha != nil {
		tex, err := InitWinTextureFromImageAlpha(it.alpha)
		if LogsError(err) == nil {
			it.texture = tex
			it.alpha = nil //not needed anymore
		}
	}
	return it.texture
}

func (it *WinGphItem) Destroy() {
	if it.texture != nil {
		it.texture.Destroy()
	}
}

func (it *WinGphItem) IsUsed(gph *WinGph) bool {
	return gph.tick_now < (it.lastDrawTick + 30000) //30 sec
}
func (it *WinGphItem) UpdateTick(gph *WinGph) {
	it.lastDrawTick = gph.tick_now
}

// DrawUV maps sUV/eUV(fractions of the real size) into pow-of-2 texture space.
func (it *WinGphItem) DrawUV(coord OsV4, depth int, cd color.RGBA, sUV, eUV OsV2f, gph *WinGph) {
	texture := it.getTexture()
	if texture != nil {
		szUv := OsV2f{
			float32(it.realSize.X) / float32(texture.size.X),
			float32(it.realSize.Y) / float32(texture.size.Y)}

		sUV = sUV.Mul(szUv)
		eUV = eUV.Mul(szUv)

		texture.DrawQuadUV(coord, depth, cd, sUV, eUV)
	}

	it.UpdateTick(gph)
}

// DrawCut draws only the real(non pow-of-2) part of the texture.
func (it *WinGphItem) DrawCut(coord OsV4, depth int, cd color.RGBA, gph *WinGph) {
	texture := it.getTexture()
	if texture != nil {
		uv := OsV2f{
			float32(coord.Size.X) / float32(texture.size.X),
			float32(coord.Size.Y) / float32(texture.size.Y)}
		texture.DrawQuadUV(coord, depth, cd, OsV2f{}, uv)
	}

	it.UpdateTick(gph)
}

type WinGphItemText struct {
	item *WinGphItem
	size OsV2

	prop WinFontProps
	text string
}

type WinGphItemRoundedRectangle struct {
	item  *WinGphItem
	size  OsV2
	width float64
	rad   float64
}

type WinGph struct {
	fonts map[int]*WinFont //key is textH

	texts             map[string][]*WinGphItemText
	roundedRectangles []*WinGphItemRoundedRectangle

	tick_now       int64
	last_maint_sec int64
}

func NewWinGph() *WinGph {
	gph := &WinGph{}
	gph.fonts = make(map[int]*WinFont)
	gph.texts = make(map[string][]*WinGphItemText)
	return gph
}

func (gph *WinGph) Destroy() {
	for _, ft := range gph.fonts {
		ft.Destroy()
	}
	for _, its := range gph.texts {
		for _, it := range its {
			it.item.Destroy()
		}
	}
	for _, it := range gph.roundedRectangles {
		it.item.Destroy()
	}
}

func (gph *WinGph) GetFont(prop *WinFontProps) *WinFont {
	ft, found := gph.fonts[prop.textH]
	if !found {
		ft = &WinFont{}
		gph.fonts[prop.textH] = ft
	}
	return ft
}

func (gph *WinGph) Maintenance() {
	gph.tick_now = OsTicks()

	//only once per second
	if gph.tick_now/1000 == gph.last_maint_sec {
		return
	}
	gph.last_maint_sec = gph.tick_now / 1000

	for _, ft := range gph.fonts {
		ft.Maintenance()
	}

	for key, its := range gph.texts {
		for i := len(its) - 1; i >= 0; i-- {
			if !its[i].item.IsUsed(gph) {
				its[i].item.Destroy()
				its = append(its[:i], its[i+1:]...)
			}
		}
		if len(its) == 0 {
			delete(gph.texts, key)
		} else {
			gph.texts[key] = its
		}
	}

	for i := len(gph.roundedRectangles) - 1; i >= 0; i-- {
		if !gph.roundedRectangles[i].item.IsUsed(gph) {
			gph.roundedRectangles[i].item.Destroy()
			gph.roundedRectangles = append(gph.roundedRectangles[:i], gph.roundedRectangles[i+1:]...)
		}
	}
}

func (gph *WinGph) GetText(prop WinFontProps, text string) *WinGphItemText {
	if text == "" {
		return nil
	}

	//find
	for _, it := range gph.texts[text] {
		if it.prop.Cmp(&prop) {
			return it
		}
	}

	//create
	it := gph.drawString(prop, text)
	if it != nil {
		gph.texts[text] = append(gph.texts[text], it)
	}
	return it
}

func (gph *WinGph) GetTextSize(prop WinFontProps, text string) OsV2 {
	size, _ := gph.GetStringSize(prop, text)
	return size
}

func (gph *WinGph) GetStringSize(prop WinFontProps, str string) (OsV2, fixed.Int26_6) {
	face := gph.GetFont(&prop).GetFace(&prop)
	if face == nil {
		return OsV2{}, 0
	}

	var w fixed.Int26_6 //round to int after!
	prevCh := rune(-1)

	var maxH int
	var maxAscent fixed.Int26_6
	for _, ch := range str {
		if prevCh >= 0 {
			w += face.face.Kern(prevCh, ch)
		}
		advance, _ := face.face.GlyphAdvance(ch)
		w += advance
		prevCh = ch

		m := face.face.Metrics()
		maxH = OsMax(maxH, int(m.Ascent+m.Descent)>>6)
		if m.Ascent > maxAscent {
			maxAscent = m.Ascent
		}
	}

	return OsV2{int(w >> 6), maxH + 2}, maxAscent
}

func (gph *WinGph) drawString(prop WinFontProps, str string) *WinGphItemText {
	face := gph.GetFont(&prop).GetFace(&prop)
	if face == nil {
		return nil
	}

	size, maxAscent := gph.GetStringSize(prop, str)
	if !size.Is() {
		return nil
	}

	w := OsNextPowOf2(size.X)
	h := OsNextPowOf2(size.Y)

	a := image.NewAlpha(image.Rect(0, 0, w, h))

	d := &font.Drawer{
		Dst:  a,
		Src:  image.NewUniform(color.NRGBA{255, 255, 255, 255}),
		Face: face.face,
		Dot:  fixed.Point26_6{X: 0, Y: maxAscent},
	}

	prevCh := rune(-1)
	for _, ch := range str {
		if prevCh >= 0 {
			d.Dot.X += d.Face.Kern(prevCh, ch)
		}

		dr, mask, maskp, advance, _ := d.Face.Glyph(d.Dot, ch)
		if !dr.Empty() {
			draw.DrawMask(d.Dst, dr, d.Src, image.Point{}, mask, maskp, draw.Over)
		}

		d.Dot.X += advance
		prevCh = ch
	}

	return &WinGphItemText{item: NewWinGphItemAlpha(a, size), size: size, prop: prop, text: str}
}

func (gph *WinGph) GetRoundedRectangle(width float64, rad float64) *WinGphItemRoundedRectangle {

	size := OsV2{3 * int(rad), 3 * int(rad)}

	//find
	for _, it := range gph.roundedRectangles {
		if it.size.Cmp(size) && it.width == width && it.rad == rad {
			return it
		}
	}

	//create
	w := OsNextPowOf2(size.X)
	h := OsNextPowOf2(size.Y)

	dc := gg.NewContext(w, h)
	dc.SetRGBA255(255, 255, 255, 255)

	dc.DrawRoundedRectangle(width/2, width/2, (3*rad)-width, (3*rad)-width, rad)

	if width > 0 {
		dc.SetLineWidth(width)
		dc.Stroke()
	} else {
		dc.Fill()
	}

	rect := image.Rect(0, 0, w, h)
	dst := image.NewAlpha(rect)
	draw.Draw(dst, rect, dc.Image(), rect.Min, draw.Src)

	//add
	it := &WinGphItemRoundedRectangle{item: NewWinGphItemAlpha(dst, size), size: size, width: width, rad: rad}
	gph.roundedRectangles = append(gph.roundedRectangles, it)
	return it
}
