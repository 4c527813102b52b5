// Package canvas implements the overlay's drawing surface on an in-memory
// RGBA image. Shapes are rasterised with rasterx, the pointer is an SVG
// drawn with oksvg and text uses the fixed width face from x/image.
package canvas

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CharWidth is the advance of one printed glyph.
const CharWidth = 8

//go:embed cursor.svg
var cursorSVG []byte

const (
	cursorW   = 12
	cursorH   = 19
	boxRadius = 3
)

var face = basicfont.Face7x13

// Buffer is a canvas backed by an *image.RGBA. Every primitive blends its
// straight alpha colour over what the image already holds.
type Buffer struct {
	img     *image.RGBA
	ratio   float64
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
	scratch *image.RGBA
	icons   *IconCache
}

// New creates a transparent width x height buffer with square pixels.
func New(width, height int) *Buffer {
	b := &Buffer{icons: NewIconCache()}
	b.Resize(width, height)
	return b
}

// Resize replaces the image with a blank one of the new size and resets
// the aspect ratio to square pixels.
func (b *Buffer) Resize(width, height int) {
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, b.img, b.img.Bounds())
	b.filler = rasterx.NewFiller(width, height, scanner)
	b.dasher = rasterx.NewDasher(width, height, scanner)
	b.ratio = 1
	if height > 0 {
		b.ratio = float64(width) / float64(height)
	}
}

// Image returns the backing image.
func (b *Buffer) Image() *image.RGBA { return b.img }

// SetRatio sets the display aspect ratio reported by Ratio.
func (b *Buffer) SetRatio(r float64) { b.ratio = r }

func (b *Buffer) Width() int     { return b.img.Rect.Dx() }
func (b *Buffer) Height() int    { return b.img.Rect.Dy() }
func (b *Buffer) Ratio() float64 { return b.ratio }

// Clear replaces every pixel with c.
func (b *Buffer) Clear(c color.NRGBA) {
	xdraw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

func (b *Buffer) FillRect(x, y, w, h int, c color.NRGBA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	xdraw.Draw(b.img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, xdraw.Over)
}

// fill rasterises the inside of the path add builds. The scanner only knows
// non-zero winding, so holes are drawn as strokes instead.
func (b *Buffer) fill(c color.NRGBA, add func(f rasterx.Adder)) {
	if c.A == 0 {
		return
	}
	b.filler.Clear()
	b.filler.SetColor(c)
	add(b.filler)
	b.filler.Draw()
}

// stroke rasterises a band width pixels wide centred on the path add builds.
func (b *Buffer) stroke(c color.NRGBA, width float64, add func(d rasterx.Adder)) {
	if c.A == 0 || width <= 0 {
		return
	}
	d := b.dasher
	d.Clear()
	d.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
	d.SetColor(c)
	add(d)
	d.Draw()
}

func (b *Buffer) DrawBox(x, y, w, h int, fill, line color.NRGBA) {
	if w < 2*boxRadius+2 || h < 2*boxRadius+2 {
		b.FillRect(x, y, w, h, line)
		b.FillRect(x+1, y+1, w-2, h-2, fill)
		return
	}
	x0, y0, x1, y1 := float64(x), float64(y), float64(x+w), float64(y+h)
	b.fill(fill, func(f rasterx.Adder) {
		rasterx.AddRoundRect(x0+1, y0+1, x1-1, y1-1, boxRadius-1, boxRadius-1, 0, rasterx.RoundGap, f)
	})
	b.stroke(line, 1, func(d rasterx.Adder) {
		rasterx.AddRoundRect(x0+.5, y0+.5, x1-.5, y1-.5, boxRadius-.5, boxRadius-.5, 0, rasterx.RoundGap, d)
	})
}

func (b *Buffer) FillCircle(cx, cy, r int, c color.NRGBA) {
	b.fill(c, func(f rasterx.Adder) {
		rasterx.AddCircle(float64(cx)+.5, float64(cy)+.5, float64(r), f)
	})
}

func (b *Buffer) FillRing(cx, cy, inner, outer int, c color.NRGBA) {
	mid := float64(inner+outer) / 2
	b.stroke(c, float64(outer-inner), func(d rasterx.Adder) {
		rasterx.AddCircle(float64(cx)+.5, float64(cy)+.5, mid, d)
	})
}

// FillWedge approximates both arcs with segments about four pixels long.
func (b *Buffer) FillWedge(cx, cy, inner, outer int, from, to float64, c color.NRGBA) {
	if to < from {
		to += 2 * math.Pi
	}
	steps := max(2, int((to-from)*float64(outer)/4)+1)
	ox, oy := float64(cx)+.5, float64(cy)+.5
	at := func(r, i int) fixed.Point26_6 {
		a := from + (to-from)*float64(i)/float64(steps)
		return rasterx.ToFixedP(ox+float64(r)*math.Cos(a), oy+float64(r)*math.Sin(a))
	}
	b.fill(c, func(f rasterx.Adder) {
		f.Start(at(outer, 0))
		for i := 1; i <= steps; i++ {
			f.Line(at(outer, i))
		}
		for i := steps; i >= 0; i-- {
			f.Line(at(inner, i))
		}
		f.Stop(true)
	})
}

// Print draws s one glyph per CharWidth. Lines shorter than the face are
// drawn at full size into a scratch image and squeezed to fit.
func (b *Buffer) Print(lh, x, y int, s string, c color.NRGBA) {
	n := utf8.RuneCountInString(s)
	if n == 0 || c.A == 0 {
		return
	}
	m := face.Metrics()
	fh, ascent := m.Height.Ceil(), m.Ascent.Ceil()
	if lh >= fh {
		glyphs(b.img, x, y+(lh-fh)/2+ascent, s, c)
		return
	}

	w := n * CharWidth
	if b.scratch == nil || b.scratch.Rect.Dx() < w {
		b.scratch = image.NewRGBA(image.Rect(0, 0, w, fh))
	}
	src := b.scratch.SubImage(image.Rect(0, 0, w, fh)).(*image.RGBA)
	xdraw.Draw(src, src.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
	glyphs(src, 0, ascent, s, c)
	xdraw.NearestNeighbor.Scale(b.img, image.Rect(x, y, x+w, y+lh), src, src.Bounds(), xdraw.Over, nil)
}

func glyphs(dst xdraw.Image, x, baseline int, s string, c color.NRGBA) {
	d := font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	i := 0
	for _, r := range s {
		d.Dot = fixed.P(x+i*CharWidth, baseline)
		d.DrawString(string(r))
		i++
	}
}

// DrawCursor draws the pointer arrow with its tip at (x, y), scale times
// its native size.
func (b *Buffer) DrawCursor(x, y, scale int) {
	scale = max(scale, 1)
	icon, err := b.icon(fmt.Sprintf("cursor@%d", scale), cursorSVG, cursorW*scale, cursorH*scale)
	if err != nil {
		b.FillRect(x, y, 2*scale, 2*scale, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		return
	}
	xdraw.Draw(b.img, icon.Bounds().Add(image.Pt(x, y)), icon, image.Point{}, xdraw.Over)
}

func (b *Buffer) icon(key string, svg []byte, w, h int) (*image.RGBA, error) {
	if icon := b.icons.Get(key); icon != nil {
		return icon, nil
	}
	icon, err := RasterizeSVG(svg, w, h)
	if err != nil {
		return nil, err
	}
	b.icons.Set(key, icon)
	return icon, nil
}

// RasterizeSVG draws an SVG document into a new w x h image. A zero size
// uses the document's view box.
func RasterizeSVG(svg []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}
	if w == 0 || h == 0 {
		w, h = int(icon.ViewBox.W), int(icon.ViewBox.H)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(raster, 1.0)
	return img, nil
}
