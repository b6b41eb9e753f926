package ui2d

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font/basicfont"
)

// atlas maps runes to cells of the 7x13 bitmap face, whose mask stacks one
// glyph per cell vertically.
type atlas struct {
	face   *basicfont.Face
	width  int // mask width
	height int // mask height
}

func newAtlas() atlas {
	face := basicfont.Face7x13
	b := face.Mask.Bounds()
	return atlas{face: face, width: b.Dx(), height: b.Dy()}
}

func (a atlas) cellHeight() int {
	return a.face.Ascent + a.face.Descent
}

// cell returns the glyph index of r, falling back to '?'.
func (a atlas) cell(r rune) int {
	for _, rr := range a.face.Ranges {
		if r >= rr.Low && r < rr.High {
			return int(r-rr.Low) + rr.Offset
		}
	}
	if r != '?' {
		return a.cell('?')
	}
	return 0
}

// uv returns the texture rectangle of r.
func (a atlas) uv(r rune) (u0, v0, u1, v1 float32) {
	ch := a.cellHeight()
	y := a.cell(r) * ch
	return 0, float32(y) / float32(a.height),
		float32(a.face.Width) / float32(a.width), float32(y+ch) / float32(a.height)
}

// measure returns the size of text at scale; newlines start a new line.
func (a atlas) measure(text string, scale float32) (float32, float32) {
	lines := 1
	col, widest := 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			col = 0
			continue
		}
		col++
		if col > widest {
			widest = col
		}
	}
	return float32(widest*a.face.Advance) * scale, float32(lines*a.cellHeight()) * scale
}

// pixels expands the alpha mask to white RGBA.
func (a atlas) pixels() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	mb := a.face.Mask.Bounds()
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			_, _, _, alpha := a.face.Mask.At(mb.Min.X+x, mb.Min.Y+y).RGBA()
			img.SetRGBA(x, y, color.RGBA{255, 255, 255, uint8(alpha >> 8)})
		}
	}
	return img
}

// Font is the glyph atlas uploaded as a texture.
type Font struct {
	atlas
	tex uint32
}

// NewFont uploads the built-in bitmap font. Requires a GL context.
func NewFont() *Font {
	f := &Font{atlas: newAtlas()}
	img := f.pixels()

	gl.GenTextures(1, &f.tex)
	gl.BindTexture(gl.TEXTURE_2D, f.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(f.width), int32(f.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return f
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.tex
}

// Close frees the atlas texture.
func (f *Font) Close() {
	if f.tex != 0 {
		gl.DeleteTextures(1, &f.tex)
		f.tex = 0
	}
}
