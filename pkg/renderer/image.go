package renderer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/pkoziol/go-phong-raytracer/pkg/core"
)

// Image is a mutable pixel grid addressed by (column, row). Every pixel
// starts at black, which doubles as the background color: the renderer
// never writes pixels whose rays miss the scene. Distinct coordinates
// map to distinct cells of the backing slice, so concurrent writers to
// different pixels never alias.
type Image struct {
	width  int
	height int
	pixels []core.Color
}

// NewImage creates a width x height image with every pixel at the
// black background default.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Set writes the pixel at (col, row)
func (img *Image) Set(col, row int, c core.Color) {
	img.pixels[row*img.width+col] = c
}

// At returns the pixel at (col, row)
func (img *Image) At(col, row int) core.Color {
	return img.pixels[row*img.width+col]
}

// ToRGBA clamps each pixel to [0,1] and quantizes it to 8 bits.
// Shading produces unclamped sums, so this is the only place values
// are brought back into displayable range.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			c := img.At(col, row).Clamp(0.0, 1.0)
			out.SetRGBA(col, row, color.RGBA{
				R: uint8(255 * c.R),
				G: uint8(255 * c.G),
				B: uint8(255 * c.B),
				A: 255,
			})
		}
	}
	return out
}

// Save encodes the image to path. The format is keyed by the file
// extension (.png, .bmp, .jpg, ...).
func (img *Image) Save(path string) error {
	return imaging.Save(img.ToRGBA(), path)
}
