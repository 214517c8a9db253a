package asciiart

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pixel is an 8 bit per channel RGB triple.
type Pixel struct {
	R, G, B uint8
}

// Grid is a row-major matrix of pixels. A well formed grid has rows of equal
// length; see Validate.
type Grid [][]Pixel

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate returns an *InvalidGridError for the first row whose length
// differs from the first row's.
func (g Grid) Validate() error {
	width := g.Width()
	for y, row := range g {
		if len(row) != width {
			return &InvalidGridError{Row: y, Want: width, Got: len(row)}
		}
	}
	return nil
}

// NewGrid copies the RGB channels of img into a Grid. Alpha is dropped.
func NewGrid(img image.Image) Grid {
	// Clone normalizes any image type to non-premultiplied RGBA.
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	grid := make(Grid, bounds.Dy())
	for y := range grid {
		row := make([]Pixel, bounds.Dx())
		for x := range row {
			i := nrgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			row[x] = Pixel{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]}
		}
		grid[y] = row
	}
	return grid
}

// Thumbnail shrinks img so that both dimensions are scaled by pct, each
// rounded to the nearest pixel on its own and never below 1. The image is
// never enlarged, so pct >= 1 returns img itself. So does pct <= 0, which is
// what an unset Config carries.
func Thumbnail(img image.Image, pct float64) image.Image {
	if pct <= 0 || pct >= 1 {
		return img
	}
	bounds := img.Bounds()
	width := scaleDimension(bounds.Dx(), pct)
	height := scaleDimension(bounds.Dy(), pct)
	return resize.Resize(width, height, img, resize.Bicubic)
}

func scaleDimension(n int, pct float64) uint {
	scaled := math.Floor(float64(n)*pct + 0.5)
	if scaled < 1 {
		return 1
	}
	return uint(scaled)
}

// Decode reads an image in any registered format from r, applies Thumbnail
// and returns its grid. Errors are *ImageLoadError with Path "-".
func Decode(r io.Reader, thumbnail float64) (Grid, error) {
	return decode(r, "-", thumbnail)
}

// Load is Decode for the file at path. The file is closed before Load
// returns.
func Load(path string, thumbnail float64) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	defer f.Close()
	return decode(f, path, thumbnail)
}

func decode(r io.Reader, name string, thumbnail float64) (Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &ImageLoadError{Path: name, Err: err}
	}
	return NewGrid(Thumbnail(img, thumbnail)), nil
}
