/*
Package asciiart renders raster images as lines of text. Every pixel becomes
a glyph of Ramp chosen by its average brightness and, optionally, an ANSI
foreground colour chosen by Classify.

	grid, err := asciiart.Load("saturn.png", 0.25)
	if err != nil {
		return err
	}
	return asciiart.Render(os.Stdout, grid, asciiart.NewConfig(asciiart.WithColor()))
*/
package asciiart

import (
	"image"
	"io"
	"strings"
)

type Encoder struct {
	w   io.Writer
	cfg Config
}

func NewEncoder(w io.Writer, cfg Config) *Encoder {
	return &Encoder{
		w:   w,
		cfg: cfg,
	}
}

// Render writes grid to w using cfg.
func Render(w io.Writer, grid Grid, cfg Config) error {
	return NewEncoder(w, cfg).Encode(grid)
}

/*
Encode writes one newline terminated line per grid row. Each pixel becomes
its ramp glyph repeated ResolutionMultiplier times. With Colored set the run
is wrapped in the colour of the pixel's bucket and a reset; the bucket is
picked from the raw pixel even when brightness is inverted.

A ragged grid is rejected with an *InvalidGridError before anything is
written.
*/
func (enc *Encoder) Encode(grid Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}

	repeat := enc.cfg.ResolutionMultiplier
	if repeat < 1 {
		repeat = 1
	}

	var line strings.Builder
	for _, row := range grid {
		line.Reset()
		for _, p := range row {
			run := strings.Repeat(string(MapBrightness(p, enc.cfg.FixResolution, enc.cfg.InvertBrightness)), repeat)
			if enc.cfg.Colored {
				run = colorize(run, Classify(p))
			}
			line.WriteString(run)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(enc.w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// EncodeImage is Encode for an already decoded image. The thumbnail
// percentage is applied first.
func (enc *Encoder) EncodeImage(img image.Image) error {
	return enc.Encode(NewGrid(Thumbnail(img, enc.cfg.ThumbnailPercentage)))
}
