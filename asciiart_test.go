package asciiart_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"regexp"
	"strings"

	. "github.com/kevin-cantwell/asciiart"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var escapes = regexp.MustCompile("\033\\[[0-9;]*m")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

var _ = Describe("Encoder", func() {
	var (
		buf  *bytes.Buffer
		grid Grid
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		grid = Grid{
			{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}},
			{{0, 0, 128}, {100, 100, 100}, {100, 30, 30}},
		}
	})

	It("renders black and white at fix resolution 4", func() {
		cfg := NewConfig(WithResolutionMultiplier(1), WithFixResolution(4))
		Expect(Render(buf, Grid{{{0, 0, 0}, {255, 255, 255}}}, cfg)).To(Succeed())
		Expect(buf.String()).To(Equal(string(Ramp[0]) + string(Ramp[(255/4)%len(Ramp)]) + "\n"))
	})

	It("renders with the default config", func() {
		Expect(Render(buf, Grid{{{255, 255, 255}}}, DefaultConfig())).To(Succeed())
		Expect(buf.String()).To(Equal("888\n"))
	})

	It("emits one line per row of width times multiplier characters", func() {
		for _, n := range []int{1, 2, 5} {
			buf.Reset()
			cfg := NewConfig(WithResolutionMultiplier(n), WithColor())
			Expect(Render(buf, grid, cfg)).To(Succeed())

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(grid.Height()))
			for _, line := range lines {
				Expect(escapes.ReplaceAllString(line, "")).To(HaveLen(grid.Width() * n))
			}
		}
	})

	It("emits nothing for an empty grid", func() {
		Expect(Render(buf, Grid{}, DefaultConfig())).To(Succeed())
		Expect(buf.String()).To(BeEmpty())
	})

	It("inverts brightness", func() {
		cfg := NewConfig(WithResolutionMultiplier(1), WithInvertedBrightness())
		Expect(Render(buf, Grid{{{0, 0, 0}, {255, 255, 255}}}, cfg)).To(Succeed())
		Expect(buf.String()).To(Equal(string(Ramp[63]) + string(Ramp[0]) + "\n"))
	})

	It("brackets each run with a colour and a reset", func() {
		cfg := NewConfig(WithResolutionMultiplier(2), WithFixResolution(4), WithColor())
		Expect(Render(buf, Grid{{{0, 0, 0}, {255, 0, 0}, {100, 30, 30}}}, cfg)).To(Succeed())

		red := string(MapBrightness(Pixel{255, 0, 0}, 4, false))
		dull := string(MapBrightness(Pixel{100, 30, 30}, 4, false))
		Expect(buf.String()).To(Equal(
			"\033[30m  \033[0m" +
				"\033[91m" + red + red + "\033[0m" +
				"\033[39m" + dull + dull + "\033[0m" +
				"\n"))
	})

	It("colours from the raw pixel when brightness is inverted", func() {
		cfg := NewConfig(WithResolutionMultiplier(1), WithColor(), WithInvertedBrightness())
		Expect(Render(buf, Grid{{{0, 0, 0}}}, cfg)).To(Succeed())
		Expect(buf.String()).To(Equal("\033[30m" + string(Ramp[63]) + "\033[0m\n"))
	})

	It("treats a non-positive multiplier as 1", func() {
		cfg := NewConfig(WithResolutionMultiplier(0))
		Expect(Render(buf, Grid{{{0, 0, 0}}}, cfg)).To(Succeed())
		Expect(buf.String()).To(Equal(" \n"))
	})

	It("rejects a ragged grid without writing", func() {
		ragged := Grid{{{0, 0, 0}, {0, 0, 0}}, {{0, 0, 0}}}
		err := Render(buf, ragged, DefaultConfig())

		var gridErr *InvalidGridError
		Expect(errors.As(err, &gridErr)).To(BeTrue())
		Expect(buf.String()).To(BeEmpty())
	})

	It("returns write errors", func() {
		Expect(Render(failingWriter{}, grid, DefaultConfig())).To(MatchError("disk full"))
	})

	It("encodes a decoded image", func() {
		img := image.NewRGBA(image.Rect(0, 0, 4, 2))
		for x := 0; x < 4; x++ {
			img.Set(x, 0, color.White)
			img.Set(x, 1, color.Black)
		}
		enc := NewEncoder(buf, NewConfig(WithResolutionMultiplier(1), WithThumbnailPercentage(0.5)))
		Expect(enc.EncodeImage(img)).To(Succeed())

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HaveLen(2))
	})
})
