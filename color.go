package asciiart

import "github.com/muesli/termenv"

// Bucket is an inclusive box in RGB space tied to a terminal colour.
type Bucket struct {
	Label string
	Color termenv.Color
	Lower Pixel
	Upper Pixel
}

// Contains reports whether every channel of p lies within the box.
func (b Bucket) Contains(p Pixel) bool {
	return b.Lower.R <= p.R && p.R <= b.Upper.R &&
		b.Lower.G <= p.G && p.G <= b.Upper.G &&
		b.Lower.B <= p.B && p.B <= b.Upper.B
}

// DefaultBucket is returned by Classify when no entry of Buckets matches.
var DefaultBucket = Bucket{Label: "default", Color: defaultForeground{}}

// Buckets is scanned top to bottom and the first match wins. The grays come
// first, then the saturated light colours, then the normal ones whose boxes
// overlap the light ones.
var Buckets = []Bucket{
	{"black", termenv.ANSIBlack, Pixel{0, 0, 0}, Pixel{63, 63, 63}},
	{"light black", termenv.ANSIBrightBlack, Pixel{64, 64, 64}, Pixel{127, 127, 127}},
	{"white", termenv.ANSIWhite, Pixel{128, 128, 128}, Pixel{191, 191, 191}},
	{"light white", termenv.ANSIBrightWhite, Pixel{192, 192, 192}, Pixel{255, 255, 255}},

	{"light red", termenv.ANSIBrightRed, Pixel{192, 0, 0}, Pixel{255, 127, 127}},
	{"light green", termenv.ANSIBrightGreen, Pixel{0, 192, 0}, Pixel{127, 255, 127}},
	{"light yellow", termenv.ANSIBrightYellow, Pixel{192, 192, 0}, Pixel{255, 255, 127}},
	{"light blue", termenv.ANSIBrightBlue, Pixel{0, 0, 192}, Pixel{127, 127, 255}},
	{"light magenta", termenv.ANSIBrightMagenta, Pixel{192, 0, 192}, Pixel{255, 127, 255}},
	{"light cyan", termenv.ANSIBrightCyan, Pixel{0, 192, 192}, Pixel{127, 255, 255}},

	{"red", termenv.ANSIRed, Pixel{128, 0, 0}, Pixel{255, 127, 127}},
	{"green", termenv.ANSIGreen, Pixel{0, 128, 0}, Pixel{127, 255, 127}},
	{"yellow", termenv.ANSIYellow, Pixel{128, 128, 0}, Pixel{255, 255, 127}},
	{"blue", termenv.ANSIBlue, Pixel{0, 0, 128}, Pixel{127, 127, 255}},
	{"magenta", termenv.ANSIMagenta, Pixel{128, 0, 128}, Pixel{255, 127, 255}},
	{"cyan", termenv.ANSICyan, Pixel{0, 128, 128}, Pixel{127, 255, 255}},
}

// Classify returns the first bucket of Buckets containing p, or
// DefaultBucket.
func Classify(p Pixel) Bucket {
	for _, b := range Buckets {
		if b.Contains(p) {
			return b
		}
	}
	return DefaultBucket
}
