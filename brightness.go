package asciiart

// Ramp holds the output glyphs ordered from thinnest to boldest.
const Ramp = " .'`^\",:;Il!i~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// Gray is the integer average of the three channels.
func Gray(p Pixel) int {
	return (int(p.R) + int(p.G) + int(p.B)) / 3
}

// MapBrightness returns the ramp glyph for p. The quantized value wraps
// around the ramp instead of clamping, so very bright pixels can land on thin
// glyphs again. A fixResolution below 1 is treated as 1.
func MapBrightness(p Pixel, fixResolution int, invert bool) byte {
	if fixResolution < 1 {
		fixResolution = 1
	}
	value := Gray(p)
	if invert {
		value = 255 - value
	}
	return Ramp[(value/fixResolution)%len(Ramp)]
}
