package core

// Color is an ANSI 256-color code.
type Color uint8

const (
	// grayFirst and grayLast bound the 24-step grayscale ramp of the
	// 256-color palette.
	grayFirst Color = 232
	grayLast  Color = 255

	// grayFloor keeps the darkest lit glyph visible on a black background.
	grayFloor = 5
)

// GrayLevel maps an illumination index in [0, levels) to a grayscale
// color, darkest first. Out-of-range indices are clamped.
func GrayLevel(index, levels int) Color {
	if levels <= 1 {
		return grayLast
	}
	index = Clamp(index, 0, levels-1)
	span := int(grayLast-grayFirst) - grayFloor
	step := grayFloor + index*span/(levels-1)
	return grayFirst + Color(step)
}
