package render

import "image/color"

var (
	// White used for text labels
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// templateColors is the palette used to paint detection outlines, one
	// color per template index so variants of the same template family can
	// be told apart in the output image
	templateColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 52, G: 69, B: 147, A: 255},   // #344593
		{R: 132, G: 56, B: 255, A: 255},  // #8438FF
		{R: 255, G: 149, B: 200, A: 255}, // #FF95C8
		{R: 255, G: 55, B: 199, A: 255},  // #FF37C7
		{R: 44, G: 153, B: 168, A: 255},  // #2C99A8
		{R: 61, G: 219, B: 134, A: 255},  // #3DDB86
		{R: 146, G: 204, B: 23, A: 255},  // #92CC17
	}
)

// TemplateColor returns the outline color used for the given template index
func TemplateColor(index int) color.RGBA {

	if index < 0 {
		index = -index
	}

	return templateColors[index%len(templateColors)]
}
