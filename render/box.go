// Package render draws template matching results onto images for
// inspection and visualisation.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	mtm "github.com/mtmatch/go-mtm"
	"github.com/mtmatch/go-mtm/geometry"
)

// boxLabel defines a text label to draw on the image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// DetectionBoxes renders the bounding regions of the detections on the
// image.  Detections produced by the same template are drawn in the same
// color.  Labels show the template label and the match score.
func DetectionBoxes(img *gocv.Mat, detections []mtm.Detection,
	font Font, lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0)

	for _, det := range detections {

		useClr := TemplateColor(det.TemplateIndex)

		drawRegion(img, det.Region, useClr, lineThickness)

		bounds := det.Region.Bounds().ToImageRect()

		text := labelText(det)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// Calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (bounds.Min.X + bounds.Max.X) / 2

		case Right:
			centerX = bounds.Max.X - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = bounds.Min.X + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		// Adjust the label position so the text is centered horizontally
		labelPosition := image.Pt(centerX-textSize.X/2, bounds.Min.Y-font.BottomPad)

		// create box for placing text on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			bounds.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, bounds.Min.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels last so they are the top most layer
	// on the image and don't get overlapped by region outlines
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// DetectionBoxesTTF renders the bounding regions of the detections with
// labels drawn using a TrueType font face
func DetectionBoxesTTF(img *gocv.Mat, detections []mtm.Detection,
	ttf *TTF, lineThickness int) error {

	for _, det := range detections {

		useClr := TemplateColor(det.TemplateIndex)

		drawRegion(img, det.Region, useClr, lineThickness)

		bounds := det.Region.Bounds().ToImageRect()

		err := ttf.Render(img, labelText(det),
			image.Pt(bounds.Min.X, bounds.Min.Y-4), useClr)

		if err != nil {
			return err
		}
	}

	return nil
}

// labelText formats the text label for a detection
func labelText(det mtm.Detection) string {

	if det.Label == "" {
		return fmt.Sprintf("%.2f", det.Score)
	}

	return fmt.Sprintf("%s %.2f", det.Label, det.Score)
}

// drawRegion draws the outline of a detection region.  Axis-aligned
// rectangles use the OpenCV rectangle primitive, any other shape is drawn
// edge by edge from its corners.
func drawRegion(img *gocv.Mat, region geometry.Region,
	clr color.RGBA, lineThickness int) {

	if rect, ok := region.(geometry.Rect); ok {
		gocv.Rectangle(img, rect.ToImageRect(), clr, lineThickness)
		return
	}

	corners := region.Corners()

	for i := range corners {
		from := corners[i]
		to := corners[(i+1)%len(corners)]

		gocv.Line(img,
			image.Pt(int(from.X), int(from.Y)),
			image.Pt(int(to.X), int(to.Y)),
			clr, lineThickness)
	}
}
