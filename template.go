package mtm

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Template is one reference image to search for.  Callers searching for
// geometric variants of an object (rotations, flips) pass one Template per
// variant, the variants are reconciled by suppression after matching.
type Template struct {
	// Image is the reference image.  It must have the same channel count
	// and bit depth as the search image and must not be larger than it.
	Image gocv.Mat
	// Label names the template in detection results
	Label string
	// Threshold overrides the call level score threshold for this template
	// when non-zero
	Threshold float32
}

// LoadTemplate reads a template image from the given file
func LoadTemplate(file, label string) (Template, error) {

	img := gocv.IMRead(file, gocv.IMReadUnchanged)

	if img.Empty() {
		return Template{}, fmt.Errorf("error reading template image from: %s", file)
	}

	return Template{Image: img, Label: label}, nil
}

// LoadTemplates reads a list of template image files.  On error any
// templates already loaded are closed.
func LoadTemplates(files []string) ([]Template, error) {

	templates := make([]Template, 0, len(files))

	for _, file := range files {
		tpl, err := LoadTemplate(file, "")

		if err != nil {
			CloseTemplates(templates)
			return nil, err
		}

		templates = append(templates, tpl)
	}

	return templates, nil
}

// CloseTemplates frees the image memory held by the given templates
func CloseTemplates(templates []Template) {
	for _, tpl := range templates {
		_ = tpl.Image.Close()
	}
}
