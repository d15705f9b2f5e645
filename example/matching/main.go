package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"gocv.io/x/gocv"

	mtm "github.com/mtmatch/go-mtm"
	"github.com/mtmatch/go-mtm/correlate"
	"github.com/mtmatch/go-mtm/render"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/board.jpg", "Image file to search in")
	tplFiles := flag.String("t", "../data/chip.jpg", "Comma separated list of template image files")
	labelFile := flag.String("l", "", "Optional text file with one label per template")
	saveFile := flag.String("o", "../data/result.jpg", "Output image file with detections drawn")
	threshold := flag.Float64("s", mtm.DefaultScoreThreshold, "Score threshold for candidate detections")
	overlap := flag.Float64("v", mtm.DefaultMaxOverlap, "Maximum overlap ratio between kept detections")
	maxObjects := flag.Int("n", mtm.Unlimited, "Expected number of objects in the image")
	single := flag.Bool("single", false, "Return only the best match per template")
	downscale := flag.Int("d", 1, "Downscale factor to speed up the search")
	workers := flag.Int("w", 1, "Number of goroutines to extract candidates with")
	engineName := flag.String("e", "ccoeff", "Correlation engine to use [ccoeff|sqdiff|ncc]")

	flag.Parse()

	// load image to search in
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	// load template images
	templates, err := mtm.LoadTemplates(strings.Split(*tplFiles, ","))

	if err != nil {
		log.Fatal("Error loading templates: ", err)
	}

	defer mtm.CloseTemplates(templates)

	// apply labels to templates if a label file was given
	if *labelFile != "" {
		labels, err := mtm.LoadLabels(*labelFile)

		if err != nil {
			log.Fatal("Error loading labels: ", err)
		}

		if err := mtm.ApplyLabels(templates, labels); err != nil {
			log.Fatal("Error applying labels: ", err)
		}
	}

	params := mtm.NewMatchParams()
	params.ScoreThreshold = float32(*threshold)
	params.MaxOverlap = float32(*overlap)
	params.MaxObjects = *maxObjects
	params.SingleMatch = *single
	params.Downscale = *downscale
	params.Workers = *workers

	matcher := mtm.NewMatcher(pickEngine(*engineName), params)

	detections, err := matcher.MatchTemplates(img, templates)

	if err != nil {
		log.Fatal("Matching failed with error: ", err)
	}

	log.Printf("Found %d objects", len(detections))

	for _, det := range detections {
		bounds := det.Region.Bounds()
		fmt.Printf("%s @ (%.0f %.0f %.0fx%.0f) score=%.3f\n",
			det.Label, bounds.X, bounds.Y, bounds.W, bounds.H, det.Score)
	}

	// draw detections and save the result
	render.DetectionBoxes(&img, detections, render.DefaultFont(), 2)

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Failed to save result image to: ", *saveFile)
	}

	log.Println("Saved result image to:", *saveFile)
}

// pickEngine maps the engine cli flag to a correlation engine
func pickEngine(name string) correlate.Engine {

	switch strings.ToLower(name) {
	case "sqdiff":
		return correlate.NewSqDiffNormed()
	case "ncc":
		return correlate.NewNCC()
	default:
		return correlate.NewCCoeffNormed()
	}
}
