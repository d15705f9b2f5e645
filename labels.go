package mtm

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLabels reads template labels from the given text file.  It should
// contain one label per line in the same order as the templates they name.
// Blank lines are skipped.
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}

// ApplyLabels assigns one label per template in order.  There must be
// exactly one label for every template.
func ApplyLabels(templates []Template, labels []string) error {

	if len(labels) != len(templates) {
		return fmt.Errorf("%w: %d labels for %d templates",
			ErrLabelCount, len(labels), len(templates))
	}

	for i := range templates {
		templates[i].Label = labels[i]
	}

	return nil
}
