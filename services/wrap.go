package services

import "strings"

// WrapText breaks free text into lines no wider than maxWidth, using the
// supplied measure function (typically the PDF engine's string width for
// the active font). Words longer than the full width are emitted on their
// own line rather than split mid-word. Explicit newlines are respected.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}

	return lines
}
