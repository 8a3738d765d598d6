// Package profile derives a document's heading size thresholds from the
// frequency of font sizes in its text.
package profile

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docforge/outliner/internal/layout"
)

// DefaultSamplePages bounds how many pages Build examines.
const DefaultSamplePages = 20

// minCountedSize excludes tiny footer/header text from the histogram.
const minCountedSize = 6

// Profile maps heading levels to font size thresholds. Thresholds strictly
// decrease H1 > H2 > H3 > H4, and every heading threshold is at least
// Body+1. Built once per document, immutable afterward.
type Profile struct {
	H1   int
	H2   int
	H3   int
	H4   int
	Body int
}

// fallback is used when a document yields no measurable text at all.
var fallback = Profile{H1: 24, H2: 18, H3: 14, H4: 12, Body: 10}

// Build scans at most samplePages pages (DefaultSamplePages when <= 0) and
// derives thresholds from a character-weighted font size histogram. The
// body size is the histogram mode; heading thresholds are the distinct
// sizes above it, largest first. A document using a single font size yields
// degenerate thresholds clustered just above the body size, which is the
// best available answer when no other signal exists.
func Build(pages []layout.Page, samplePages int) Profile {
	if samplePages <= 0 {
		samplePages = DefaultSamplePages
	}
	if len(pages) > samplePages {
		pages = pages[:samplePages]
	}

	hist := histogram(pages)
	if len(hist) == 0 {
		return fallback
	}

	body := mode(hist)

	// Distinct sizes strictly above body, descending.
	var candidates []int
	for size := range hist {
		if size > body {
			candidates = append(candidates, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(candidates)))

	levels := [4]int{}
	for i := 0; i < len(levels) && i < len(candidates); i++ {
		levels[i] = candidates[i]
	}

	// Repair pass from H4 upward: unassigned levels are synthesized just
	// above the body size, and assigned ones are pushed apart if needed,
	// keeping the strict descent H1 > H2 > H3 > H4 >= body+1 total.
	floor := body + 1
	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i] < floor {
			levels[i] = floor
		}
		floor = levels[i] + 1
	}

	return Profile{H1: levels[0], H2: levels[1], H3: levels[2], H4: levels[3], Body: body}
}

// histogram weights each size by character count rather than occurrence
// count, so one large heading line does not outweigh paragraphs of body
// text.
func histogram(pages []layout.Page) map[int]int {
	hist := make(map[int]int)
	for _, page := range pages {
		for _, line := range page.Lines {
			for _, span := range line.Spans {
				text := strings.TrimSpace(span.Text)
				if span.Size <= minCountedSize || !hasLetter(text) {
					continue
				}
				hist[span.Size] += utf8.RuneCountInString(text)
			}
		}
	}
	return hist
}

// mode returns the most frequent size, preferring the smaller size on ties
// for determinism.
func mode(hist map[int]int) int {
	best, bestCount := 0, -1
	for size, count := range hist {
		if count > bestCount || (count == bestCount && size < best) {
			best, bestCount = size, count
		}
	}
	return best
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
