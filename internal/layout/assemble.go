package layout

import (
	"math"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// assembleLines groups raw text fragments into baseline-ordered lines of
// style-merged spans. Fragments share a line when their Y coordinates round
// to the same value; within a line they are ordered left to right and merged
// into one span while font and size stay the same.
func assembleLines(texts []pdflib.Text) []Line {
	rows := make(map[int64][]pdflib.Text)
	var keys []int64
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		y := int64(math.Round(t.Y))
		if _, ok := rows[y]; !ok {
			keys = append(keys, y)
		}
		rows[y] = append(rows[y], t)
	}

	// PDF Y increases bottom to top, so reading order is descending Y.
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	lines := make([]Line, 0, len(keys))
	for _, y := range keys {
		frags := rows[y]
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })
		if line := mergeFragments(frags); len(line.Spans) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

// mergeFragments folds left-to-right fragments into spans, starting a new
// span whenever the font face or rounded size changes. A space is inserted
// when the horizontal gap between fragments exceeds a fifth of the font
// size, since the text layer often omits explicit spaces between words.
func mergeFragments(frags []pdflib.Text) Line {
	var line Line
	var cur *Span
	var curFont string
	prevEnd := math.Inf(-1)

	for _, f := range frags {
		size := int(math.Round(f.FontSize))
		gap := f.X - prevEnd
		needSpace := !math.IsInf(prevEnd, -1) && gap > math.Max(f.FontSize*0.2, 1)

		if cur == nil || f.Font != curFont || size != cur.Size {
			if cur != nil && needSpace {
				cur.Text += " "
				needSpace = false
			}
			line.Spans = append(line.Spans, Span{
				Size:   size,
				Bold:   isBoldFont(f.Font),
				Italic: isItalicFont(f.Font),
			})
			cur = &line.Spans[len(line.Spans)-1]
			curFont = f.Font
		}
		if needSpace {
			cur.Text += " "
		}
		cur.Text += f.S
		prevEnd = f.X + f.W
	}
	return line
}

func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy")
}

func isItalicFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}
