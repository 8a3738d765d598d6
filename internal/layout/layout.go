// Package layout turns a PDF into positioned text structure: pages made of
// lines, lines made of spans. It is a thin adapter over the text layer the
// PDF library exposes; scanned (image-only) PDFs yield empty pages.
package layout

import "strings"

// Span is a run of text with uniform style on a single line.
type Span struct {
	Text   string
	Size   int // font size in points, rounded to the nearest integer
	Bold   bool
	Italic bool
}

// Line is an ordered sequence of spans sharing a visual baseline.
type Line struct {
	Spans []Span
}

// Text merges all spans into one string, trimmed.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return strings.TrimSpace(sb.String())
}

// Size is the line's dominant font size, taken from its first span.
// This is an accepted simplification, not a guarantee of true dominance.
func (l Line) Size() int {
	if len(l.Spans) == 0 {
		return 0
	}
	return l.Spans[0].Size
}

// Bold reports whether the line's first span is bold.
func (l Line) Bold() bool {
	if len(l.Spans) == 0 {
		return false
	}
	return l.Spans[0].Bold
}

// Page holds the lines of one page in reading order (top to bottom).
// Number is 0-indexed.
type Page struct {
	Number int
	Lines  []Line
}

// Document is the decoded layout of one PDF file.
type Document struct {
	Source string // base name of the source file
	Title  string // metadata title, "" when absent
	Pages  []Page
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
