// Package outline classifies text lines into a document outline using the
// font size thresholds of a style profile.
package outline

import (
	"encoding/json"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/docforge/outliner/internal/layout"
	"github.com/docforge/outliner/internal/profile"
)

// Level is a heading tier, H1 coarsest.
type Level int

const (
	levelNone Level = iota
	H1
	H2
	H3
	H4
)

var levelNames = map[Level]string{H1: "H1", H2: "H2", H3: "H3", H4: "H4"}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "none"
}

func (l Level) MarshalJSON() ([]byte, error) {
	name, ok := levelNames[l]
	if !ok {
		return nil, fmt.Errorf("level %d has no name", int(l))
	}
	return json.Marshal(name)
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for lvl, n := range levelNames {
		if n == name {
			*l = lvl
			return nil
		}
	}
	return fmt.Errorf("unknown heading level %q", name)
}

// Entry is one detected heading. Page is 0-indexed.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the outline of one document, in reading order. Written once,
// never mutated after construction.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Extract walks every line of the document and emits a heading entry for
// each line whose size and style cross a profile threshold. A document with
// no qualifying lines yields an empty (non-nil) outline.
func Extract(doc *layout.Document, prof profile.Profile) Result {
	res := Result{
		Title:   cleanTitle(resolveTitle(doc)),
		Outline: []Entry{},
	}

	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			text := line.Text()
			level := classify(prof, line.Size(), line.Bold(), text)
			if level == levelNone {
				continue
			}
			res.Outline = appendEntry(res.Outline, Entry{Level: level, Text: text, Page: page.Number})
		}
	}
	return res
}

// classify determines the heading level of a line, most specific threshold
// first. Lines that are too short, purely numeric, or contain no letter are
// never headings (page numbers, rules, dingbats).
func classify(prof profile.Profile, size int, bold bool, text string) Level {
	if utf8.RuneCountInString(text) < 3 || isNumeric(text) || !containsLetter(text) {
		return levelNone
	}
	switch {
	case size >= prof.H1:
		return H1
	case size >= prof.H2:
		return H2
	case size >= prof.H3:
		return H3
	case size >= prof.H4 && (size > prof.Body || bold):
		return H4
	default:
		return levelNone
	}
}

// appendEntry appends unless the entry duplicates the previous one. An
// entry only counts as a duplicate when both its text and its page match
// the last appended entry; the same heading repeated on a later page is
// always kept. Known heuristic quirk, preserved deliberately.
func appendEntry(entries []Entry, e Entry) []Entry {
	if n := len(entries); n > 0 {
		last := entries[n-1]
		if last.Text == e.Text && last.Page == e.Page {
			return entries
		}
	}
	return append(entries, e)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
