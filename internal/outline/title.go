package outline

import (
	"strings"
	"unicode/utf8"

	"github.com/docforge/outliner/internal/layout"
)

// minMetadataTitle is the shortest metadata title worth trusting; anything
// shorter is usually a tool artifact like "doc" or an empty placeholder.
const minMetadataTitle = 5

// resolveTitle picks a document title, first match wins: a usable metadata
// title, then the largest-font text on the first page, then the source file
// name.
func resolveTitle(doc *layout.Document) string {
	if t := strings.TrimSpace(doc.Title); utf8.RuneCountInString(t) >= minMetadataTitle {
		return t
	}
	if t := firstPageTitle(doc); t != "" {
		return t
	}
	return doc.Source
}

// firstPageTitle joins the first page's lines set in (or within one point
// of) the largest font size on that page. The one-point tolerance absorbs
// sub-pixel size variance across the title's lines.
func firstPageTitle(doc *layout.Document) string {
	if len(doc.Pages) == 0 {
		return ""
	}
	page := doc.Pages[0]

	maxSize := 0
	for _, line := range page.Lines {
		for _, span := range line.Spans {
			if span.Size > maxSize {
				maxSize = span.Size
			}
		}
	}
	if maxSize == 0 {
		return ""
	}

	var parts []string
	for _, line := range page.Lines {
		if line.Size() >= maxSize-1 {
			if text := line.Text(); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// cleanTitle strips a literal "RFP:" prefix token from request-for-proposal
// documents, where the metadata routinely doubles the acronym up with the
// spelled-out phrase. This is a document-specific cleanup, not a general
// title normalization.
func cleanTitle(title string) string {
	if strings.Contains(strings.ToLower(title), "request for proposal") {
		title = strings.TrimSpace(strings.ReplaceAll(title, "RFP:", ""))
	}
	return title
}
