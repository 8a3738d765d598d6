package profile

import (
	"strings"
	"testing"

	"github.com/docforge/outliner/internal/layout"
)

func line(size int, text string) layout.Line {
	return layout.Line{Spans: []layout.Span{{Text: text, Size: size}}}
}

func bodyPage(n int) layout.Page {
	page := layout.Page{}
	for i := 0; i < 10; i++ {
		page.Lines = append(page.Lines, line(10, strings.Repeat("lorem ipsum dolor ", 5)))
	}
	page.Number = n
	return page
}

func assertInvariants(t *testing.T, p Profile) {
	t.Helper()
	if !(p.H1 > p.H2 && p.H2 > p.H3 && p.H3 > p.H4) {
		t.Fatalf("thresholds not strictly descending: %+v", p)
	}
	if p.H4 < p.Body+1 {
		t.Fatalf("H4 %d below body+1 (%d)", p.H4, p.Body+1)
	}
}

func TestBuild_NoTextFallback(t *testing.T) {
	p := Build(nil, 0)
	want := Profile{H1: 24, H2: 18, H3: 14, H4: 12, Body: 10}
	if p != want {
		t.Errorf("expected fallback profile %+v, got %+v", want, p)
	}
	assertInvariants(t, p)
}

func TestBuild_BodyIsCharacterWeightedMode(t *testing.T) {
	// One short line at a huge size must not outweigh paragraphs of body
	// text, because the histogram weights by character count.
	page := bodyPage(0)
	page.Lines = append(page.Lines, line(30, "BIG"))
	p := Build([]layout.Page{page}, 0)
	if p.Body != 10 {
		t.Errorf("expected body size 10, got %d", p.Body)
	}
}

func TestBuild_AssignsDistinctSizesDescending(t *testing.T) {
	page := bodyPage(0)
	page.Lines = append(page.Lines,
		line(30, "Part One"),
		line(24, "Chapter"),
		line(18, "Section"),
		line(14, "Subsection"),
	)
	p := Build([]layout.Page{page}, 0)
	if p.Body != 10 {
		t.Fatalf("expected body 10, got %d", p.Body)
	}
	if p.H1 != 30 || p.H2 != 24 || p.H3 != 18 || p.H4 != 14 {
		t.Errorf("expected thresholds 30/24/18/14, got %d/%d/%d/%d", p.H1, p.H2, p.H3, p.H4)
	}
	assertInvariants(t, p)
}

func TestBuild_SingleFontSizeDegenerate(t *testing.T) {
	// A document set entirely in one size has no heading signal; the
	// thresholds cluster just above the body size but stay ordered.
	pages := []layout.Page{bodyPage(0)}
	p := Build(pages, 0)
	if p.Body != 10 {
		t.Fatalf("expected body 10, got %d", p.Body)
	}
	assertInvariants(t, p)
	if p.H4 != 11 {
		t.Errorf("expected H4 just above body, got %d", p.H4)
	}
}

func TestBuild_SynthesizesMissingLevels(t *testing.T) {
	page := bodyPage(0)
	page.Lines = append(page.Lines, line(30, "The Only Heading Size"))
	p := Build([]layout.Page{page}, 0)
	if p.H1 != 30 {
		t.Errorf("expected the single large size to become H1, got %d", p.H1)
	}
	assertInvariants(t, p)
}

func TestBuild_IgnoresTinyText(t *testing.T) {
	page := layout.Page{Lines: []layout.Line{line(6, "footer text"), line(5, "page marker")}}
	p := Build([]layout.Page{page}, 0)
	want := Profile{H1: 24, H2: 18, H3: 14, H4: 12, Body: 10}
	if p != want {
		t.Errorf("tiny text should not feed the histogram; expected fallback, got %+v", p)
	}
}

func TestBuild_IgnoresNonAlphabeticSpans(t *testing.T) {
	page := bodyPage(0)
	page.Lines = append(page.Lines, line(30, "123 456 789"))
	p := Build([]layout.Page{page}, 0)
	if p.H1 == 30 {
		t.Errorf("numeric-only span should not register size 30 as a heading candidate")
	}
}

func TestBuild_SampleBound(t *testing.T) {
	// Only the first 20 pages feed the histogram; a giant size appearing
	// later must not influence the thresholds.
	var pages []layout.Page
	for i := 0; i < 20; i++ {
		pages = append(pages, bodyPage(i))
	}
	late := layout.Page{Number: 20, Lines: []layout.Line{line(40, "Appendix Heading")}}
	pages = append(pages, late)

	p := Build(pages, 0)
	if p.H1 == 40 {
		t.Errorf("size on page 21 should be outside the sample, got H1=%d", p.H1)
	}
}
