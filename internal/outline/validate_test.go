package outline

import "testing"

func TestValidate_AcceptsWellFormedResult(t *testing.T) {
	res := Result{
		Title: "Doc",
		Outline: []Entry{
			{Level: H1, Text: "Intro", Page: 0},
			{Level: H4, Text: "Detail", Page: 4},
		},
	}
	if err := Validate(res, 5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsPageOutOfRange(t *testing.T) {
	res := Result{Outline: []Entry{{Level: H1, Text: "Intro", Page: 5}}}
	if err := Validate(res, 5); err == nil {
		t.Error("expected error for page beyond page count")
	}
	res = Result{Outline: []Entry{{Level: H1, Text: "Intro", Page: -1}}}
	if err := Validate(res, 5); err == nil {
		t.Error("expected error for negative page")
	}
}

func TestValidate_RejectsUnnamedLevel(t *testing.T) {
	res := Result{Outline: []Entry{{Level: levelNone, Text: "Intro", Page: 0}}}
	if err := Validate(res, 5); err == nil {
		t.Error("expected error for level outside H1..H4")
	}
}

func TestValidate_RejectsEmptyHeadingText(t *testing.T) {
	res := Result{Outline: []Entry{{Level: H2, Text: "   ", Page: 0}}}
	if err := Validate(res, 5); err == nil {
		t.Error("expected error for blank heading text")
	}
}
