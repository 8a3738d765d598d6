package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docforge/outliner/internal/outline"
)

func sampleResult() outline.Result {
	return outline.Result{
		Title: "Résumé & Career Plans",
		Outline: []outline.Entry{
			{Level: outline.H1, Text: "Überblick", Page: 0},
			{Level: outline.H2, Text: "Details <draft>", Page: 2},
		},
	}
}

func TestEncode_FourSpaceIndent(t *testing.T) {
	data, err := Encode(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "\n    \"title\"") {
		t.Errorf("expected 4-space indentation, got:\n%s", s)
	}
	if !strings.Contains(s, `"level": "H1"`) {
		t.Errorf("expected heading level as string, got:\n%s", s)
	}
}

func TestEncode_NonASCIILiteral(t *testing.T) {
	data, err := Encode(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(data, []byte("Résumé")) || !bytes.Contains(data, []byte("Überblick")) {
		t.Error("expected non-ASCII characters emitted literally, not escaped")
	}
	if bytes.Contains(data, []byte(`\u00`)) {
		t.Error("expected no unicode escapes in output")
	}
	if !bytes.Contains(data, []byte("<draft>")) {
		t.Error("expected HTML characters left unescaped")
	}
}

func TestEncode_EmptyOutlineIsArray(t *testing.T) {
	data, err := Encode(outline.Result{Title: "t", Outline: []outline.Entry{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"outline": []`) {
		t.Errorf("expected empty array, got:\n%s", data)
	}
}

func TestWriteResult_ByteIdenticalReruns(t *testing.T) {
	dir := t.TempDir()

	p1, err := WriteResult(dir, "doc", sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, err := os.ReadFile(p1)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	p2, err := WriteResult(dir, "doc", sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := os.ReadFile(p2)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if p1 != p2 {
		t.Errorf("expected the same output path, got %q and %q", p1, p2)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected byte-identical output on rerun")
	}
}

func TestWriteResult_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteResult(dir, "doc", sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "doc.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only doc.json, got %v", names)
	}
	_ = filepath.Join(dir, "doc.json")
}
