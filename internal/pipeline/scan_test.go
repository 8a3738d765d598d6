package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan_MissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing input directory")
	}
}

func TestScan_FiltersToPDFsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt", "report.pdf.bak"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 PDFs, got %d", len(files))
	}
	// ReadDir returns entries sorted by name.
	if files[0].Base != "a" || files[1].Base != "b" {
		t.Errorf("expected bases a, b; got %q, %q", files[0].Base, files[1].Base)
	}
}

func TestScan_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "inner.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected nested PDFs ignored, got %d entries", len(files))
	}
}
