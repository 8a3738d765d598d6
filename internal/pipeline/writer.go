package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docforge/outliner/internal/outline"
)

// Encode renders a result as the canonical output JSON: UTF-8 with
// non-ASCII characters emitted literally, 4-space indentation. Encoding is
// deterministic, so reruns over the same input produce identical bytes.
func Encode(res outline.Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(res); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteResult writes <base>.json under dir via a temp file and rename, so
// a crash mid-write never leaves a partial output file behind. Returns the
// final path.
func WriteResult(dir, base string, res outline.Result) (string, error) {
	data, err := Encode(res)
	if err != nil {
		return "", err
	}

	final := filepath.Join(dir, base+".json")
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalize output file: %w", err)
	}
	return final, nil
}
