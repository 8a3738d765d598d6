package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo is one input PDF discovered by Scan.
type FileInfo struct {
	Path string // full path to the file
	Base string // file name without the .pdf extension
}

// Scan lists the PDF files directly inside dir (non-recursive, extension
// matched case-insensitively), sorted by name. A missing or unreadable
// input directory is a configuration failure: the caller must abort the
// run without producing any output.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !strings.EqualFold(ext, ".pdf") {
			continue
		}
		files = append(files, FileInfo{
			Path: filepath.Join(dir, entry.Name()),
			Base: strings.TrimSuffix(entry.Name(), ext),
		})
	}
	return files, nil
}
