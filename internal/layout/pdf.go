package layout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	pdflib "github.com/ledongthuc/pdf"
)

// Open decodes the PDF at path into a Document.
func Open(path string) (*Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	return build(reader, filepath.Base(path))
}

// OpenReader decodes a PDF from an arbitrary reader, e.g. an upload.
// The library requires a ReadSeeker with a known size, so the bytes are
// staged in a temp file first.
func OpenReader(r io.Reader, name string) (*Document, error) {
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := Open(tmpPath)
	if err != nil {
		return nil, err
	}
	doc.Source = name
	return doc, nil
}

func build(reader *pdflib.Reader, source string) (doc *Document, err error) {
	// The content parser panics on some malformed streams; surface that as
	// a decode error instead of crashing the whole batch.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("decode pdf content: %v", r)
		}
	}()

	doc = &Document{
		Source: source,
		Title:  metadataTitle(reader),
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := Page{Number: i - 1}
		p := reader.Page(i)
		if !p.V.IsNull() {
			page.Lines = assembleLines(p.Content().Text)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// metadataTitle reads the document information dictionary's Title entry.
func metadataTitle(reader *pdflib.Reader) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()
	v := reader.Trailer().Key("Info").Key("Title")
	if v.Kind() != pdflib.String {
		return ""
	}
	return strings.TrimSpace(decodeTextString(v.RawString()))
}

// decodeTextString handles the two PDF text string encodings: UTF-16BE with
// a byte order mark, and PDFDocEncoding (passed through as-is, which is
// correct for its ASCII range).
func decodeTextString(s string) string {
	if !strings.HasPrefix(s, "\xFE\xFF") {
		return s
	}
	b := []byte(s[2:])
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(units))
}
