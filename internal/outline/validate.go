package outline

import (
	"fmt"
	"strings"
)

// Validate checks a result against its source document's page count: every
// entry must carry a named heading level and a page inside [0, pageCount).
// Extraction upholds these by construction; Validate is the guard rail for
// results that crossed a serialization boundary.
func Validate(res Result, pageCount int) error {
	for i, e := range res.Outline {
		if _, ok := levelNames[e.Level]; !ok {
			return fmt.Errorf("entry %d (%q): invalid level %d", i, e.Text, int(e.Level))
		}
		if e.Page < 0 || e.Page >= pageCount {
			return fmt.Errorf("entry %d (%q): page %d outside [0, %d)", i, e.Text, e.Page, pageCount)
		}
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("entry %d: empty heading text", i)
		}
	}
	return nil
}
