package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/docforge/outliner/internal/outline"
	"github.com/docforge/outliner/internal/pipeline"
)

// handlePreview renders a completed job's outline as an HTML page, going
// through a markdown intermediate so the heading hierarchy maps onto
// h1..h4 tags.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	if snap.Status != pipeline.StatusCompleted || snap.Result == nil {
		jsonError(w, fmt.Sprintf("job is %s, no result yet", snap.Status), http.StatusConflict)
		return
	}

	md := outlineMarkdown(*snap.Result)
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		jsonError(w, "render preview: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// outlineMarkdown renders a result as markdown: the title as the top
// heading, each entry as a hash heading of matching depth with its page
// number alongside.
func outlineMarkdown(res outline.Result) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(res.Title)
	sb.WriteString("\n\n")
	for _, e := range res.Outline {
		sb.WriteString(strings.Repeat("#", headingDepth(e.Level)))
		sb.WriteString(" ")
		sb.WriteString(e.Text)
		sb.WriteString(fmt.Sprintf(" (p. %d)\n\n", e.Page))
	}
	return sb.String()
}

func headingDepth(l outline.Level) int {
	switch l {
	case outline.H1:
		return 1
	case outline.H2:
		return 2
	case outline.H3:
		return 3
	default:
		return 4
	}
}
