// Package render turns operation results into human-readable tables or
// indented JSON for the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Output formats accepted by New.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Renderer writes operation results in one configured format. Anything
// other than "json" renders as a table.
type Renderer struct {
	format string
}

// New creates a renderer for the given format.
func New(format string) *Renderer {
	return &Renderer{format: format}
}

func (r *Renderer) wantJSON() bool {
	return r.format == FormatJSON
}

func (r *Renderer) renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

func rule(w io.Writer, width int) {
	for i := 0; i < width; i++ {
		fmt.Fprint(w, "─")
	}
	fmt.Fprintln(w)
}
