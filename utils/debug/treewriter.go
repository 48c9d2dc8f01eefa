package debug

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter builds indented human readable dumps.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes quoted text value.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Value writes v as compact JSON, empty fields are omitted by their tags.
func (tw TreeWriter) Value(depth int, label string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		tw.Line(depth, "%s: <%v>", label, err)
		return
	}
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.Write(data)
	tw.w.WriteByte('\n')
}

// Lines writes multi line text, each line indented.
func (tw TreeWriter) Lines(depth int, text string) {
	for line := range strings.Lines(strings.TrimRight(text, "\n")) {
		tw.indent(depth)
		tw.w.WriteString(strings.TrimRight(line, "\n"))
		tw.w.WriteByte('\n')
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
