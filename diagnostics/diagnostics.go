// Package diagnostics renders compiler errors against the source they
// point into.
package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Diagnostic is one located compiler error.
type Diagnostic struct {
	Source   string
	FileName string
	// Start and End are byte offsets into Source, End exclusive.
	Start   int
	End     int
	Label   string
	Message string
	Code    string
}

// Emitter is the sink the compiler reports diagnostics to.
type Emitter interface {
	Emit(d *Diagnostic)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(d *Diagnostic)

func (f EmitterFunc) Emit(d *Diagnostic) {
	f(d)
}

// Position is a 1-based line and column; the column counts runes.
type Position struct {
	Line   int
	Column int
}

// PositionOf converts a byte offset of src into a line and column. Offsets
// past the end clamp to the end.
func PositionOf(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}

	head := src[:offset]
	line := strings.Count(head, "\n") + 1
	lineStart := strings.LastIndexByte(head, '\n') + 1
	return Position{Line: line, Column: utf8.RuneCountInString(head[lineStart:]) + 1}
}

// TextEmitter writes a plain text report per diagnostic:
//
//	error[E0003]: duplicate macro
//	 --> pools.fol:2:7
//	  |
//	2 | macro main { unknown }
//	  |       ^^^^ main is already defined
type TextEmitter struct {
	w io.Writer
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer) *TextEmitter {
	return &TextEmitter{w: w}
}

func (e *TextEmitter) Emit(d *Diagnostic) {
	io.WriteString(e.w, Render(d))
}

// Render formats d as TextEmitter does.
func Render(d *Diagnostic) string {
	var b strings.Builder
	if d.Code != "" {
		fmt.Fprintf(&b, "error[%s]: %s\n", d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "error: %s\n", d.Message)
	}

	start, end := clamp(d.Source, d.Start, d.End)
	pos := PositionOf(d.Source, start)
	gutter := strings.Repeat(" ", len(fmt.Sprint(pos.Line)))
	fmt.Fprintf(&b, "%s--> %s:%d:%d\n", gutter, d.FileName, pos.Line, pos.Column)

	lineStart := strings.LastIndexByte(d.Source[:start], '\n') + 1
	lineEnd := len(d.Source)
	if i := strings.IndexByte(d.Source[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	line := strings.TrimRight(d.Source[lineStart:lineEnd], "\r")

	// a span running onto later lines is underlined to the end of its first
	if end > lineEnd {
		end = lineEnd
	}
	width := utf8.RuneCountInString(d.Source[start:end])
	if width == 0 {
		width = 1
	}

	fmt.Fprintf(&b, "%s |\n", gutter)
	fmt.Fprintf(&b, "%d | %s\n", pos.Line, expandTabs(line))
	marker := strings.Repeat(" ", pos.Column-1) + strings.Repeat("^", width)
	if d.Label != "" {
		marker += " " + d.Label
	}
	fmt.Fprintf(&b, "%s | %s\n", gutter, marker)
	return b.String()
}

func clamp(src string, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > len(src) {
		start = len(src)
	}
	if end < start {
		end = start
	}
	if end > len(src) {
		end = len(src)
	}
	return start, end
}

// expandTabs replaces tabs by a single space so carets line up with the
// echoed source.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
