package asm

import (
	"fmt"
	"strings"
)

// AssembleError reports a failure at a specific source line, with the
// surrounding lines included for context.
type AssembleError struct {
	Message string
	Line    int
	Context string
}

func (e *AssembleError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("(line %d) %s\n%s", e.Line, e.Message, e.Context)
	}
	if e.Line > 0 {
		return fmt.Sprintf("(line %d) %s", e.Line, e.Message)
	}
	return e.Message
}

func lineError(source string, line int, err error) *AssembleError {
	return &AssembleError{
		Message: err.Error(),
		Line:    line,
		Context: errorContext(source, line),
	}
}

// errorContext renders two lines of source on either side of the failing
// line, with the failing line marked.
func errorContext(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	start := line - 3
	if start < 0 {
		start = 0
	}
	end := line + 2
	if end > len(lines) {
		end = len(lines)
	}

	width := len(fmt.Sprintf("%d", end))
	var buf strings.Builder
	for i := start; i < end; i++ {
		if i+1 == line {
			fmt.Fprintf(&buf, "> %*d | %s\n", width, i+1, lines[i])
		} else {
			fmt.Fprintf(&buf, "  %*d | %s\n", width, i+1, lines[i])
		}
	}
	return buf.String()
}
