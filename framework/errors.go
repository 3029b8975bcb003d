package framework

import (
	"errors"
	"strings"
)

const errorTraceLabel = "Error Trace:"

// reformatError makes the multi-line messages produced by testify assertions easier to read on
// the console. The "Error Trace" section only points into harness code, so it is dropped, and
// the leading tab indentation of each line is removed.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	out := make([]string, 0, len(lines))
	inTrace := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, "\t")
		if strings.HasPrefix(trimmed, errorTraceLabel) {
			inTrace = true
			continue
		}
		if inTrace {
			// continuation lines of a section are aligned with spaces after the first tab
			if strings.HasPrefix(line, "\t ") {
				continue
			}
			inTrace = false
		}
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return err
	}
	return errors.New(strings.Join(out, "\n"))
}
