package error

import (
	"fmt"
	"strings"
)

// SourceError decorates a failure with the name of the input it came
// from, so that a fatal load failure names the offending file or stream.
type SourceError struct {
	Cause      error
	SourceName string
}

func (e *SourceError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}
