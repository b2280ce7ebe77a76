package export

import "fmt"

// ExportError is the single failure surfaced by the export pipeline.
// Whatever stage failed underneath, callers show one "download failed,
// try again" condition and no partial artifact is ever offered.
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
