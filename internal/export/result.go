package export

import (
	"bytes"
	"os"
)

// Result holds a finished PDF artifact and its derived filename. Methods
// never modify the underlying data and may be called repeatedly.
type Result struct {
	data     []byte
	filename string
}

// NewResult wraps finished PDF bytes with their download name.
func NewResult(data []byte, filename string) *Result {
	return &Result{data: data, filename: filename}
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Filename returns the download name derived from the document.
func (r *Result) Filename() string {
	return r.filename
}

// Reader returns a reader over the PDF content, suitable for streaming.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteToFile writes the PDF to the file at path.
func (r *Result) WriteToFile(path string) error {
	return os.WriteFile(path, r.data, 0o644)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}
