package feed

import (
	"fmt"
	"io"
)

// WriterPublisher writes status lines to a stream, normally stdout, which is
// where the serial console picks them up.
type WriterPublisher struct {
	w io.Writer
}

func NewWriterPublisher(w io.Writer) *WriterPublisher {
	return &WriterPublisher{w: w}
}

func (p *WriterPublisher) Publish(line string) error {
	if _, err := io.WriteString(p.w, line); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}

func (p *WriterPublisher) Close() error {
	return nil
}

// MultiPublisher fans one status line out to several sinks. A failing sink
// does not stop the others; the first error is returned.
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(line string) error {
	var first error
	for _, p := range m {
		if err := p.Publish(line); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m MultiPublisher) Close() error {
	var first error
	for _, p := range m {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
