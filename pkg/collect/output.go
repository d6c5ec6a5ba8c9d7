// File: pkg/collect/output.go
package collect

import (
	"bufio"
	"fmt"
	"io"
)

const (
	headerFormat      = "--- %s ---\n"
	errorHeaderFormat = "--- ERROR READING %s ---\n"
)

// blockWriter appends header+content blocks to the artifact and counts bytes.
// Any write error is returned to the caller and ends the run.
type blockWriter struct {
	w *bufio.Writer
	n int64
}

func newBlockWriter(w io.Writer) *blockWriter {
	return &blockWriter{w: bufio.NewWriter(w)}
}

func (b *blockWriter) writeString(s string) error {
	n, err := b.w.WriteString(s)
	b.n += int64(n)
	return err
}

// writeBlock writes one content record. separated prefixes the header with a
// blank line, which every record except the manifest carries.
func (b *blockWriter) writeBlock(path, content string, separated bool) error {
	header := fmt.Sprintf(headerFormat, path)
	if separated {
		header = "\n" + header
	}
	if err := b.writeString(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}
	if err := b.writeString(content); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", path, err)
	}
	if err := b.writeString("\n"); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", path, err)
	}
	return nil
}

// writeErrorBlock records a file that passed the filters but could not be read.
// Walked files get a blank line before and after the block.
func (b *blockWriter) writeErrorBlock(path string, readErr error, separated bool) error {
	block := fmt.Sprintf(errorHeaderFormat, path) + fmt.Sprintf("Error: %v\n", readErr)
	if separated {
		block = "\n" + block + "\n"
	}
	if err := b.writeString(block); err != nil {
		return fmt.Errorf("failed to write error block for %s: %w", path, err)
	}
	return nil
}

func (b *blockWriter) flush() error {
	if err := b.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// written returns the number of bytes accepted so far.
func (b *blockWriter) written() int64 { return b.n }
