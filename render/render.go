// Package render writes board states as text frames.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pthm-cable/torus/board"
)

const (
	aliveByte = 'o'
	deadByte  = '.'
)

// Writer emits frames in the plain text format: a "Cycle: <n>" header,
// one line of 'o'/'.' characters per row, then a blank line. Notices are
// single lines outside any frame.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps an output stream, typically stdout.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Frame writes one board state labeled with its generation number.
func (r *Writer) Frame(generation int, b *board.Board) error {
	if _, err := fmt.Fprintf(r.w, "Cycle: %d\n", generation); err != nil {
		return err
	}
	rows, cols := b.Rows(), b.Cols()
	line := make([]byte, cols+1)
	line[cols] = '\n'
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if b.Cell(i, j) {
				line[j] = aliveByte
			} else {
				line[j] = deadByte
			}
		}
		if _, err := r.w.Write(line); err != nil {
			return err
		}
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	return r.w.Flush()
}

// Notice writes a single informational line.
func (r *Writer) Notice(message string) error {
	if _, err := fmt.Fprintln(r.w, message); err != nil {
		return err
	}
	return r.w.Flush()
}
