package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps each write under a typical MTU so frames stream smoothly
// over SSH.
const maxChunkSize = 1400

// ChunkWriter accumulates a frame of positioned text and writes it out in
// chunks on Flush. Cursor positions are 1-based and shifted by the offset.
type ChunkWriter struct {
	buf    strings.Builder
	out    *bufio.Writer
	num    [20]byte
	offCol int
	offRow int
}

// NewChunkWriter returns a writer targeting w with the given cell offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset changes the cell offset, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// MoveCursor appends an ANSI cursor position sequence.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends s.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends r.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// WriteAt writes s starting at the given cell.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// Flush writes the frame and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

// Clear-screen and cursor sequences.
const (
	ClearScreen = "\033[H\033[2J"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

// TermSizeFunc returns the terminal size in cells.
type TermSizeFunc func() (cols, rows int, err error)

// StdoutSize reads the size of the process's own terminal.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
