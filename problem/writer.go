package problem

import (
	"bufio"
	"io"
	"strconv"
)

// Writer buffers solver output one value per line. Callers must Flush.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*1024)}
}

func (w *Writer) Int(v int) {
	w.buf = strconv.AppendInt(w.buf[:0], int64(v), 10)
	w.buf = append(w.buf, '\n')
	w.w.Write(w.buf)
}

func (w *Writer) Float(v float64) {
	w.buf = strconv.AppendFloat(w.buf[:0], v, 'f', -1, 64)
	w.buf = append(w.buf, '\n')
	w.w.Write(w.buf)
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}
