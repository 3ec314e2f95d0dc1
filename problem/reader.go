package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader splits solver input into whitespace separated tokens or whole lines.
type Reader struct {
	r        *bufio.Reader
	newlines int
	lastLine int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 64*1024)}
}

// Line returns the 1-based line the reader is positioned on.
func (r *Reader) Line() int {
	return r.newlines + 1
}

func (r *Reader) eof() error {
	return fmt.Errorf("line %d: %w", r.Line(), io.ErrUnexpectedEOF)
}

// LastLine returns the 1-based number of the line last returned by ReadLine.
func (r *Reader) LastLine() int {
	return r.lastLine
}

// ReadLine returns the next non-blank line without its terminator.
func (r *Reader) ReadLine() (string, error) {
	for {
		s, err := r.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		r.lastLine = r.newlines + 1
		if strings.HasSuffix(s, "\n") {
			r.newlines++
		}
		if strings.TrimSpace(s) != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if err == io.EOF {
			return "", r.eof()
		}
	}
}

// Token returns the next whitespace separated token, crossing lines as needed.
func (r *Reader) Token() (string, error) {
	var b strings.Builder
	for {
		c, err := r.r.ReadByte()
		if err == io.EOF {
			if b.Len() > 0 {
				return b.String(), nil
			}
			return "", r.eof()
		}
		if err != nil {
			return "", err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			if b.Len() > 0 {
				_ = r.r.UnreadByte()
				return b.String(), nil
			}
			if c == '\n' {
				r.newlines++
			}
		default:
			b.WriteByte(c)
		}
	}
}

func (r *Reader) Int() (int, error) {
	s, err := r.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid integer: %q", r.Line(), s)
	}
	return v, nil
}

func (r *Reader) Float() (float64, error) {
	s, err := r.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid number: %q", r.Line(), s)
	}
	return v, nil
}

// Count reads a non-negative element count.
func (r *Reader) Count() (int, error) {
	n, err := r.Int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("line %d: negative count: %d", r.Line(), n)
	}
	return n, nil
}
