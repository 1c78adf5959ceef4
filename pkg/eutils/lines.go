package eutils

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// replacement substitutes malformed byte sequences when decoding lines.
const replacement = string(utf8.RuneError)

// LineReader lazily yields the text lines of a response body in server
// emission order, trailing line terminators stripped. It is single-pass:
// once exhausted it cannot be rewound, and consuming it never re-issues
// the request that produced it.
//
// Malformed byte sequences are repaired with U+FFFD rather than
// aborting, so one corrupt character cannot kill an otherwise useful
// stream.
type LineReader struct {
	r      *bufio.Reader
	closer io.Closer
	cur    string
	err    error
	done   bool
}

// NewLineReader wraps a response body. The body is closed automatically
// when the stream is exhausted or fails; Close may be called earlier to
// abandon it.
func NewLineReader(body io.ReadCloser) *LineReader {
	return &LineReader{
		r:      bufio.NewReader(body),
		closer: body,
	}
}

// Next advances to the next line. It returns false at end of stream or
// on a read error; Err distinguishes the two.
func (l *LineReader) Next() bool {
	if l.done {
		return false
	}

	line, err := l.r.ReadString('\n')
	if err != nil && err != io.EOF {
		l.err = err
		l.finish()
		return false
	}
	if line == "" && err == io.EOF {
		l.finish()
		return false
	}

	l.cur = decodeLine(line)
	if err == io.EOF {
		l.finish()
	}
	return true
}

// Text returns the line most recently read by Next.
func (l *LineReader) Text() string {
	return l.cur
}

// Err returns the first read error encountered, if any. io.EOF is not
// reported as an error.
func (l *LineReader) Err() error {
	return l.err
}

// Close releases the underlying body. It is safe to call more than once
// and after exhaustion.
func (l *LineReader) Close() error {
	l.done = true
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

// Collect eagerly drains the remaining lines. It returns the lines read
// before any failure together with that failure.
func (l *LineReader) Collect() ([]string, error) {
	var lines []string
	for l.Next() {
		lines = append(lines, l.Text())
	}
	return lines, l.Err()
}

func (l *LineReader) finish() {
	l.done = true
	if l.closer != nil {
		_ = l.closer.Close()
		l.closer = nil
	}
}

// decodeLine strips the trailing terminator and repairs invalid UTF-8.
func decodeLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if utf8.ValidString(line) {
		return line
	}
	return strings.ToValidUTF8(line, replacement)
}
