package source

import (
	"bufio"
	"context"
	"io"
)

// Reader streams rune symbols from an io.Reader. The reader's io.EOF is
// passed through as the end-of-input signal.
type Reader struct {
	runes *bufio.Reader
}

// NewReader creates a source over the supplied reader
func NewReader(reader io.Reader) *Reader {
	return &Reader{runes: bufio.NewReader(reader)}
}

// ReadSymbol returns the next rune as a string symbol
func (r *Reader) ReadSymbol(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch, _, err := r.runes.ReadRune()
	if err != nil {
		return "", err
	}
	return string(ch), nil
}
