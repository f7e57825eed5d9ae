// Package scaniter exposes the tokens of an io.Reader as a fixable range.
package scaniter

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"

	"go.llib.dev/refit/internal/option"
)

// Config holds the scanning tunables.
type Config struct {
	// Split decides how the input is tokenized. Defaults to line splitting.
	Split bufio.SplitFunc
}

// WithSplit sets the tokenizer of the scan.
func WithSplit(split bufio.SplitFunc) option.Option[Config] {
	return option.Func[Config](func(c *Config) { c.Split = split })
}

// Lines returns a single pass range over the tokens of the reader.
func Lines(r io.Reader, opts ...option.Option[Config]) TokenRange {
	return TokenRange{r: r, conf: option.ToConfig(opts)}
}

// GzipLines returns a single pass range over the tokens of a gzip compressed reader.
func GzipLines(r io.Reader, opts ...option.Option[Config]) (TokenRange, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return TokenRange{}, err
	}
	return Lines(gz, opts...), nil
}

// TokenRange is a single pass range over scanned tokens.
type TokenRange struct {
	r    io.Reader
	conf Config
}

// Begin starts the scan and returns the iterator standing on the first token.
func (r TokenRange) Begin() *TokenIter {
	s := bufio.NewScanner(r.r)
	if r.conf.Split != nil {
		s.Split(r.conf.Split)
	}
	it := &TokenIter{scanner: s}
	it.fetch()
	return it
}

// End returns the iterator standing past the last token.
func (r TokenRange) End() *TokenIter {
	return &TokenIter{done: true}
}

// TokenIter is a position in the scanned tokens of a reader.
// It declares no type metadata, everything is left for inference.
type TokenIter struct {
	scanner *bufio.Scanner
	cur     string
	done    bool
}

func (it *TokenIter) fetch() {
	if !it.scanner.Scan() {
		it.done = true
		it.cur = ""
		return
	}
	it.cur = it.scanner.Text()
}

// Deref returns the token at the current position.
func (it *TokenIter) Deref() string { return it.cur }

// Ptr returns a pointer to the token at the current position.
func (it *TokenIter) Ptr() *string { return &it.cur }

// Advance steps the scan to the next token.
func (it *TokenIter) Advance() {
	if it.done {
		return
	}
	it.fetch()
}

// Equal reports whether both positions are the same.
// Exhausted iterators compare equal regardless of how they were made.
func (it *TokenIter) Equal(oth *TokenIter) bool {
	if it.done || oth.done {
		return it.done == oth.done
	}
	return it == oth
}

// Err returns the error that ended the scan, if any.
func (it *TokenIter) Err() error {
	if it.scanner == nil {
		return nil
	}
	return it.scanner.Err()
}
