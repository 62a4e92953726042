package soundcard

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Charset converts between Go strings and wire bytes. It never fails: anything
// the charset cannot carry is dropped, in both directions.
type Charset struct {
	name  string
	ascii bool
	cm    *charmap.Charmap
}

var (
	UTF8        = Charset{name: "utf-8"}
	ASCII       = Charset{name: "ascii", ascii: true}
	Latin1      = Charset{name: "iso-8859-1", cm: charmap.ISO8859_1}
	Windows1252 = Charset{name: "windows-1252", cm: charmap.Windows1252}
)

// LookupCharset returns the charset registered under name
func LookupCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "ascii", "us-ascii":
		return ASCII, nil
	case "iso-8859-1", "latin1", "latin-1":
		return Latin1, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	default:
		return Charset{}, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
}

// Name returns the canonical charset name
func (c Charset) Name() string {
	if c.name == "" {
		return UTF8.name
	}
	return c.name
}

// Encode renders s as wire bytes, dropping unrepresentable characters and
// ill-formed UTF-8.
func (c Charset) Encode(s string) []byte {
	out, _, _ := transform.Bytes(c.encoder(), []byte(s))
	return out
}

// Decode turns wire bytes into text, dropping invalid sequences
func (c Charset) Decode(b []byte) string {
	out, _, _ := transform.Bytes(c.decoder(), b)
	return string(out)
}

func (c Charset) encoder() transform.Transformer {
	switch {
	case c.ascii:
		return dropNonASCII()
	case c.cm != nil:
		cm := c.cm
		unencodable := runes.Remove(runes.Predicate(func(r rune) bool {
			_, ok := cm.EncodeRune(r)
			return !ok
		}))
		return transform.Chain(unencodable, cm.NewEncoder())
	default:
		return dropRuneError()
	}
}

func (c Charset) decoder() transform.Transformer {
	switch {
	case c.ascii:
		return dropNonASCII()
	case c.cm != nil:
		return transform.Chain(c.cm.NewDecoder(), dropRuneError())
	default:
		return dropRuneError()
	}
}

// runes.Remove drops ill-formed bytes when its set contains utf8.RuneError.
func dropRuneError() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError }))
}

func dropNonASCII() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))
}
