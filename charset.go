package netgen

import (
	"fmt"

	"pgregory.net/rapid"
)

// Class is the base character class of a Charset.
type Class int

const (
	// LowerAlpha is a-z.
	LowerAlpha Class = iota
	// LowerAlphaNumeric is a-z and 0-9.
	LowerAlphaNumeric
	// AlphaNumeric is a-z, A-Z and 0-9.
	AlphaNumeric
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case LowerAlpha:
		return "lower-alpha"
	case LowerAlphaNumeric:
		return "lower-alphanumeric"
	case AlphaNumeric:
		return "alphanumeric"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

func (c Class) symbols() []string {
	var set string
	switch c {
	case LowerAlpha:
		set = lowerLetters
	case AlphaNumeric:
		set = lowerLetters + upperLetters + digits
	default:
		set = lowerLetters + digits
	}
	out := make([]string, 0, len(set))
	for i := 0; i < len(set); i++ {
		out = append(out, set[i:i+1])
	}
	return out
}

// Charset is an immutable ordered set of symbols, optionally extended with a
// percent-encoded octet pseudo-symbol.
type Charset struct {
	symbols []string
	percent bool
}

// NewCharset creates a charset from a base class followed by extra literal symbols.
func NewCharset(class Class, extras ...string) Charset {
	symbols := class.symbols()
	symbols = append(symbols, extras...)
	return Charset{symbols: symbols}
}

// WithPercentEncoding returns a copy of c that also draws %XX octets.
func (c Charset) WithPercentEncoding() Charset {
	return Charset{symbols: c.symbols, percent: true}
}

// Symbols returns a copy of the literal symbols, in draw order.
func (c Charset) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// PercentEncoded reports whether c draws percent-encoded octets.
func (c Charset) PercentEncoded() bool {
	return c.percent
}

// Len returns the number of symbols, counting the percent octet as one.
func (c Charset) Len() int {
	if c.percent {
		return len(c.symbols) + 1
	}
	return len(c.symbols)
}

// Generator returns a generator choosing uniformly among the symbols of c.
// Draws shrink toward the first symbol.
func (c Charset) Generator() *rapid.Generator[string] {
	symbols := c.Symbols()
	if !c.percent {
		return rapid.SampledFrom(symbols)
	}
	return rapid.Custom(func(t *rapid.T) string {
		i := rapid.IntRange(0, len(symbols)).Draw(t, "symbol")
		if i == len(symbols) {
			return PercentOctet().Draw(t, "octet")
		}
		return symbols[i]
	})
}

// PercentOctet generates a single percent-encoded byte such as %2F.
func PercentOctet() *rapid.Generator[string] {
	return rapid.Map(rapid.IntRange(0, 255), func(b int) string {
		return fmt.Sprintf("%%%02X", b)
	})
}

// RFC 3986 character groups shared by the host and web generators.
var (
	unreservedSymbols = []string{"-", ".", "_", "~"}
	subDelimSymbols   = []string{"!", "$", "&", "'", "(", ")", "*", "+", ",", ";", "="}
)

func concatSymbols(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
