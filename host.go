package netgen

import (
	"strings"

	"pgregory.net/rapid"
)

const (
	// MaxLabelLength is the RFC 1034 limit on a single label.
	MaxLabelLength = 63
	// MaxDomainLength is the RFC 1034 limit on a full domain name.
	MaxDomainLength = 255

	maxDomainLabels = 5
	minTLDLength    = 2
	maxTLDLength    = 10
)

var (
	lowerAlphaCharset       = NewCharset(LowerAlpha)
	lowerAlnumCharset       = NewCharset(LowerAlphaNumeric)
	lowerAlnumHyphenCharset = NewCharset(LowerAlphaNumeric, "-")
	userInfoCharset         = NewCharset(AlphaNumeric, concatSymbols(unreservedSymbols, subDelimSymbols, []string{":"})...).WithPercentEncoding()
)

// Subdomain generates a single DNS label (RFC 1034, RFC 1123): it starts and
// ends with a lower-case letter or digit, may contain hyphens in between and
// is at most 63 characters long.
func Subdomain() *rapid.Generator[string] {
	alnum := lowerAlnumCharset.Generator()
	tail := rapid.Custom(func(t *rapid.T) string {
		middle := StringOfN(lowerAlnumHyphenCharset.Generator(), 0, MaxLabelLength-2).Draw(t, "middle")
		last := alnum.Draw(t, "last")
		return middle + last
	})
	return rapid.Custom(func(t *rapid.T) string {
		first := alnum.Draw(t, "first")
		rest := OptionOf(tail).Draw(t, "tail")
		return first + renderOption(rest, func(s string) string { return s })
	}).Filter(func(label string) bool {
		return len(label) <= MaxLabelLength
	})
}

// DomainConstraints customises Domain and AnyDomain.
type DomainConstraints struct {
	// Prefix forces the first label, eg. rapid.Just("www"). Default: none.
	Prefix *rapid.Generator[string]
	// Suffix forces the last label, eg. rapid.Just("com").
	// Default: TopLevelDomain() for Domain, none for AnyDomain.
	Suffix *rapid.Generator[string]
}

// Domain generates domain names whose last label is made of letters only,
// so that no parser can mistake the name for an IPv4 literal.
func Domain(c DomainConstraints) *rapid.Generator[string] {
	if c.Suffix == nil {
		c.Suffix = TopLevelDomain()
	}
	return AnyDomain(c)
}

// AnyDomain generates domain names of 1 to 5 labels between the optional
// forced prefix and suffix. Without a suffix the name may be entirely
// numeric, eg. "8", which some URL parsers read as 0.0.0.8.
func AnyDomain(c DomainConstraints) *rapid.Generator[string] {
	labels := rapid.SliceOfN(Subdomain(), 1, maxDomainLabels)
	prefix, suffix := c.Prefix, c.Suffix
	return rapid.Custom(func(t *rapid.T) string {
		var parts []string
		if prefix != nil {
			parts = append(parts, prefix.Draw(t, "prefix"))
		}
		parts = append(parts, labels.Draw(t, "labels")...)
		if suffix != nil {
			parts = append(parts, suffix.Draw(t, "suffix"))
		}
		return strings.Join(parts, ".")
	}).Filter(func(domain string) bool {
		return len(domain) <= MaxDomainLength
	})
}

// TopLevelDomain generates 2 to 10 lower-case letters.
func TopLevelDomain() *rapid.Generator[string] {
	return StringOfN(lowerAlphaCharset.Generator(), minTLDLength, maxTLDLength)
}

// HostUserInfo generates the RFC 3986 userinfo production:
//
//	userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
func HostUserInfo() *rapid.Generator[string] {
	return StringOf(userInfoCharset.Generator())
}
