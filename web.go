package netgen

import (
	"strconv"
	"strings"

	"pgregory.net/rapid"
)

// MaxPort is the exclusive upper bound of generated ports.
const MaxPort = 65536

var (
	defaultSchemes = []string{"http", "https"}

	// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
	segmentCharset = NewCharset(AlphaNumeric, concatSymbols(unreservedSymbols, subDelimSymbols, []string{":", "@"})...).WithPercentEncoding()

	// query = fragment = *( pchar / "/" / "?" )
	queryCharset = NewCharset(AlphaNumeric, concatSymbols(unreservedSymbols, subDelimSymbols, []string{":", "@", "/", "?"})...).WithPercentEncoding()
)

// WebAuthorityConstraints customises WebAuthority.
type WebAuthorityConstraints struct {
	// Domain replaces the default Domain(DomainConstraints{}) host generator.
	Domain *rapid.Generator[string]
	// WithoutDomain removes the domain host alternative. At least one of
	// WithIPv4 and WithIPv6 must then be set.
	WithoutDomain bool
	// WithIPv4 adds IPv4 literals to the host alternatives.
	WithIPv4 bool
	// WithIPv6 adds bracketed IPv6 literals to the host alternatives.
	WithIPv6 bool
	// WithUserInfo allows a "userinfo@" prefix.
	WithUserInfo bool
	// WithPort allows a ":port" suffix.
	WithPort bool
}

func (c WebAuthorityConstraints) validate() error {
	if c.WithoutDomain && c.Domain != nil {
		return configError("Domain", "a domain generator is set but the domain host is disabled")
	}
	if c.WithoutDomain && !c.WithIPv4 && !c.WithIPv6 {
		return configError("WithoutDomain", "no host alternative left: enable WithIPv4 or WithIPv6")
	}
	return nil
}

// WebAuthority generates RFC 3986 authorities:
//
//	authority = [ userinfo "@" ] host [ ":" port ]
//
// The host is drawn uniformly among the enabled alternatives.
func WebAuthority(c WebAuthorityConstraints) (*rapid.Generator[string], error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	var hosts []*rapid.Generator[string]
	if !c.WithoutDomain {
		domain := c.Domain
		if domain == nil {
			domain = Domain(DomainConstraints{})
		}
		hosts = append(hosts, domain)
	}
	if c.WithIPv4 {
		hosts = append(hosts, IPv4())
	}
	if c.WithIPv6 {
		hosts = append(hosts, rapid.Map(IPv6(), func(ip string) string { return "[" + ip + "]" }))
	}
	host := rapid.OneOf(hosts...)

	userInfo := NoneOf[string]()
	if c.WithUserInfo {
		userInfo = OptionOf(HostUserInfo())
	}
	port := NoneOf[int]()
	if c.WithPort {
		port = OptionOf(rapid.IntRange(0, MaxPort-1))
	}

	return rapid.Custom(func(t *rapid.T) string {
		u := userInfo.Draw(t, "userinfo")
		h := host.Draw(t, "host")
		p := port.Draw(t, "port")
		return renderOption(u, func(s string) string { return s + "@" }) +
			h +
			renderOption(p, func(n int) string { return ":" + strconv.Itoa(n) })
	}), nil
}

// WebSegment generates one RFC 3986 path segment, eg. "fast-check" in
// https://github.com/dubzzz/fast-check/.
//
//	segment = *pchar
func WebSegment() *rapid.Generator[string] {
	return StringOf(segmentCharset.Generator())
}

// WebQueryParameters generates the RFC 3986 query component, without "?".
func WebQueryParameters() *rapid.Generator[string] {
	return StringOf(queryCharset.Generator())
}

// WebFragments generates the RFC 3986 fragment component, without "#".
func WebFragments() *rapid.Generator[string] {
	return StringOf(queryCharset.Generator())
}

// WebPath generates an absolute-or-empty path: zero or more "/"-prefixed segments.
func WebPath() *rapid.Generator[string] {
	return rapid.Map(rapid.SliceOf(WebSegment()), func(segments []string) string {
		var b strings.Builder
		for _, s := range segments {
			b.WriteByte('/')
			b.WriteString(s)
		}
		return b.String()
	})
}

// WebURLConstraints customises WebURL.
type WebURLConstraints struct {
	// ValidSchemes lists the schemes to draw from. Nil means http and https;
	// a non-nil empty slice is rejected.
	ValidSchemes []string
	// AuthoritySettings is passed to WebAuthority.
	AuthoritySettings WebAuthorityConstraints
	// WithQueryParameters allows a "?query" part.
	WithQueryParameters bool
	// WithFragments allows a "#fragment" part.
	WithFragments bool
}

func (c WebURLConstraints) schemes() ([]string, error) {
	if c.ValidSchemes == nil {
		return defaultSchemes, nil
	}
	if len(c.ValidSchemes) == 0 {
		return nil, configError("ValidSchemes", "at least one scheme is required")
	}
	for _, s := range c.ValidSchemes {
		if !isScheme(s) {
			return nil, configError("ValidSchemes", "%q is not an RFC 3986 scheme", s)
		}
	}
	out := make([]string, len(c.ValidSchemes))
	copy(out, c.ValidSchemes)
	return out, nil
}

// isScheme matches scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// WebURL generates web URLs:
//
//	scheme "://" authority path [ "?" query ] [ "#" fragment ]
func WebURL(c WebURLConstraints) (*rapid.Generator[string], error) {
	schemes, err := c.schemes()
	if err != nil {
		return nil, err
	}
	authority, err := WebAuthority(c.AuthoritySettings)
	if err != nil {
		return nil, err
	}

	scheme := rapid.SampledFrom(schemes)
	path := WebPath()
	query := NoneOf[string]()
	if c.WithQueryParameters {
		query = OptionOf(WebQueryParameters())
	}
	fragment := NoneOf[string]()
	if c.WithFragments {
		fragment = OptionOf(WebFragments())
	}

	return rapid.Custom(func(t *rapid.T) string {
		s := scheme.Draw(t, "scheme")
		a := authority.Draw(t, "authority")
		p := path.Draw(t, "path")
		q := query.Draw(t, "query")
		f := fragment.Draw(t, "fragment")
		return s + "://" + a + p +
			renderOption(q, func(v string) string { return "?" + v }) +
			renderOption(f, func(v string) string { return "#" + v })
	}), nil
}
