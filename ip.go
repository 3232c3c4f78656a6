package netgen

import (
	"strconv"
	"strings"

	"pgregory.net/rapid"
)

const ipv6Groups = 8

// IPv4 generates dotted-decimal IPv4 addresses without leading zeros.
func IPv4() *rapid.Generator[string] {
	octet := rapid.IntRange(0, 255)
	return rapid.Custom(func(t *rapid.T) string {
		parts := make([]string, 4)
		for i := range parts {
			parts[i] = strconv.Itoa(octet.Draw(t, "octet"))
		}
		return strings.Join(parts, ".")
	})
}

// IPv6 generates RFC 3986 IPv6address values, compressed or not, possibly
// ending in an embedded IPv4 address. The result carries no brackets.
//
//	IPv6address =                            6( h16 ":" ) ls32
//	            /                       "::" 5( h16 ":" ) ls32
//	            / [               h16 ] "::" 4( h16 ":" ) ls32
//	            / [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
//	            / [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
//	            / [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
//	            / [ *4( h16 ":" ) h16 ] "::"              ls32
//	            / [ *5( h16 ":" ) h16 ] "::"              h16
//	            / [ *6( h16 ":" ) h16 ] "::"
func IPv6() *rapid.Generator[string] {
	h16 := rapid.Map(rapid.IntRange(0, 0xffff), func(v int) string {
		return strconv.FormatInt(int64(v), 16)
	})
	ls32 := rapid.OneOf(
		rapid.Custom(func(t *rapid.T) string {
			return h16.Draw(t, "h16") + ":" + h16.Draw(t, "h16")
		}),
		IPv4(),
	)
	groups := func(t *rapid.T, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = h16.Draw(t, "h16")
		}
		return out
	}
	// right renders n trailing 16-bit slots, the last two as ls32.
	right := func(t *rapid.T, n int) string {
		switch n {
		case 0:
			return ""
		case 1:
			return h16.Draw(t, "h16")
		default:
			head := groups(t, n-2)
			return strings.Join(append(head, ls32.Draw(t, "ls32")), ":")
		}
	}
	return rapid.Custom(func(t *rapid.T) string {
		form := rapid.IntRange(0, ipv6Groups).Draw(t, "form")
		if form == 0 {
			return right(t, ipv6Groups)
		}
		left := groups(t, rapid.IntRange(0, form-1).Draw(t, "left"))
		return strings.Join(left, ":") + "::" + right(t, ipv6Groups-form)
	})
}
