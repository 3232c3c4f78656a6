package netgen

import (
	"strings"

	"pgregory.net/rapid"
)

// StringOf generates strings of any length built from alphabet draws.
func StringOf(alphabet *rapid.Generator[string]) *rapid.Generator[string] {
	return StringOfN(alphabet, 0, -1)
}

// StringOfN generates strings made of between minLen and maxLen alphabet
// draws. A negative maxLen leaves the length unbounded. Lengths count draws,
// so a percent-encoded octet counts once.
func StringOfN(alphabet *rapid.Generator[string], minLen, maxLen int) *rapid.Generator[string] {
	return rapid.Map(rapid.SliceOfN(alphabet, minLen, maxLen), func(parts []string) string {
		return strings.Join(parts, "")
	})
}
