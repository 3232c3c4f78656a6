package netgen

import (
	"strings"

	"pgregory.net/rapid"
)

const (
	maxAtoms      = 5
	maxAtomLength = 10
)

// atext symbols allowed in a dot-atom besides letters and digits.
var atextCharset = NewCharset(LowerAlphaNumeric,
	"!", "#", "$", "%", "&", "'", "*", "+", "-", "/", "=", "?", "^", "_", "`", "{", "|", "}", "~")

// EmailConstraints customises EmailAddress.
type EmailConstraints struct {
	// Domain replaces the default Domain(DomainConstraints{}) generator.
	Domain *rapid.Generator[string]
}

// EmailAddress generates RFC 5322 addresses whose local part is a dot-atom
// of 1 to 5 atoms, each 1 to 10 characters long. Quoted strings and comments
// are never produced.
func EmailAddress(c EmailConstraints) *rapid.Generator[string] {
	domain := c.Domain
	if domain == nil {
		domain = Domain(DomainConstraints{})
	}
	atoms := rapid.SliceOfN(StringOfN(atextCharset.Generator(), 1, maxAtomLength), 1, maxAtoms)
	return rapid.Custom(func(t *rapid.T) string {
		local := strings.Join(atoms.Draw(t, "atoms"), ".")
		return local + "@" + domain.Draw(t, "domain")
	})
}
