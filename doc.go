// Package netgen provides shrink-safe rapid generators for network identifiers:
// DNS labels and domains, URI authorities, web URLs and email addresses.
//
// Every generator is assembled from rapid primitives only. rapid replays the
// generator against a shrunk bit stream, so each candidate reached while
// minimising a failing case is produced by the same code path and satisfies
// the same grammar as the original draw.
//
// Basic usage:
//
//	rapid.Check(t, func(t *rapid.T) {
//	    addr := netgen.EmailAddress(netgen.EmailConstraints{}).Draw(t, "addr")
//	    if _, err := mail.ParseAddress(addr); err != nil {
//	        t.Fatalf("parse %q: %v", addr, err)
//	    }
//	})
package netgen
