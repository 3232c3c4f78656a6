package netgen_test

import (
	"net/netip"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/netgen"
)

func TestProperty_IPv4Parses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ip := netgen.IPv4().Draw(t, "ip")

		addr, err := netip.ParseAddr(ip)
		if err != nil {
			t.Fatalf("parse %q: %v", ip, err)
		}
		if !addr.Is4() || addr.String() != ip {
			t.Fatalf("%q parsed as %v", ip, addr)
		}
	})
}

func TestProperty_IPv6Parses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ip := netgen.IPv6().Draw(t, "ip")

		addr, err := netip.ParseAddr(ip)
		if err != nil {
			t.Fatalf("parse %q: %v", ip, err)
		}
		if !addr.Is6() {
			t.Fatalf("%q parsed as %v", ip, addr)
		}
	})
}
