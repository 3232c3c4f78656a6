package config

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/authcorp/netgen"
)

// Generator builds the generator the profile describes.
func (p *Profile) Generator() (*rapid.Generator[string], error) {
	switch p.Kind {
	case KindSubdomain:
		return netgen.Subdomain(), nil
	case KindDomain:
		return netgen.Domain(p.Domain.constraints()), nil
	case KindAnyDomain:
		return netgen.AnyDomain(p.Domain.constraints()), nil
	case KindUserInfo:
		return netgen.HostUserInfo(), nil
	case KindIPv4:
		return netgen.IPv4(), nil
	case KindIPv6:
		return netgen.IPv6(), nil
	case KindAuthority:
		return netgen.WebAuthority(p.Authority.constraints())
	case KindSegment:
		return netgen.WebSegment(), nil
	case KindQuery:
		return netgen.WebQueryParameters(), nil
	case KindFragment:
		return netgen.WebFragments(), nil
	case KindURL:
		return netgen.WebURL(netgen.WebURLConstraints{
			ValidSchemes:        p.URL.ValidSchemes,
			AuthoritySettings:   p.URL.Authority.constraints(),
			WithQueryParameters: p.URL.WithQueryParameters,
			WithFragments:       p.URL.WithFragments,
		})
	case KindEmail:
		return netgen.EmailAddress(netgen.EmailConstraints{Domain: literal(p.Email.Domain)}), nil
	default:
		return nil, fmt.Errorf("unknown generator kind %q", p.Kind)
	}
}

func (s DomainSettings) constraints() netgen.DomainConstraints {
	return netgen.DomainConstraints{
		Prefix: literal(s.Prefix),
		Suffix: literal(s.Suffix),
	}
}

func (s AuthoritySettings) constraints() netgen.WebAuthorityConstraints {
	return netgen.WebAuthorityConstraints{
		Domain:        literal(s.Domain),
		WithoutDomain: s.WithoutDomain,
		WithIPv4:      s.WithIPv4,
		WithIPv6:      s.WithIPv6,
		WithUserInfo:  s.WithUserInfo,
		WithPort:      s.WithPort,
	}
}

// literal turns a configured string into a constant generator; "" means unset.
func literal(s string) *rapid.Generator[string] {
	if s == "" {
		return nil
	}
	return rapid.Just(s)
}
