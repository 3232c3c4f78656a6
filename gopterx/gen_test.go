package gopterx_test

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/authcorp/netgen"
	"github.com/authcorp/netgen/gopterx"
)

func TestGenDomainProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("domains stay within RFC 1034 limits", prop.ForAll(
		func(d string) bool {
			if len(d) > netgen.MaxDomainLength {
				return false
			}
			for _, label := range strings.Split(d, ".") {
				if label == "" || len(label) > netgen.MaxLabelLength {
					return false
				}
			}
			return true
		},
		gopterx.Gen(netgen.Domain(netgen.DomainConstraints{})),
	))

	properties.TestingRun(t)
}

func TestGenWebURLProperty(t *testing.T) {
	params := gopter.DefaultTestParametersWithSeed(1234)
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)
	gen := netgen.Must(netgen.WebURL(netgen.WebURLConstraints{
		AuthoritySettings:   netgen.WebAuthorityConstraints{WithIPv6: true, WithPort: true},
		WithQueryParameters: true,
	}))

	properties.Property("web urls parse", prop.ForAll(
		func(raw string) bool {
			_, err := url.Parse(raw)
			return err == nil
		},
		gopterx.Gen(gen),
	))

	properties.TestingRun(t)
}

func TestGenIsReproducible(t *testing.T) {
	gen := gopterx.Gen(netgen.EmailAddress(netgen.EmailConstraints{}))

	a, ok := gen(gopter.DefaultGenParameters().CloneWithSeed(99)).Retrieve()
	require.True(t, ok)
	b, ok := gen(gopter.DefaultGenParameters().CloneWithSeed(99)).Retrieve()
	require.True(t, ok)

	assert.Equal(t, a, b)
}

func TestGenExhaustionIsEmptyResult(t *testing.T) {
	gen := gopterx.Gen(netgen.Subdomain().Filter(func(string) bool { return false }))

	result := gen(gopter.DefaultGenParameters())
	_, ok := result.Retrieve()

	assert.False(t, ok)
	assert.Equal(t, reflect.TypeOf(""), result.ResultType)
}

func TestGenPropagatesGeneratorPanics(t *testing.T) {
	gen := gopterx.Gen(rapid.Custom(func(t *rapid.T) string {
		var labels []string
		labels[0] = netgen.Subdomain().Draw(t, "label")
		return labels[0]
	}))

	assert.Panics(t, func() {
		gen(gopter.DefaultGenParameters())
	})
}
