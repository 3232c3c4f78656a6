package draw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/authcorp/netgen"
	"github.com/authcorp/netgen/internal/draw"
)

func TestExampleMatchesRapid(t *testing.T) {
	gen := netgen.Subdomain()

	v, err := draw.Example(gen, 17)

	require.NoError(t, err)
	assert.Equal(t, gen.Example(17), v)
}

func TestExampleReportsRejectedDraws(t *testing.T) {
	gen := netgen.Subdomain().Filter(func(string) bool { return false })

	_, err := draw.Example(gen, 1)

	assert.ErrorIs(t, err, netgen.ErrExhausted)
}

func TestExampleRepanicsOnGeneratorBug(t *testing.T) {
	gen := rapid.Custom(func(t *rapid.T) string {
		var seen map[string]bool
		label := netgen.Subdomain().Draw(t, "label")
		seen[label] = true
		return label
	})

	assert.Panics(t, func() {
		_, _ = draw.Example(gen, 1)
	})
}
