// Package sample draws reproducible example values from rapid generators,
// outside of a property check.
package sample

import (
	"fmt"
	"sort"

	"pgregory.net/rapid"

	"github.com/authcorp/netgen"
	"github.com/authcorp/netgen/internal/draw"
)

// Sample draws n values from g. Draw i is seeded with seed+i, so the same
// generator, n and seed always yield the same values.
func Sample[V any](g *rapid.Generator[V], n int, seed int) ([]V, error) {
	if n < 0 {
		return nil, &netgen.ConfigError{Field: "n", Message: fmt.Sprintf("must not be negative, got %d", n)}
	}
	out := make([]V, 0, n)
	for i := 0; i < n; i++ {
		v, err := Draw(g, seed+i)
		if err != nil {
			return out, fmt.Errorf("sample %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Draw produces a single value from g for the given seed. A generator that
// cannot satisfy its filters yields an error wrapping netgen.ErrExhausted;
// other panics inside g propagate.
func Draw[V any](g *rapid.Generator[V], seed int) (V, error) {
	return draw.Example(g, seed)
}

// Bucket is one class of a Statistics report.
type Bucket struct {
	Label   string
	Count   int
	Percent float64
}

// Statistics classifies n samples of g and reports how often each label
// occurs, most frequent first.
func Statistics[V any](g *rapid.Generator[V], classify func(V) string, n int, seed int) ([]Bucket, error) {
	values, err := Sample(g, n, seed)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, v := range values {
		counts[classify(v)]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, Bucket{
			Label:   label,
			Count:   count,
			Percent: 100 * float64(count) / float64(len(values)),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets, nil
}
