// Package gopterx exposes rapid generators to gopter properties.
package gopterx

import (
	"reflect"

	"github.com/leanovate/gopter"
	"pgregory.net/rapid"

	"github.com/authcorp/netgen/internal/draw"
)

// Gen adapts g to a gopter.Gen. Each draw takes a seed from the gopter
// random source and replays g with it, so a fixed gopter seed reproduces the
// same values.
//
// Results carry gopter.NoShrinker: gopter cannot replay rapid's bit stream,
// and any shrink it invented would bypass the grammar g enforces. When g
// cannot satisfy its own filters the result is empty and gopter discards
// the draw; any other panic inside g propagates.
func Gen[V any](g *rapid.Generator[V]) gopter.Gen {
	resultType := reflect.TypeOf((*V)(nil)).Elem()
	return func(params *gopter.GenParameters) *gopter.GenResult {
		seed := params.Rng.Int63()
		v, err := draw.Example(g, int(seed))
		if err != nil {
			return gopter.NewEmptyResult(resultType)
		}
		result := gopter.NewGenResult(v, gopter.NoShrinker)
		result.ResultType = resultType
		return result
	}
}
