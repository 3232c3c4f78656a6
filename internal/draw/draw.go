// Package draw replays rapid generators outside of a property check.
package draw

import (
	"fmt"
	"strings"

	"pgregory.net/rapid"

	"github.com/authcorp/netgen"
)

// rapid reports a draw rejected by filters or size limits as invalid data.
const invalidDataMarker = "invalid data: "

// Example produces the value of g for seed. When rapid gives up because every
// attempt was rejected as invalid data, the error wraps netgen.ErrExhausted.
// Any other panic raised while generating is a bug in g and is re-raised.
func Example[V any](g *rapid.Generator[V], seed int) (v V, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, invalidDataMarker) {
			panic(r)
		}
		err = fmt.Errorf("%w: %s", netgen.ErrExhausted, msg)
	}()
	return g.Example(seed), nil
}
