package netgen_test

import (
	"flag"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"pgregory.net/rapid"
)

var (
	labelRe    = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	tldRe      = regexp.MustCompile(`^[a-z]{2,10}$`)
	userInfoRe = regexp.MustCompile(`^([A-Za-z0-9\-._~!$&'()*+,;=:]|%[0-9A-F]{2})*$`)
	segmentRe  = regexp.MustCompile(`^([A-Za-z0-9\-._~!$&'()*+,;=:@]|%[0-9A-F]{2})*$`)
	queryRe    = regexp.MustCompile(`^([A-Za-z0-9\-._~!$&'()*+,;=:@/?]|%[0-9A-F]{2})*$`)
	atomRe     = regexp.MustCompile("^[a-z0-9!#$%&'*+/=?^_`{|}~-]{1,10}$")
)

// domainViolation returns a description of the first broken domain
// invariant, or "" when d is valid.
func domainViolation(d string) string {
	if len(d) > 255 {
		return fmt.Sprintf("length %d > 255", len(d))
	}
	for _, label := range strings.Split(d, ".") {
		if len(label) < 1 || len(label) > 63 {
			return fmt.Sprintf("label %q has length %d", label, len(label))
		}
		if !labelRe.MatchString(label) {
			return fmt.Sprintf("label %q is not LDH", label)
		}
	}
	return ""
}

// recordingTB lets a deliberately failing rapid.Check run to completion so
// that the values visited while shrinking can be inspected.
type recordingTB struct {
	mu     sync.Mutex
	name   string
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Name() string          { return r.name }
func (r *recordingTB) Logf(string, ...any)   {}
func (r *recordingTB) Log(...any)            {}
func (r *recordingTB) Skipf(string, ...any)  {}
func (r *recordingTB) Skip(...any)           {}
func (r *recordingTB) SkipNow()              {}
func (r *recordingTB) Errorf(string, ...any) { r.Fail() }
func (r *recordingTB) Error(...any)          { r.Fail() }
func (r *recordingTB) Fatalf(string, ...any) { r.Fail() }
func (r *recordingTB) Fatal(...any)          { r.Fail() }
func (r *recordingTB) FailNow()              { r.Fail() }

func (r *recordingTB) Fail() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
}

func (r *recordingTB) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// shrinkTrail runs a property that fails whenever failing(v) holds and
// returns every value the property saw, shrink candidates included.
func shrinkTrail(t *testing.T, gen *rapid.Generator[string], failing func(string) bool) []string {
	t.Helper()
	for name, value := range map[string]string{"rapid.nofailfile": "true", "rapid.shrinktime": "5s"} {
		prev := flag.Lookup(name).Value.String()
		if err := flag.Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
		t.Cleanup(func() { _ = flag.Set(name, prev) })
	}

	var seen []string
	tb := &recordingTB{name: t.Name()}
	rapid.Check(tb, func(rt *rapid.T) {
		v := gen.Draw(rt, "value")
		seen = append(seen, v)
		if failing(v) {
			rt.Fatalf("found %q", v)
		}
	})
	if !tb.Failed() {
		t.Fatalf("property never failed, shrinking was not exercised")
	}
	return seen
}
