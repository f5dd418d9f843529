//go:build go1.18
// +build go1.18

package decexpr_test

import (
	"testing"

	"github.com/zephyrtronium/decexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("((1+2)")
	f.Add("1+2)*3")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := decexpr.Parse(s)
		if err != nil {
			return
		}
		if e.Source() != s {
			t.Errorf("%q has source %q", s, e.Source())
		}
		decexpr.New().Eval(e)
	})
}
