package equation_test

import (
	"testing"

	"github.com/fogfactory/quadpipe/equation"
	"github.com/maxatome/go-testdeep/td"
)

func TestParseCoefficient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for in, out := range map[string]int32{
			"0":           0,
			"-3":          -3,
			"2147483647":  2147483647,
			"-2147483648": -2147483648,
		} {
			v, err := equation.ParseCoefficient(in)
			td.CmpNoError(t, err, in)
			td.Cmp(t, v, out, in)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, in := range []string{"", "a", "+1", "1.5", "2147483648", "1a", " 1", "0x10", "1_000"} {
			_, err := equation.ParseCoefficient(in)
			td.CmpErrorIs(t, err, equation.ErrCoefficient, "%q", in)
		}
	})
}

func TestParseTriple(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tr, err := equation.ParseTriple("1", "-3", "2")
		td.CmpNoError(t, err)
		td.Cmp(t, tr, equation.Triple{A: 1, B: -3, C: 2})
	})

	t.Run("error_any_token", func(t *testing.T) {
		for _, tokens := range [][3]string{{"x", "1", "1"}, {"1", "x", "1"}, {"1", "1", "x"}} {
			tr, err := equation.ParseTriple(tokens[0], tokens[1], tokens[2])
			td.CmpErrorIs(t, err, equation.ErrCoefficient)
			td.Cmp(t, tr, equation.Triple{})
		}
	})
}
