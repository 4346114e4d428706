package equation

import (
	"strconv"
)

const (
	// MaxLineLength bounds the length of any line produced by this package, result or diagnostic.
	MaxLineLength = 300

	// maxTokenLength truncates raw tokens echoed in diagnostics.
	maxTokenLength = 20

	malformedSuffix  = " => not correct arguments for quadratic equation\n"
	incompleteSuffix = " => not enough arguments for quadratic equation\n"
)

// AppendResult solves t and appends its result line, e.g.
//
//	(1, -3, 2) => ([1], [2]) (extremum: X=[1.5], Y=[-0.25])
func AppendResult(dst []byte, t Triple) []byte {
	return AppendSolution(dst, t, Solve(t))
}

// AppendSolution appends the result line of an already solved triple.
func AppendSolution(dst []byte, t Triple, s Solution) []byte {
	dst = append(dst, '(')
	dst = strconv.AppendInt(dst, int64(t.A), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(t.B), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(t.C), 10)
	dst = append(dst, ") => "...)
	dst = appendRoots(dst, s)
	dst = append(dst, ' ')
	dst = appendExtremum(dst, s)
	return append(dst, '\n')
}

// AppendMalformed appends the diagnostic of a group whose tokens are not all coefficients.
func AppendMalformed(dst []byte, tokens ...string) []byte {
	dst = appendTokens(dst, tokens)
	return append(dst, malformedSuffix...)
}

// AppendIncomplete appends the diagnostic of a trailing group shorter than Arity.
func AppendIncomplete(dst []byte, tokens ...string) []byte {
	dst = appendTokens(dst, tokens)
	return append(dst, incompleteSuffix...)
}

// AppendFloat formats like C's %g: 6 significant digits, no trailing zeros. Negative zero is printed as 0.
func AppendFloat(dst []byte, f float64) []byte {
	if f == 0 {
		f = 0
	}
	return strconv.AppendFloat(dst, f, 'g', 6, 64)
}

func appendRoots(dst []byte, s Solution) []byte {
	switch {
	case s.Any:
		return append(dst, "(any)"...)
	case s.NumRoots == 0:
		return append(dst, "(no roots)"...)
	}
	dst = append(dst, '(')
	for i, r := range s.RootValues() {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, '[')
		dst = AppendFloat(dst, r)
		dst = append(dst, ']')
	}
	return append(dst, ')')
}

func appendExtremum(dst []byte, s Solution) []byte {
	if !s.HasExtremum {
		return append(dst, "(no extremum)"...)
	}
	dst = append(dst, "(extremum: X=["...)
	dst = AppendFloat(dst, s.Extremum.X)
	dst = append(dst, "], Y=["...)
	dst = AppendFloat(dst, s.Extremum.Y)
	return append(dst, "])"...)
}

func appendTokens(dst []byte, tokens []string) []byte {
	dst = append(dst, '(')
	for i, tok := range tokens {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		if len(tok) > maxTokenLength {
			tok = tok[:maxTokenLength]
		}
		dst = append(dst, tok...)
	}
	return append(dst, ')')
}
