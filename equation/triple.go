package equation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Arity is the number of coefficients of one equation, and the step used to walk a token list.
const Arity = 3

var (
	ErrCoefficient = errors.New("invalid coefficient")
)

// Triple defines the coefficients of a·x² + b·x + c = 0.
type Triple struct {
	A, B, C int32
}

// ParseCoefficient parses a base 10 signed 32 bits integer. The whole token must be consumed and, like the C from_chars
// family, an explicit '+' sign is refused.
func ParseCoefficient(token string) (int32, error) {
	if strings.HasPrefix(token, "+") {
		return 0, fmt.Errorf("%w %q: explicit sign", ErrCoefficient, token)
	}
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrCoefficient, token, err)
	}
	return int32(v), nil
}

// ParseTriple parses three raw tokens into a Triple. It fails on the first token which is not a coefficient.
func ParseTriple(a, b, c string) (Triple, error) {
	var t Triple
	for _, field := range []struct {
		token string
		dst   *int32
	}{{a, &t.A}, {b, &t.B}, {c, &t.C}} {
		v, err := ParseCoefficient(field.token)
		if err != nil {
			return Triple{}, err
		}
		*field.dst = v
	}
	return t, nil
}
