package benchmark

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/fogfactory/quadpipe/equation"
	"github.com/samber/lo"
)

const (
	// coefficientRate is the share of generated tokens which are valid coefficients
	coefficientRate = 0.9
	maxCoefficient  = 10000
	maxGarbageLen   = 4
)

// GenerateTokens generates lines*3 random tokens. 90% of them are integers in [-10000, 10000], the rest are 1 to 4
// random letters.
func GenerateTokens(r *rand.Rand, lines int) []string {
	return lo.Times(lines*equation.Arity, func(_ int) string {
		if r.Float64() < coefficientRate {
			return strconv.Itoa(r.Intn(2*maxCoefficient+1) - maxCoefficient)
		}
		return randomLetters(r, 1+r.Intn(maxGarbageLen))
	})
}

// WriteTokens writes tokens to w, one equation per line.
func WriteTokens(w io.Writer, tokens []string) error {
	bw := bufio.NewWriter(w)
	for _, chunk := range lo.Chunk(tokens, equation.Arity) {
		if _, err := bw.WriteString(strings.Join(chunk, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func randomLetters(r *rand.Rand, n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return string(lo.Times(n, func(_ int) byte { return letters[r.Intn(len(letters))] }))
}
