package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/fogfactory/quadpipe/benchmark"
	"github.com/spf13/cobra"
)

// defaultLines is the size of the reference data set.
const defaultLines = 51225

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random coefficients, with about 10% of garbage tokens",
		Long: `Generate writes random equations, one per line. 90% of the tokens are integers in [-10000, 10000], the
others are 1 to 4 random letters. The result can be given to quadpipe with --input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			seed := a.v.GetInt64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			tokens := benchmark.GenerateTokens(rand.New(rand.NewSource(seed)), a.v.GetInt("lines"))

			w := cmd.OutOrStdout()
			if path := a.v.GetString("out"); path != "" {
				f, createErr := os.Create(path)
				if createErr != nil {
					return createErr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			return benchmark.WriteTokens(w, tokens)
		},
	}
	cmd.Flags().IntP("lines", "n", defaultLines, "number of equations")
	cmd.Flags().Int64("seed", 0, "random seed, 0 for a time based seed")
	cmd.Flags().StringP("out", "o", "", "output file, stdout if empty")
	return cmd
}
