package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/fogfactory/quadpipe"
	"github.com/fogfactory/quadpipe/equation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errNotEnoughTokens = errors.New("not enough arguments")

// app holds what the commands share once flags are parsed
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "quadpipe [flags] a1 b1 c1 [a2 b2 c2 ...]",
		Short: "Solve quadratic equations concurrently",
		Long: `quadpipe solves a·x² + b·x + c = 0 for every (a, b, c) group of its arguments, and prints the roots and the
extremum of each equation.

Arguments are split into buckets, each one parsed and solved by a pair of goroutines. Results of a bucket are printed
in input order, buckets are printed in any order.

Flags must come first. Use -- before the coefficients when the first one is negative:
  quadpipe --parallelism 4 -- -1 0 1`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a.v = v
			a.logger, err = newLogger(v.GetBool("verbose"))
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.PersistentFlags().String("config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "debug logs on stderr")

	cmd.Flags().IntP("parallelism", "p", runtime.NumCPU(), "available parallelism, two goroutines per bucket")
	cmd.Flags().Int("buffer-size", quadpipe.DefaultBufferCapacity, "size of the output buffer of each goroutine")
	cmd.Flags().Bool("assist", false, "producers help solving once parsing is done (results of a bucket may be reordered)")
	cmd.Flags().Bool("timing", true, "print the elapsed time")
	cmd.Flags().StringP("input", "i", "", "read whitespace separated coefficients from a file (- for stdin), before the arguments")

	cmd.AddCommand(newGenerateCmd(a), newProfileCmd(a))
	return cmd
}

func (a *app) solve(cmd *cobra.Command, args []string) error {
	start := time.Now()

	tokens, err := a.tokens(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(tokens) < equation.Arity {
		return fmt.Errorf("%w: got %d, want at least %d coefficients", errNotEnoughTokens, len(tokens), equation.Arity)
	}
	cmd.SilenceUsage = true

	p, err := quadpipe.New(cmd.OutOrStdout(),
		quadpipe.WithParallelism(a.v.GetInt("parallelism")),
		quadpipe.WithBuffer(a.v.GetInt("buffer-size"), equation.MaxLineLength),
		quadpipe.WithAssist(a.v.GetBool("assist")),
		quadpipe.WithLogger(a.logger))
	if err != nil {
		return err
	}
	stats, err := p.Run(tokens)
	if err != nil {
		return err
	}
	a.logger.Info("solved",
		zap.Int("buckets", stats.Buckets),
		zap.Int("solved", stats.Solved),
		zap.Int("malformed", stats.Malformed),
		zap.Int("incomplete", stats.Incomplete))

	if a.v.GetBool("timing") {
		fmt.Fprintln(cmd.OutOrStdout(), formatElapsed(time.Since(start)))
	}
	return nil
}

// tokens returns the tokens of --input, if any, followed by args.
func (a *app) tokens(stdin io.Reader, args []string) ([]string, error) {
	path := a.v.GetString("input")
	if path == "" {
		return args, nil
	}
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return append(tokens, args...), nil
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("Time elapsed: %dµs", d.Microseconds())
	}
	return fmt.Sprintf("Time elapsed: %dms", d.Milliseconds())
}
