package benchmark

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/fogfactory/quadpipe"
	"github.com/samber/lo"
)

// Profile generates a profile file. It will be outputted as quadpipe_{date}_l{lines}_{parallelisms}.prof, and contains
// one run of the pipeline per parallelism, on the same generated data.
//
// - lines Number of equations generated.
// - parallelisms Parallelism of each run.
//
// use pprof to read the file (go install github.com/google/pprof@latest). Durations are reported to report.
func Profile(report io.Writer, lines int, parallelisms ...int) (string, error) {
	// Profile file
	f, err := os.Create(fmt.Sprintf("quadpipe_%s_l%d_%s.prof",
		strings.ReplaceAll(time.Now().Truncate(time.Second).Format(time.DateTime), " ", "-"),
		lines,
		strings.Join(lo.Map(parallelisms, func(item, _ int) string { return fmt.Sprint(item) }), "-")))
	if err != nil {
		return "", err
	}
	defer f.Close()

	tokens := GenerateTokens(rand.New(rand.NewSource(time.Now().UnixNano())), lines)
	fmt.Fprintln(report, "tokens: ", len(tokens))

	if err := pprof.StartCPUProfile(f); err != nil {
		return "", err
	}
	defer pprof.StopCPUProfile()

	for _, parallelism := range parallelisms {
		p, err := quadpipe.New(io.Discard, quadpipe.WithParallelism(parallelism))
		if err != nil {
			return "", err
		}
		start := time.Now()
		stats, err := p.Run(tokens)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(report, "(par %d: %s, %d buckets, %d writes)\n", parallelism, time.Since(start), stats.Buckets, stats.Writes)
	}

	// pprof -http=:8080 $file
	return f.Name(), nil
}
