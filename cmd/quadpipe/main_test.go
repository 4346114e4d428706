package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maxatome/go-testdeep/td"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// ants default pool, started when the package is loaded
		goleak.IgnoreAnyFunction("github.com/panjf2000/ants/v2.(*poolCommon).purgeStaleWorkers"),
		goleak.IgnoreAnyFunction("github.com/panjf2000/ants/v2.(*poolCommon).ticktock"),
		goleak.IgnoreAnyFunction("github.com/panjf2000/ants/v2.(*Pool).purgeStaleWorkers"),
		goleak.IgnoreAnyFunction("github.com/panjf2000/ants/v2.(*Pool).ticktock"),
	)
}

// execute runs the root command and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		t.Log(errOut.String())
	}
	return out.String(), err
}

func TestSolve(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		// Act
		out, err := execute(t, "--parallelism", "2", "--timing=false", "1", "-3", "2", "0", "0", "5")

		// Assert
		td.CmpNoError(t, err)
		td.Cmp(t, out, "(1, -3, 2) => ([1], [2]) (extremum: X=[1.5], Y=[-0.25])\n"+
			"(0, 0, 5) => (no roots) (no extremum)\n")
	})

	t.Run("leading_negative_coefficient", func(t *testing.T) {
		out, err := execute(t, "-p", "2", "--timing=false", "--", "-1", "0", "1")

		td.CmpNoError(t, err)
		td.Cmp(t, out, "(-1, 0, 1) => ([-1], [1]) (extremum: X=[0], Y=[1])\n")
	})

	t.Run("timing", func(t *testing.T) {
		out, err := execute(t, "-p", "2", "0", "0", "0")

		td.CmpNoError(t, err)
		td.Cmp(t, out, td.Re(`^\(0, 0, 0\) => \(any\) \(no extremum\)\nTime elapsed: \d+(µs|ms)\n$`))
	})

	t.Run("not_enough_arguments", func(t *testing.T) {
		out, err := execute(t, "1", "2")

		td.CmpErrorIs(t, err, errNotEnoughTokens)
		td.Cmp(t, out, td.Contains("Usage:"))
	})

	t.Run("input_file", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "test.data")
		td.Require(t).CmpNoError(os.WriteFile(path, []byte("1 -3 2\n1 a 2\n"), 0o600))

		// Act
		out, err := execute(t, "--input", path, "-p", "2", "--timing=false", "0", "0")

		// Assert
		td.CmpNoError(t, err)
		td.Cmp(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), td.Bag(
			"(1, -3, 2) => ([1], [2]) (extremum: X=[1.5], Y=[-0.25])",
			"(1, a, 2) => not correct arguments for quadratic equation",
			"(0, 0) => not enough arguments for quadratic equation",
		))
	})

	t.Run("missing_input_file", func(t *testing.T) {
		_, err := execute(t, "--input", filepath.Join(t.TempDir(), "missing"))

		td.CmpErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("config_file", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "quadpipe.yaml")
		td.Require(t).CmpNoError(os.WriteFile(path, []byte("timing: false\nparallelism: 2\n"), 0o600))

		// Act
		out, err := execute(t, "--config", path, "0", "0", "5")

		// Assert
		td.CmpNoError(t, err)
		td.Cmp(t, out, "(0, 0, 5) => (no roots) (no extremum)\n")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("QUADPIPE_TIMING", "false")

		out, err := execute(t, "0", "0", "0")

		td.CmpNoError(t, err)
		td.Cmp(t, out, "(0, 0, 0) => (any) (no extremum)\n")
	})

	t.Run("invalid_buffer_size", func(t *testing.T) {
		_, err := execute(t, "--buffer-size", "10", "1", "2", "3")

		td.CmpError(t, err)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		// Act
		out, err := execute(t, "generate", "--lines", "10", "--seed", "1")

		// Assert
		td.CmpNoError(t, err)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		td.Cmp(t, lines, td.All(td.Len(10), td.ArrayEach(td.Re(`^\S+ \S+ \S+$`))))

		again, _ := execute(t, "generate", "--lines", "10", "--seed", "1")
		td.Cmp(t, again, out, "same seed, same data")
	})

	t.Run("file_then_solve", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "test.data")
		_, err := execute(t, "generate", "-n", "100", "--seed", "2", "-o", path)
		td.Require(t).CmpNoError(err)

		// Act
		out, err := execute(t, "--input", path, "--timing=false", "-p", "4")

		// Assert
		td.CmpNoError(t, err)
		td.Cmp(t, strings.Count(out, "\n"), 100)
	})
}

func TestFormatElapsed(t *testing.T) {
	td.Cmp(t, formatElapsed(250*time.Microsecond), "Time elapsed: 250µs")
	td.Cmp(t, formatElapsed(1500*time.Millisecond), "Time elapsed: 1500ms")
	td.Cmp(t, formatElapsed(time.Millisecond), "Time elapsed: 1ms")
}
