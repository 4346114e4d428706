package main

import (
	"fmt"
	"runtime"

	"github.com/fogfactory/quadpipe/benchmark"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Run the pipeline on generated data under a CPU profile",
		Long: `Profile generates random equations and solves them once per parallelism, with the CPU profiler on. The
profile is written in the current directory, read it with pprof -http=:8080 <file>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parallelisms, err := cmd.Flags().GetIntSlice("parallelism")
			if err != nil {
				return err
			}
			path, err := benchmark.Profile(cmd.OutOrStdout(), a.v.GetInt("lines"), parallelisms...)
			if err != nil {
				return err
			}
			a.logger.Debug("profile written", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "profile:%s\n", path)
			return nil
		},
	}
	cmd.Flags().IntP("lines", "n", defaultLines, "number of equations")
	cmd.Flags().IntSliceP("parallelism", "p", []int{2, runtime.NumCPU()}, "parallelism of each run")
	return cmd
}
