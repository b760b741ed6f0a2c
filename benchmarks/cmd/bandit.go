package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	banditbench "github.com/banditlab/banditsim/benchmarks/bandit"
	"github.com/banditlab/banditsim/benchmarks/common"
	"github.com/banditlab/banditsim/core"
)

func DeterministicCommand() *cobra.Command {
	return runCommand(
		"deterministic",
		"Run the two-armed deterministic bandit",
		banditbench.PrepareDeterministicComparison,
	)
}

func HighLowCommand() *cobra.Command {
	return runCommand(
		"highlow",
		"Run the two-armed high/low payout bandit",
		banditbench.PrepareHighLowComparison,
	)
}

func TenArmRandomCommand() *cobra.Command {
	return runCommand(
		"tenarm",
		"Run the ten-armed bandit with random payout probabilities",
		banditbench.PrepareTenArmRandomComparison,
	)
}

func TenArmGaussianCommand() *cobra.Command {
	return runCommand(
		"gaussian",
		"Run the ten-armed Gaussian testbed",
		banditbench.PrepareTenArmGaussianComparison,
	)
}

func runCommand(use, short string, prepare func(*common.Flags) *core.ParallelComparison) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			cmp := prepare(flags)
			cmp.Run(ctx, flags.NumRuns, &core.RunConfig{
				Episodes:                     flags.Episodes,
				Horizon:                      flags.Horizon,
				ThresholdConsecutiveErrors:   flags.MaxConsecutiveErrors,
				ThresholdConsecutiveTimeouts: flags.MaxConsecutiveTimeouts,
				EpisodeTimeout:               flags.EpisodeTimeout,
			}, flags.Parallelism)
			close(doneCh)
		},
	}
}
