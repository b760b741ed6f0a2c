package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banditsim",
		Short: "Multi-armed bandit testbeds for the epsilon-greedy learner",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		DeterministicCommand(),
		HighLowCommand(),
		TenArmRandomCommand(),
		TenArmGaussianCommand(),
	)

	return cmd
}
