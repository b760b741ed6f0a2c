package bandit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banditlab/banditsim/analysis"
	"github.com/banditlab/banditsim/benchmarks/common"
)

func TestPrepareComparison(t *testing.T) {
	flags := common.DefaultFlags()
	flags.Seed = 1

	cmp := PrepareDeterministicComparison(flags)

	require.Len(t, cmp.Experiments, 2, "learner and baseline")
	names := []string{cmp.Experiments[0].Name, cmp.Experiments[1].Name}
	require.Contains(t, names, "egreedy")
	require.Contains(t, names, "random")

	require.Contains(t, cmp.Analyzers, "reward")
	require.IsType(t, &analysis.RewardComparatorConstructor{}, cmp.Comparators["reward"])
}

func TestPrepareComparisonWithoutSavePath(t *testing.T) {
	flags := common.DefaultFlags()
	flags.SavePath = ""

	cmp := PrepareHighLowComparison(flags)

	require.Contains(t, cmp.Comparators, "reward")
	require.IsType(t, &analysis.NoOpComparatorConstructor{}, cmp.Comparators["reward"])
}
