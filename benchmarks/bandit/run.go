// Package bandit wires the bandit testbeds into runnable comparisons of
// the epsilon-greedy learner against a uniform random baseline.
package bandit

import (
	erand "golang.org/x/exp/rand"

	"github.com/banditlab/banditsim/analysis"
	"github.com/banditlab/banditsim/bandit"
	"github.com/banditlab/banditsim/benchmarks/common"
	"github.com/banditlab/banditsim/core"
	"github.com/banditlab/banditsim/policies"
)

func PrepareDeterministicComparison(flags *common.Flags) *core.ParallelComparison {
	pDist, rDist := bandit.Deterministic()
	return prepareComparison(flags, pDist, rDist)
}

func PrepareHighLowComparison(flags *common.Flags) *core.ParallelComparison {
	pDist, rDist := bandit.HighLow()
	return prepareComparison(flags, pDist, rDist)
}

func PrepareTenArmRandomComparison(flags *common.Flags) *core.ParallelComparison {
	pDist, rDist := bandit.TenArmRandom(testbedSource(flags))
	return prepareComparison(flags, pDist, rDist)
}

func PrepareTenArmGaussianComparison(flags *common.Flags) *core.ParallelComparison {
	pDist, rDist := bandit.TenArmGaussian(testbedSource(flags))
	return prepareComparison(flags, pDist, rDist)
}

// testbedSource seeds the testbed shape separately from the environments
// so a fixed seed reproduces both the arms and the rewards.
func testbedSource(flags *common.Flags) erand.Source {
	seed := flags.Seed
	if seed == 0 {
		seed = 1
	}
	return erand.NewSource(seed)
}

func prepareComparison(flags *common.Flags, pDist []float64, rDist []bandit.RewardSpec) *core.ParallelComparison {
	cmp := core.NewParallelComparison()

	envConstructor := &bandit.Constructor{
		PDist: pDist,
		RDist: rDist,
		Seed:  flags.Seed,
	}

	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "egreedy",
		Environment: envConstructor,
		Policy: &policies.EpsilonGreedyPolicyConstructor{
			Epsilon: flags.Epsilon,
			Arms:    len(pDist),
		},
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "random",
		Environment: envConstructor,
		Policy:      &policies.RandomPolicyConstructor{},
	})

	// Without a save path there is nothing to report or record.
	var comparator core.ComparatorConstructor = analysis.NewNoOpComparatorConstructor()
	if flags.SavePath != "" {
		comparator = &analysis.RewardComparatorConstructor{SavePath: flags.SavePath}
	}
	cmp.AddAnalysis("reward", &analysis.RewardAnalyzerConstructor{}, comparator)

	return cmp
}
