package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/banditlab/banditsim/bandit"
	"github.com/banditlab/banditsim/core"
	"github.com/banditlab/banditsim/policies"
)

// rewardCapture records the total reward of every analyzed episode.
type rewardCapture struct {
	rewards []float64
}

var _ core.Analyzer = &rewardCapture{}

func (r *rewardCapture) Analyze(_ *core.EpisodeContext, trace *core.Trace) {
	r.rewards = append(r.rewards, trace.TotalReward())
}

func (r *rewardCapture) DataSet() core.DataSet {
	out := make([]float64, len(r.rewards))
	copy(out, r.rewards)
	return out
}

func (r *rewardCapture) Reset() {
	r.rewards = nil
}

type rewardCaptureConstructor struct{}

func (rewardCaptureConstructor) NewAnalyzer(_ int) core.Analyzer {
	return &rewardCapture{}
}

// captureComparator remembers the last comparison it was handed.
type captureComparator struct {
	names    []string
	datasets []core.DataSet
}

var _ core.Comparator = &captureComparator{}

func (c *captureComparator) Compare(names []string, datasets []core.DataSet) {
	c.names = names
	c.datasets = datasets
}

func runConfig(episodes int) *core.RunConfig {
	return &core.RunConfig{
		Episodes:                     episodes,
		Horizon:                      1,
		EpisodeTimeout:               5 * time.Second,
		ThresholdConsecutiveErrors:   3,
		ThresholdConsecutiveTimeouts: 3,
	}
}

func TestComparisonRun(t *testing.T) {
	env, err := bandit.New([]float64{1, 0}, []bandit.RewardSpec{bandit.Fixed(1), bandit.Fixed(1)})
	require.NoError(t, err)
	env.Seed(1)

	policy := policies.NewEpsilonGreedyPolicy(1, 2)
	policy.Seed(2)

	cmp := core.NewComparison()
	cmp.AddExperiment(&core.Experiment{
		Name:        "egreedy",
		Environment: env,
		Policy:      policy,
	})
	capture := &captureComparator{}
	cmp.AddAnalysis("reward", &rewardCapture{}, capture)

	cmp.Run(context.Background(), 1, runConfig(10))

	require.Equal(t, []string{"egreedy"}, capture.names)
	require.Len(t, capture.datasets, 1)

	rewards, ok := capture.datasets[0].([]float64)
	require.True(t, ok)
	require.Len(t, rewards, 10)
	for _, r := range rewards {
		// Fully greedy on all-zero estimates picks arm 0, which always
		// pays 1.
		require.Equal(t, float64(1), r)
	}
}

func TestParallelComparisonRun(t *testing.T) {
	envConstructor := &bandit.Constructor{
		PDist: []float64{1, 0},
		RDist: []bandit.RewardSpec{bandit.Fixed(1), bandit.Fixed(1)},
		Seed:  9,
	}

	cmp := core.NewParallelComparison()
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "egreedy",
		Environment: envConstructor,
		Policy:      &policies.EpsilonGreedyPolicyConstructor{Epsilon: 1, Arms: 2},
	})
	cmp.AddExperiment(&core.ParallelExperiment{
		Name:        "random",
		Environment: envConstructor,
		Policy:      &policies.RandomPolicyConstructor{},
	})

	capture := &captureComparator{}
	cmp.AddAnalysis("reward", rewardCaptureConstructor{}, singletonConstructor{capture})

	cmp.Run(context.Background(), 1, runConfig(20), 2)

	require.Len(t, capture.names, 2)
	require.Len(t, capture.datasets, 2)
	for i, name := range capture.names {
		rewards, ok := capture.datasets[i].([]float64)
		require.True(t, ok, "dataset for %s", name)
		require.Len(t, rewards, 20)
	}
}

type singletonConstructor struct {
	cmp core.Comparator
}

func (s singletonConstructor) NewComparator(_ int) core.Comparator {
	return s.cmp
}
