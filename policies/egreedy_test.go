package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banditlab/banditsim/bandit"
	"github.com/banditlab/banditsim/core"
)

func TestEpsilonGreedyAlwaysExploits(t *testing.T) {
	// Epsilon 1 means the greedy branch is always taken under the
	// inverted convention.
	policy := NewEpsilonGreedyPolicy(1, 4)
	policy.Seed(11)
	policy.Table().Update(2, 5)

	for i := 0; i < 1000; i++ {
		require.Equal(t, 2, policy.PickAction(nil, 0, 4))
	}
}

func TestEpsilonGreedyExplores(t *testing.T) {
	// Epsilon 0 leaves only the uniform branch.
	policy := NewEpsilonGreedyPolicy(0, 4)
	policy.Seed(13)
	policy.Table().Update(2, 100)

	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		counts[policy.PickAction(nil, 0, 4)]++
	}
	for arm, count := range counts {
		assert.Greater(t, count, 0, "arm %d never explored", arm)
	}
}

func TestEpsilonGreedyTieBreak(t *testing.T) {
	policy := NewEpsilonGreedyPolicy(1, 3)
	policy.Seed(17)

	// All estimates equal, greedy must settle on the lowest index.
	require.Equal(t, 0, policy.PickAction(nil, 0, 3))
}

func TestEpsilonGreedyUpdateStep(t *testing.T) {
	policy := NewEpsilonGreedyPolicy(0.9, 2)

	policy.UpdateStep(nil, 0, 1, &core.StepResult{Reward: 4, Done: true})
	policy.UpdateStep(nil, 0, 1, &core.StepResult{Reward: 8, Done: true})

	require.InDelta(t, 6, policy.Table().Estimate(1), 1e-9)
	require.Equal(t, 2, policy.Table().Pulls(1))
	require.Equal(t, 0, policy.Table().Pulls(0))
}

func TestEpsilonGreedyReset(t *testing.T) {
	policy := NewEpsilonGreedyPolicy(0.9, 2)
	policy.UpdateStep(nil, 0, 0, &core.StepResult{Reward: 3, Done: true})
	policy.Reset()

	require.Equal(t, []float64{0, 0}, policy.Table().Estimates())
	require.Equal(t, []int{0, 0}, policy.Table().PullCounts())
}

// Driving the policy against a fixed two-armed bandit: pulling arm 0 then
// arm 1 once each stores the raw rewards as estimates.
func TestEpsilonGreedyAgainstFixedBandit(t *testing.T) {
	env, err := bandit.New([]float64{1, 1}, []bandit.RewardSpec{bandit.Fixed(10), bandit.Fixed(20)})
	require.NoError(t, err)
	env.Seed(1)

	policy := NewEpsilonGreedyPolicy(0.9, 2)

	rewards := make([]float64, 0, 2)
	for _, action := range []int{0, 1} {
		result, err := env.Step(action, nil)
		require.NoError(t, err)
		policy.UpdateStep(nil, 0, action, result)
		rewards = append(rewards, result.Reward)
	}

	require.Equal(t, []float64{10, 20}, rewards)
	require.Equal(t, []float64{10, 20}, policy.Table().Estimates())
	require.Equal(t, []int{1, 1}, policy.Table().PullCounts())
}

// Statistical check: with a mostly greedy policy the better arm dominates
// after enough pulls.
func TestEpsilonGreedyFindsBetterArm(t *testing.T) {
	env, err := bandit.New([]float64{0.2, 0.8}, []bandit.RewardSpec{bandit.Fixed(1), bandit.Fixed(1)})
	require.NoError(t, err)
	env.Seed(3)

	policy := NewEpsilonGreedyPolicy(0.9, 2)
	policy.Seed(5)

	const steps = 5000
	for i := 0; i < steps; i++ {
		action := policy.PickAction(nil, 0, 2)
		result, err := env.Step(action, nil)
		require.NoError(t, err)
		policy.UpdateStep(nil, 0, action, result)
	}

	counts := policy.Table().PullCounts()
	t.Logf("pull counts: %v", counts)
	assert.Greater(t, counts[1], steps/2, "the high payout arm should dominate")
}
