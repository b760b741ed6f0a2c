package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banditlab/banditsim/core"
)

func traceOf(steps ...*core.Step) *core.Trace {
	trace := core.NewTrace()
	for _, s := range steps {
		trace.AddStep(s)
	}
	return trace
}

func step(action int, reward float64) *core.Step {
	return &core.Step{
		Action: action,
		Result: &core.StepResult{Reward: reward, Done: true},
	}
}

func TestRewardAnalyzer(t *testing.T) {
	a := NewRewardAnalyzer()

	a.Analyze(nil, traceOf(step(0, 10)))
	a.Analyze(nil, traceOf(step(1, 20)))
	a.Analyze(nil, traceOf(step(1, 5)))

	d, ok := a.DataSet().(*rewardDataset)
	require.True(t, ok)

	require.Equal(t, []int{1, 2, 3}, d.Timesteps)
	require.Equal(t, []float64{10, 20, 5}, d.EpisodeRewards)
	require.Equal(t, []float64{10, 30, 35}, d.CumulativeReward)
	require.Equal(t, []int{1, 2}, d.ArmPulls)
}

func TestRewardAnalyzerReset(t *testing.T) {
	a := NewRewardAnalyzer()
	a.Analyze(nil, traceOf(step(0, 10)))
	a.Reset()

	d, ok := a.DataSet().(*rewardDataset)
	require.True(t, ok)
	require.Empty(t, d.EpisodeRewards)
	require.Empty(t, d.ArmPulls)
}

func TestDataSetIsACopy(t *testing.T) {
	a := NewRewardAnalyzer()
	a.Analyze(nil, traceOf(step(0, 1)))

	first := a.DataSet().(*rewardDataset)
	a.Analyze(nil, traceOf(step(0, 1)))

	require.Len(t, first.EpisodeRewards, 1, "earlier datasets must not grow")
}
