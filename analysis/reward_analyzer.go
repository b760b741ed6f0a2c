package analysis

import (
	"github.com/banditlab/banditsim/core"
	"github.com/banditlab/banditsim/util"
)

type rewardDataset struct {
	Timesteps        []int
	EpisodeRewards   []float64
	CumulativeReward []float64
	ArmPulls         []int
}

func (d *rewardDataset) Copy() *rewardDataset {
	return &rewardDataset{
		Timesteps:        util.CopyIntSlice(d.Timesteps),
		EpisodeRewards:   util.CopyFloatSlice(d.EpisodeRewards),
		CumulativeReward: util.CopyFloatSlice(d.CumulativeReward),
		ArmPulls:         util.CopyIntSlice(d.ArmPulls),
	}
}

// RewardAnalyzer records per-episode reward, the running cumulative reward
// and how often each arm was pulled.
type RewardAnalyzer struct {
	cumulative float64
	armPulls   map[int]int
	dataset    *rewardDataset
}

var _ core.Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{
		armPulls: make(map[int]int),
		dataset: &rewardDataset{
			Timesteps:        make([]int, 0),
			EpisodeRewards:   make([]float64, 0),
			CumulativeReward: make([]float64, 0),
			ArmPulls:         make([]int, 0),
		},
	}
}

func (r *RewardAnalyzer) Reset() {
	r.cumulative = 0
	r.armPulls = make(map[int]int)
	r.dataset = &rewardDataset{
		Timesteps:        make([]int, 0),
		EpisodeRewards:   make([]float64, 0),
		CumulativeReward: make([]float64, 0),
		ArmPulls:         make([]int, 0),
	}
}

func (r *RewardAnalyzer) Analyze(eCtx *core.EpisodeContext, trace *core.Trace) {
	episodeReward := float64(0)
	maxArm := len(r.dataset.ArmPulls) - 1
	for i := 0; i < trace.Len(); i++ {
		step := trace.Step(i)
		episodeReward += step.Result.Reward
		r.armPulls[step.Action]++
		if step.Action > maxArm {
			maxArm = step.Action
		}
	}
	r.cumulative += episodeReward

	lastTimeStep := 0
	if len(r.dataset.Timesteps) > 0 {
		lastTimeStep = r.dataset.Timesteps[len(r.dataset.Timesteps)-1]
	}
	r.dataset.Timesteps = append(r.dataset.Timesteps, lastTimeStep+trace.Len())
	r.dataset.EpisodeRewards = append(r.dataset.EpisodeRewards, episodeReward)
	r.dataset.CumulativeReward = append(r.dataset.CumulativeReward, r.cumulative)

	r.dataset.ArmPulls = make([]int, maxArm+1)
	for arm, pulls := range r.armPulls {
		r.dataset.ArmPulls[arm] = pulls
	}
}

func (r *RewardAnalyzer) DataSet() core.DataSet {
	return r.dataset.Copy()
}

type RewardAnalyzerConstructor struct{}

var _ core.AnalyzerConstructor = &RewardAnalyzerConstructor{}

func (c *RewardAnalyzerConstructor) NewAnalyzer(_ int) core.Analyzer {
	return NewRewardAnalyzer()
}
