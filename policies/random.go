package policies

import (
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/banditlab/banditsim/core"
)

// RandomPolicy picks a uniformly random arm on every step. Used as the
// baseline in comparisons.
type RandomPolicy struct {
	rand *erand.Rand
}

var _ core.Policy = &RandomPolicy{}

func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{
		rand: erand.New(erand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (r *RandomPolicy) Reset() {}

func (r *RandomPolicy) ResetEpisode(_ *core.EpisodeContext) {}

func (r *RandomPolicy) UpdateEpisode(_ *core.EpisodeContext) {}

func (r *RandomPolicy) PickAction(_ *core.StepContext, _ core.Observation, numActions int) int {
	return r.rand.Intn(numActions)
}

func (r *RandomPolicy) UpdateStep(_ *core.StepContext, _ core.Observation, _ int, _ *core.StepResult) {}

type RandomPolicyConstructor struct{}

var _ core.PolicyConstructor = &RandomPolicyConstructor{}

func (r *RandomPolicyConstructor) NewPolicy() core.Policy {
	return NewRandomPolicy()
}
