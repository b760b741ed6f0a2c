package policies

import (
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/banditlab/banditsim/core"
)

// EpsilonGreedyPolicy picks the arm with the highest running-average
// estimate with probability Epsilon and a uniformly random arm otherwise.
//
// Note the inverted convention: Epsilon here is the probability of the
// GREEDY branch, not of exploring. Textbook epsilon-greedy explores with
// probability epsilon; this policy keeps the reverse reading, so values
// near 1 mean mostly exploitation. Kept deliberately, callers size
// Epsilon accordingly.
type EpsilonGreedyPolicy struct {
	Epsilon float64

	table *ValueTable
	rand  *erand.Rand
}

var _ core.Policy = &EpsilonGreedyPolicy{}

func NewEpsilonGreedyPolicy(epsilon float64, arms int) *EpsilonGreedyPolicy {
	return &EpsilonGreedyPolicy{
		Epsilon: epsilon,
		table:   NewValueTable(arms),
		rand:    erand.New(erand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// Seed reseeds the policy's random source for reproducible action
// sequences.
func (p *EpsilonGreedyPolicy) Seed(seed uint64) {
	p.rand = erand.New(erand.NewSource(seed))
}

// Reset clears the estimate table. Called between runs, never within one.
func (p *EpsilonGreedyPolicy) Reset() {
	p.table.Reset()
}

func (p *EpsilonGreedyPolicy) ResetEpisode(_ *core.EpisodeContext) {}

func (p *EpsilonGreedyPolicy) UpdateEpisode(_ *core.EpisodeContext) {}

func (p *EpsilonGreedyPolicy) PickAction(_ *core.StepContext, _ core.Observation, numActions int) int {
	if p.rand.Float64() <= p.Epsilon {
		return p.table.ArgMax()
	}
	return p.rand.Intn(numActions)
}

func (p *EpsilonGreedyPolicy) UpdateStep(_ *core.StepContext, _ core.Observation, action int, result *core.StepResult) {
	p.table.Update(action, result.Reward)
}

// Table exposes the policy's estimate table.
func (p *EpsilonGreedyPolicy) Table() *ValueTable {
	return p.table
}

type EpsilonGreedyPolicyConstructor struct {
	Epsilon float64
	Arms    int
}

var _ core.PolicyConstructor = &EpsilonGreedyPolicyConstructor{}

func (c *EpsilonGreedyPolicyConstructor) NewPolicy() core.Policy {
	return NewEpsilonGreedyPolicy(c.Epsilon, c.Arms)
}
