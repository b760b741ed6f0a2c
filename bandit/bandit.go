// Package bandit implements a stochastic multi-armed bandit environment.
// Each arm pays out with its own probability, drawing the reward either
// from a fixed scalar or a normal distribution. Episodes are single-step:
// every pull observes 0 and terminates.
package bandit

import (
	"time"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/banditlab/banditsim/core"
)

type arm struct {
	p      float64
	spec   RewardSpec
	normal distuv.Normal
}

// Environment is a multi-armed bandit. Immutable after construction except
// for the state of its owned random source.
type Environment struct {
	arms []arm
	src  erand.Source
	rand *erand.Rand
}

var _ core.Environment = &Environment{}

// New constructs a bandit with one arm per entry of pDist. pDist[i] is the
// payout probability of arm i and rDist[i] its reward spec. Fails with
// *ConfigurationError on a length mismatch, a probability outside [0,1] or
// a non-positive normal stddev.
func New(pDist []float64, rDist []RewardSpec) (*Environment, error) {
	if len(pDist) != len(rDist) {
		return nil, configErrorf("got %d payout probabilities for %d reward specs", len(pDist), len(rDist))
	}
	if len(pDist) == 0 {
		return nil, configErrorf("need at least one arm")
	}
	for i, p := range pDist {
		if p < 0 || p > 1 {
			return nil, configErrorf("arm %d: payout probability %f outside [0,1]", i, p)
		}
	}
	for i, r := range rDist {
		if err := r.validate(); err != nil {
			return nil, configErrorf("arm %d: %v", i, err)
		}
	}

	src := erand.NewSource(uint64(time.Now().UnixNano()))
	e := &Environment{
		arms: make([]arm, len(pDist)),
		src:  src,
		rand: erand.New(src),
	}
	for i := range pDist {
		a := arm{p: pDist[i], spec: rDist[i]}
		if a.spec.Kind == RewardNormal {
			a.normal = distuv.Normal{Mu: a.spec.Mean, Sigma: a.spec.StdDev, Src: src}
		}
		e.arms[i] = a
	}
	return e, nil
}

func (e *Environment) NumActions() int {
	return len(e.arms)
}

// Seed reseeds the owned random source. Reconstructing the environment and
// seeding with the same value reproduces the same reward sequence.
func (e *Environment) Seed(seed uint64) {
	e.src.Seed(seed)
}

// Reset returns the constant observation 0. The bandit keeps no episode
// state beyond its random source.
func (e *Environment) Reset() (core.Observation, error) {
	return 0, nil
}

// Step pulls the given arm. With probability p the arm pays out a sample
// from its reward spec, otherwise the reward is 0. Episodes are always
// done after a single pull.
func (e *Environment) Step(action int, _ *core.StepContext) (*core.StepResult, error) {
	if action < 0 || action >= len(e.arms) {
		return nil, &InvalidActionError{Action: action, Arms: len(e.arms)}
	}
	a := e.arms[action]
	reward := float64(0)
	if e.rand.Float64() < a.p {
		switch a.spec.Kind {
		case RewardFixed:
			reward = a.spec.Value
		case RewardNormal:
			reward = a.normal.Rand()
		}
	}
	return &core.StepResult{
		Observation: 0,
		Reward:      reward,
		Done:        true,
		Info:        map[string]interface{}{},
	}, nil
}

// Constructor builds identically parameterized environments for parallel
// workers. A non-zero Seed is offset by the instance number so workers
// draw distinct but reproducible streams.
type Constructor struct {
	PDist []float64
	RDist []RewardSpec
	Seed  uint64
}

var _ core.EnvironmentConstructor = &Constructor{}

func (c *Constructor) NewEnvironment(instance int) core.Environment {
	env, err := New(c.PDist, c.RDist)
	if err != nil {
		panic(err)
	}
	if c.Seed != 0 {
		env.Seed(c.Seed + uint64(instance))
	}
	return env
}
