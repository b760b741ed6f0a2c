package bandit

import "fmt"

type RewardKind int

const (
	// RewardFixed pays a constant scalar on a successful pull.
	RewardFixed RewardKind = iota
	// RewardNormal draws the payout from a normal distribution.
	RewardNormal
)

// RewardSpec is a tagged union describing the payout of one arm: either a
// fixed scalar or a (mean, stddev) normal draw.
type RewardSpec struct {
	Kind   RewardKind
	Value  float64
	Mean   float64
	StdDev float64
}

// Fixed returns a reward spec paying the constant v.
func Fixed(v float64) RewardSpec {
	return RewardSpec{Kind: RewardFixed, Value: v}
}

// Normal returns a reward spec drawing from Normal(mean, stddev).
func Normal(mean, stddev float64) RewardSpec {
	return RewardSpec{Kind: RewardNormal, Mean: mean, StdDev: stddev}
}

func (r RewardSpec) validate() error {
	switch r.Kind {
	case RewardFixed:
		return nil
	case RewardNormal:
		if r.StdDev <= 0 {
			return fmt.Errorf("stddev must be positive, got %f", r.StdDev)
		}
		return nil
	default:
		return fmt.Errorf("unknown reward kind %d", r.Kind)
	}
}
