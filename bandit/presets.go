package bandit

import erand "golang.org/x/exp/rand"

// The named testbeds are plain (pDist, rDist) pairs fed to New. There is
// no variant hierarchy; every shape is just a parameterization.

// Deterministic is a two-armed bandit where arm 0 always pays 1 and arm 1
// never pays.
func Deterministic() ([]float64, []RewardSpec) {
	return []float64{1, 0}, []RewardSpec{Fixed(1), Fixed(1)}
}

// HighLow is a two-armed bandit with a high and a low payout probability
// and unit rewards.
func HighLow() ([]float64, []RewardSpec) {
	return []float64{0.8, 0.2}, []RewardSpec{Fixed(1), Fixed(1)}
}

// TenArmRandom is a ten-armed bandit with unit rewards and payout
// probabilities drawn uniformly from the given source.
func TenArmRandom(src erand.Source) ([]float64, []RewardSpec) {
	rng := erand.New(src)
	pDist := make([]float64, 10)
	rDist := make([]RewardSpec, 10)
	for i := range pDist {
		pDist[i] = rng.Float64()
		rDist[i] = Fixed(1)
	}
	return pDist, rDist
}

// TenArmGaussian is the classic ten-armed Gaussian testbed: every pull
// pays out, with per-arm means drawn from a standard normal and unit
// stddev around each mean.
func TenArmGaussian(src erand.Source) ([]float64, []RewardSpec) {
	rng := erand.New(src)
	pDist := make([]float64, 10)
	rDist := make([]RewardSpec, 10)
	for i := range pDist {
		pDist[i] = 1
		rDist[i] = Normal(rng.NormFloat64(), 1)
	}
	return pDist, rDist
}
