package policies

// ValueTable keeps a running-average reward estimate and a pull count per
// arm. Estimates and counts start at zero and are mutated only through
// Update.
type ValueTable struct {
	estimates []float64
	pulls     []int
}

func NewValueTable(arms int) *ValueTable {
	return &ValueTable{
		estimates: make([]float64, arms),
		pulls:     make([]int, arms),
	}
}

func (v *ValueTable) Arms() int {
	return len(v.estimates)
}

func (v *ValueTable) Estimate(arm int) float64 {
	return v.estimates[arm]
}

func (v *ValueTable) Pulls(arm int) int {
	return v.pulls[arm]
}

// ArgMax returns the arm with the highest estimate. Ties break to the
// lowest index.
func (v *ValueTable) ArgMax() int {
	maxArm := 0
	maxVal := v.estimates[0]
	for arm := 1; arm < len(v.estimates); arm++ {
		if v.estimates[arm] > maxVal {
			maxArm = arm
			maxVal = v.estimates[arm]
		}
	}
	return maxArm
}

// Update folds an observed reward into the arm's running average. The
// divisor is the pull count including this reward, so after k updates the
// estimate is the arithmetic mean of the k rewards and the first update
// stores the raw reward.
func (v *ValueTable) Update(arm int, reward float64) {
	v.pulls[arm]++
	v.estimates[arm] += (reward - v.estimates[arm]) / float64(v.pulls[arm])
}

func (v *ValueTable) Reset() {
	for i := range v.estimates {
		v.estimates[i] = 0
		v.pulls[i] = 0
	}
}

// Estimates returns a copy of the per-arm estimates.
func (v *ValueTable) Estimates() []float64 {
	out := make([]float64, len(v.estimates))
	copy(out, v.estimates)
	return out
}

// PullCounts returns a copy of the per-arm pull counts.
func (v *ValueTable) PullCounts() []int {
	out := make([]int, len(v.pulls))
	copy(out, v.pulls)
	return out
}
