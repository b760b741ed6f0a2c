package util

func CopyIntSlice(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func CopyFloatSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func MeanFloat(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := float64(0)
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}
