package bandit

import erand "golang.org/x/exp/rand"

func newTestSource() erand.Source {
	return erand.NewSource(1)
}
