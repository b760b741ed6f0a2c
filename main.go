package main

import (
	"os"

	"github.com/banditlab/banditsim/benchmarks/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
