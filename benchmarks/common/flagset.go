package common

import (
	"fmt"
	"path"
	"time"

	"github.com/banditlab/banditsim/util"
)

type Flags struct {
	BanditFlags
	SavePath string
	RunFlags
	Parallelism int
}

type BanditFlags struct {
	Epsilon float64
	Seed    uint64
}

type RunFlags struct {
	NumRuns                int
	Episodes               int
	Horizon                int
	MaxConsecutiveErrors   int
	MaxConsecutiveTimeouts int
	EpisodeTimeout         time.Duration
}

func DefaultFlags() *Flags {
	return &Flags{
		BanditFlags: BanditFlags{
			Epsilon: 0.9,
			Seed:    0,
		},
		SavePath: "results",
		RunFlags: RunFlags{
			NumRuns:                1,
			Episodes:               1000,
			Horizon:                1,
			MaxConsecutiveErrors:   20,
			MaxConsecutiveTimeouts: 20,
			EpisodeTimeout:         10 * time.Second,
		},
		Parallelism: 4,
	}
}

func (f *Flags) Record() {
	file := path.Join(f.SavePath, "config.json")
	if err := util.SaveJson(file, f); err != nil {
		fmt.Printf("Failed to record config to %s: %v\n", file, err)
	}
}
