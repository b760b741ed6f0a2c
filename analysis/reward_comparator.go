package analysis

import (
	"fmt"
	"path"

	"github.com/banditlab/banditsim/core"
	"github.com/banditlab/banditsim/util"
)

// RewardComparator prints the average per-episode reward of each
// experiment and records the gathered datasets as JSON under savePath.
type RewardComparator struct {
	savePath string
	run      int
}

var _ core.Comparator = &RewardComparator{}

func NewRewardComparator(savePath string, run int) *RewardComparator {
	return &RewardComparator{
		savePath: savePath,
		run:      run,
	}
}

func (c *RewardComparator) Compare(names []string, datasets []core.DataSet) {
	out := make(map[string]*rewardDataset)
	for i, name := range names {
		if datasets[i] == nil {
			fmt.Printf("Run %d, Experiment %s: no data\n", c.run, name)
			continue
		}
		d, ok := datasets[i].(*rewardDataset)
		if !ok {
			continue
		}
		out[name] = d
		fmt.Printf(
			"Run %d, Experiment %s: episodes %d, avg episode reward %.4f, total reward %.2f\n",
			c.run, name, len(d.EpisodeRewards), util.MeanFloat(d.EpisodeRewards), c.total(d),
		)
	}
	if c.savePath == "" {
		return
	}
	file := path.Join(c.savePath, fmt.Sprintf("rewards_%d.json", c.run))
	if err := util.SaveJson(file, out); err != nil {
		fmt.Printf("Run %d: failed to save rewards: %v\n", c.run, err)
	}
}

func (c *RewardComparator) total(d *rewardDataset) float64 {
	if len(d.CumulativeReward) == 0 {
		return 0
	}
	return d.CumulativeReward[len(d.CumulativeReward)-1]
}

type RewardComparatorConstructor struct {
	SavePath string
}

var _ core.ComparatorConstructor = &RewardComparatorConstructor{}

func (c *RewardComparatorConstructor) NewComparator(run int) core.Comparator {
	return NewRewardComparator(c.SavePath, run)
}
