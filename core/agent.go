package core

type Policy interface {
	ResetEpisode(*EpisodeContext)
	UpdateEpisode(*EpisodeContext)
	// PickAction chooses one of [0, numActions) given the current
	// observation.
	PickAction(sCtx *StepContext, obs Observation, numActions int) int
	UpdateStep(sCtx *StepContext, obs Observation, action int, result *StepResult)
	Reset()
}

type PolicyConstructor interface {
	NewPolicy() Policy
}
