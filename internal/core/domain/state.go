package domain

// BuildState is a step of the build state machine.
type BuildState string

// Build states in the order a successful build visits them.
const (
	StateCreated           BuildState = "created"
	StateExtracting        BuildState = "extracting"
	StateAnalyzingMetadata BuildState = "analyzing_metadata"
	StateContextBuilt      BuildState = "context_built"
	StateRunning           BuildState = "running"
	StateSucceeded         BuildState = "succeeded"
	StateFailed            BuildState = "failed"
	StateFaulted           BuildState = "faulted"
	StateFinalizing        BuildState = "finalizing"
	StateDone              BuildState = "done"
)

var transitions = map[BuildState][]BuildState{
	StateCreated:           {StateExtracting},
	StateExtracting:        {StateAnalyzingMetadata},
	StateAnalyzingMetadata: {StateContextBuilt},
	StateContextBuilt:      {StateRunning},
	StateRunning:           {StateSucceeded, StateFailed, StateFaulted},
	StateSucceeded:         {StateFinalizing},
	StateFailed:            {StateFinalizing},
	StateFaulted:           {StateFinalizing},
	StateFinalizing:        {StateDone},
}

// CanTransition reports whether a build may move from s to next.
// Finalizing is reachable from every state before it so that early exits still clean up.
func (s BuildState) CanTransition(next BuildState) bool {
	if next == StateFinalizing && s != StateFinalizing && s != StateDone {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends the pipeline phase of a build.
func (s BuildState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateFaulted
}

func (s BuildState) String() string {
	return string(s)
}
