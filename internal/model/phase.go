package model

// Phase represents the bootstrap phase of a mounted shell
type Phase string

const (
	// PhaseAwaitingAssets means the bundle is not yet confirmed in place
	PhaseAwaitingAssets Phase = "AwaitingAssets"

	// PhaseStartingServer means readiness is set and the local server is starting
	PhaseStartingServer Phase = "StartingServer"

	// PhaseReady means the base URL is published
	PhaseReady Phase = "Ready"

	// PhaseFailed means bootstrap stopped on a fatal error; the view keeps loading
	PhaseFailed Phase = "Failed"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsTerminal returns true if no further transition happens during the mount
func (p Phase) IsTerminal() bool {
	return p == PhaseReady || p == PhaseFailed
}
