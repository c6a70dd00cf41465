package model

import "fmt"

// ShellState is the observable state of a mounted shell. BaseURL is set only
// in PhaseReady; Err is set only in PhaseFailed.
type ShellState struct {
	Phase   Phase
	BaseURL string
	Err     error
}

// AwaitingAssets returns the initial state of every mount
func AwaitingAssets() ShellState {
	return ShellState{Phase: PhaseAwaitingAssets}
}

// StartingServer returns the state after the readiness flag was set
func StartingServer() ShellState {
	return ShellState{Phase: PhaseStartingServer}
}

// Ready returns the terminal success state for the given base URL
func Ready(baseURL string) ShellState {
	return ShellState{Phase: PhaseReady, BaseURL: baseURL}
}

// Failed returns the terminal failure state. The readiness flag is kept as it
// was when the failure happened.
func Failed(err error) ShellState {
	return ShellState{Phase: PhaseFailed, Err: err}
}

// IsLoading returns true while no base URL is available
func (s ShellState) IsLoading() bool {
	return s.BaseURL == ""
}

// String returns a compact description for logs
func (s ShellState) String() string {
	switch {
	case s.BaseURL != "":
		return fmt.Sprintf("%s(%s)", s.Phase, s.BaseURL)
	case s.Err != nil:
		return fmt.Sprintf("%s(%v)", s.Phase, s.Err)
	default:
		return s.Phase.String()
	}
}
