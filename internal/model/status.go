package model

// RunState represents the state of the download worker
type RunState string

const (
	// RunStateIdle means no run is in progress
	RunStateIdle RunState = "Idle"

	// RunStateWaitingOnProbes means the run waits for every metadata probe to finish
	RunStateWaitingOnProbes RunState = "WaitingOnProbes"

	// RunStateDownloading means URLs are being downloaded one by one
	RunStateDownloading RunState = "Downloading"

	// RunStateCancelled means the user stopped the run
	RunStateCancelled RunState = "Cancelled"

	// RunStateCompleted means every URL was downloaded or skipped as failed
	RunStateCompleted RunState = "Completed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true while a run is in flight
func (rs RunState) IsActive() bool {
	return rs == RunStateWaitingOnProbes || rs == RunStateDownloading
}

// IsFinished returns true if the run reached a terminal state
func (rs RunState) IsFinished() bool {
	return rs == RunStateCancelled || rs == RunStateCompleted
}
