package model

import "testing"

func TestRunState_IsActive(t *testing.T) {
	tests := []struct {
		state    RunState
		expected bool
	}{
		{RunStateIdle, false},
		{RunStateWaitingOnProbes, true},
		{RunStateDownloading, true},
		{RunStateCancelled, false},
		{RunStateCompleted, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("RunState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestRunState_IsFinished(t *testing.T) {
	tests := []struct {
		state    RunState
		expected bool
	}{
		{RunStateIdle, false},
		{RunStateWaitingOnProbes, false},
		{RunStateDownloading, false},
		{RunStateCancelled, true},
		{RunStateCompleted, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("RunState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}
