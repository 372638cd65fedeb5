package model

import "testing"

func TestOutputKind_IsValid(t *testing.T) {
	tests := []struct {
		kind     OutputKind
		expected bool
	}{
		{OutputDefault, true},
		{OutputVideoAudio, true},
		{OutputAudioOnly, true},
		{"", false},
		{"video_only", false},
	}

	for _, test := range tests {
		if got := test.kind.IsValid(); got != test.expected {
			t.Errorf("OutputKind(%q).IsValid() = %v, expected %v", test.kind, got, test.expected)
		}
	}
}

func TestDownloadOptions_IsEmpty(t *testing.T) {
	if !(DownloadOptions{}).IsEmpty() {
		t.Error("zero DownloadOptions should be empty")
	}
	if (DownloadOptions{HDR: Bool(false)}).IsEmpty() {
		t.Error("DownloadOptions with HDR set should not be empty")
	}
}

func TestIsKnownWidth(t *testing.T) {
	for label, width := range ResolutionWidth {
		if !IsKnownWidth(width) {
			t.Errorf("width %s for %s should be known", width, label)
		}
	}
	if IsKnownWidth("1000") {
		t.Error("width 1000 should not be known")
	}
}
