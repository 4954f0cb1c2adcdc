package economy

import (
	"testing"
	"time"
)

func TestRoundUpWaitNeverShowsZero(t *testing.T) {
	if got := roundUpWait(500 * time.Millisecond); got != time.Second {
		t.Errorf("roundUpWait(500ms) = %v, want %v", got, time.Second)
	}
	if got := roundUpWait(0); got != time.Second {
		t.Errorf("roundUpWait(0) = %v, want %v", got, time.Second)
	}
}

func TestRoundUpWaitRoundsUpToSeconds(t *testing.T) {
	if got := roundUpWait(29*time.Second + 200*time.Millisecond); got != 30*time.Second {
		t.Errorf("roundUpWait(29.2s) = %v, want %v", got, 30*time.Second)
	}
	if got := roundUpWait(23*time.Hour + 59*time.Minute + 59*time.Second + time.Millisecond); got != 24*time.Hour {
		t.Errorf("roundUpWait(~24h) = %v, want %v", got, 24*time.Hour)
	}

	// Whole seconds pass through unchanged
	if got := roundUpWait(45 * time.Second); got != 45*time.Second {
		t.Errorf("roundUpWait(45s) = %v, want %v", got, 45*time.Second)
	}
}
