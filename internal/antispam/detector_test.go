package antispam

import (
	"testing"
	"time"
)

func TestTrackBelowLimitNeverTriggers(t *testing.T) {
	detector := New(6*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	// Exactly 5 messages in 6 seconds: at the limit, not above it
	for i := 0; i < 5; i++ {
		if detector.Track("user-1", now.Add(time.Duration(i)*time.Second)) {
			t.Fatalf("Track() triggered on message %d of 5", i+1)
		}
	}
}

func TestTrackTriggersOnceAboveLimit(t *testing.T) {
	detector := New(6*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	triggers := 0
	for i := 0; i < 6; i++ {
		if detector.Track("user-1", now.Add(time.Duration(i)*time.Millisecond)) {
			triggers++
		}
	}

	// One burst, one trigger: the window is cleared on detection
	if triggers != 1 {
		t.Errorf("burst of 6 produced %d triggers, want 1", triggers)
	}
}

func TestTrackSlidesTheWindow(t *testing.T) {
	detector := New(6*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	for i := 0; i < 5; i++ {
		detector.Track("user-1", now.Add(time.Duration(i)*time.Second))
	}

	// The earliest message has aged out by now+7s, so this sixth
	// message keeps the in-window count at 5.
	if detector.Track("user-1", now.Add(7*time.Second)) {
		t.Error("Track() counted messages outside the window")
	}
}

func TestTrackIsPerUser(t *testing.T) {
	detector := New(6*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	for i := 0; i < 5; i++ {
		detector.Track("user-1", now)
		detector.Track("user-2", now)
	}

	if detector.Track("user-2", now) != true {
		t.Error("user-2 did not trigger at 6 messages")
	}
	// user-1 is still at 5 and must be unaffected by user-2's burst
	if detector.Track("user-1", now.Add(10*time.Second)) {
		t.Error("user-1 triggered after their burst aged out")
	}
}

func TestForget(t *testing.T) {
	detector := New(6*time.Second, 5)
	now := time.Unix(1_700_000_000, 0)

	for i := 0; i < 5; i++ {
		detector.Track("user-1", now)
	}
	detector.Forget("user-1")

	if detector.Track("user-1", now) {
		t.Error("Track() triggered after Forget()")
	}
}
