package mcstatus

import (
	"testing"
	"time"
)

func TestPingRejectsEmptyHost(t *testing.T) {
	client := New(time.Second)

	if _, err := client.Ping("", DefaultPort); err == nil {
		t.Error("Ping() accepted an empty host")
	}
}

func TestPingRejectsBadPort(t *testing.T) {
	client := New(time.Second)

	for _, port := range []int{0, -1, 70000} {
		if _, err := client.Ping("mc.example.com", port); err == nil {
			t.Errorf("Ping() accepted port %d", port)
		}
	}
}

func TestPingUnreachableServerReportsOffline(t *testing.T) {
	client := New(200 * time.Millisecond)

	// Reserved TEST-NET address, guaranteed unreachable
	status, err := client.Ping("192.0.2.1", DefaultPort)
	if err != nil {
		t.Fatalf("Ping() returned error: %v", err)
	}
	if status.Online {
		t.Error("unreachable server reported as online")
	}
}
