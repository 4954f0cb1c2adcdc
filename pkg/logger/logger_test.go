package logger

import (
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDiscordColor(t *testing.T) {
	if got := LevelError.DiscordColor(); got != 0xFF0000 {
		t.Errorf("LevelError.DiscordColor() = %#x, want %#x", got, 0xFF0000)
	}

	if got := LevelSuccess.DiscordColor(); got != 0x00FF00 {
		t.Errorf("LevelSuccess.DiscordColor() = %#x, want %#x", got, 0x00FF00)
	}
}

func TestSubscribe(t *testing.T) {
	l := NewLogger("", "")
	defer l.Close()

	ch := l.Subscribe()
	l.Info("hola suscriptor", "Test")

	select {
	case line := <-ch:
		if !strings.Contains(line, "hola suscriptor") {
			t.Errorf("subscriber line = %q, want it to contain %q", line, "hola suscriptor")
		}
		if !strings.Contains(line, "[INFO]") {
			t.Errorf("subscriber line = %q, want it to contain %q", line, "[INFO]")
		}
	default:
		t.Fatal("subscriber channel received no line")
	}

	l.Unsubscribe(ch)

	// After Unsubscribe the channel is closed and receives nothing new
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after Unsubscribe")
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	l := NewLogger("", "")
	defer l.Close()

	ch := l.Subscribe()
	defer l.Unsubscribe(ch)

	// Fill the buffer past capacity; the logger must skip, not block
	for i := 0; i < 100; i++ {
		l.Debug("burst", "Test")
	}
}
