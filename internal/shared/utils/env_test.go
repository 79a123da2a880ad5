package utils

import (
	"testing"
	"time"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("STARFIELD_TEST_INT", "42")
	t.Setenv("STARFIELD_TEST_BAD_INT", "forty")
	t.Setenv("STARFIELD_TEST_BOOL", "true")
	t.Setenv("STARFIELD_TEST_DURATION", "90s")
	t.Setenv("STARFIELD_TEST_EMPTY", "")

	if got := GetEnv("STARFIELD_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv empty = %q", got)
	}
	if got := GetEnvInt("STARFIELD_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("STARFIELD_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt bad = %d", got)
	}
	if got := GetEnvBool("STARFIELD_TEST_BOOL", false); !got {
		t.Error("GetEnvBool = false")
	}
	if got := GetEnvDuration("STARFIELD_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v", got)
	}
	if got := GetEnvDuration("STARFIELD_TEST_MISSING", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration fallback = %v", got)
	}
}
