package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestGetType(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"validation", Validation("bad"), ErrorTypeValidation},
		{"wrapped validation", fmt.Errorf("outer: %w", WrapValidation("bad", base)), ErrorTypeValidation},
		{"not found", NotFoundf("bookmark %d", 3), ErrorTypeNotFound},
		{"conflict", Conflictf("dup"), ErrorTypeConflict},
		{"forbidden", Forbidden("no"), ErrorTypeForbidden},
		{"internal", WrapInternal("db", base), ErrorTypeInternal},
		{"cancelled", WrapInternal("scan", context.Canceled), ErrorTypeCancelled},
		{"deadline", WrapInternal("scan", fmt.Errorf("x: %w", context.DeadlineExceeded)), ErrorTypeCancelled},
		{"plain error", base, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetType(tt.err); got != tt.want {
				t.Errorf("GetType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	base := errors.New("connection refused")
	err := WrapExternal("redis unavailable", base)

	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base")
	}
	if got, want := err.Error(), "redis unavailable: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !IsType(err, ErrorTypeExternal) || IsType(err, ErrorTypeInternal) {
		t.Error("IsType mismatch")
	}
}
