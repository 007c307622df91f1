package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		err := NewValidationError("threads", 0, "must be at least 1")
		expectedMsg := `validation failed for field "threads" (value: 0): must be at least 1`
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
	})

	t.Run("without value", func(t *testing.T) {
		err := NewValidationError("name", nil, "name is required")
		expectedMsg := `validation failed for field "name": name is required`
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
	})

	t.Run("matches invalid config", func(t *testing.T) {
		err := fmt.Errorf("loading benchmark: %w", NewValidationError("iterations", -1, "must not be negative"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Error("expected validation error to match ErrInvalidConfig")
		}

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatal("expected errors.As to find *ValidationError")
		}
		if vErr.Field != "iterations" {
			t.Errorf("expected field iterations, got %q", vErr.Field)
		}
	})
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		invalidConfig bool
		workFailure   bool
		cancelled     bool
	}{
		{
			name:          "invalid config sentinel",
			err:           ErrInvalidConfig,
			invalidConfig: true,
		},
		{
			name:          "validation error",
			err:           NewValidationError("threads", 0, "must be at least 1"),
			invalidConfig: true,
		},
		{
			name:        "wrapped work failure",
			err:         fmt.Errorf("iteration 3: %w", ErrWorkFailed),
			workFailure: true,
		},
		{
			name:      "cancelled",
			err:       ErrCancelled,
			cancelled: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidConfig(tt.err); got != tt.invalidConfig {
				t.Errorf("IsInvalidConfig() = %v, expected %v", got, tt.invalidConfig)
			}
			if got := IsWorkFailure(tt.err); got != tt.workFailure {
				t.Errorf("IsWorkFailure() = %v, expected %v", got, tt.workFailure)
			}
			if got := IsCancelled(tt.err); got != tt.cancelled {
				t.Errorf("IsCancelled() = %v, expected %v", got, tt.cancelled)
			}
		})
	}
}

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "nil error",
			err:      nil,
			contains: "",
		},
		{
			name:     "cancelled error",
			err:      ErrCancelled,
			contains: "cancelled",
		},
		{
			name:     "invalid config",
			err:      NewValidationError("threads", 0, "must be at least 1"),
			contains: "Invalid configuration",
		},
		{
			name:     "work failure keeps original message",
			err:      fmt.Errorf("%w: disk full", ErrWorkFailed),
			contains: "disk full",
		},
		{
			name:     "unknown error",
			err:      errors.New("custom error message"),
			contains: "custom error message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := FriendlyError(tt.err)
			if tt.contains == "" {
				if msg != "" {
					t.Errorf("expected empty string, got %q", msg)
				}
				return
			}

			if !strings.Contains(msg, tt.contains) {
				t.Errorf("expected message to contain %q, got %q", tt.contains, msg)
			}
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap error", func(t *testing.T) {
		wrapped := WrapErrorf(baseErr, "failed to run benchmark %q", "fetch")
		expectedMsg := `failed to run benchmark "fetch": base error`
		if wrapped.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, wrapped.Error())
		}

		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to contain base error")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		wrapped := WrapErrorf(nil, "this should be nil")
		if wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}
