package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/arnavdesai/Go-Grover/internal/grover/quantum"
	"github.com/arnavdesai/Go-Grover/internal/models/grover"
)

// TestStatusForError tests error-to-status mapping, including wrapped errors
func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Session not found", grover.ErrSessionNotFound, http.StatusNotFound},
		{"Session expired", grover.ErrSessionExpired, http.StatusGone},
		{"Session closed", grover.ErrSessionClosed, http.StatusGone},
		{"Wrapped expired", fmt.Errorf("lookup: %w", grover.ErrSessionExpired), http.StatusGone},
		{"Wrapped closed", fmt.Errorf("lookup: %w", grover.ErrSessionClosed), http.StatusGone},
		{"Invalid dimension", quantum.ErrInvalidDimension, http.StatusBadRequest},
		{"Wrapped gate error", fmt.Errorf("grover iteration 0: oracle: %w", quantum.ErrIndexOutOfRange), http.StatusBadRequest},
		{"Validation error", grover.ErrInvalidPattern, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, got)
			}
		})
	}
}
