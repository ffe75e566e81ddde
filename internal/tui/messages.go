package tui

import (
	"github.com/eriiiic/Retirement/internal/domain"
)

// Message types for the Bubble Tea update cycle.

// ProjectionCompleteMsg signals a projection run has finished.
type ProjectionCompleteMsg struct {
	Report *domain.ProjectionReport
	Err    error
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}
