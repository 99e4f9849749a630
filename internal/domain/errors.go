package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrUnknownTaskType    = errors.New("unknown task type")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrUnknownSubject     = errors.New("unknown subject")
	ErrInvalidClarity     = errors.New("clarity must be between 1 and 5")
	ErrInvalidHours       = errors.New("hours must be positive and at most 24")
	ErrInvalidTotalPoints = errors.New("total points must be positive")
	ErrNegativeScore      = errors.New("score cannot be negative")
	ErrNotInitialized     = errors.New("store not initialized")
	ErrBrieferUnavailable = errors.New("briefing service unavailable")
)
