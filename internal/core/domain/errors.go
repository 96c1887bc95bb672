package domain

import "errors"

// Not found errors
var (
	ErrFlowNotFound = errors.New("logical flow not found")
)

// Validation errors
var (
	ErrEmptySelector    = errors.New("selector is required")
	ErrMissingCondition = errors.New("condition is required")
	ErrInvalidFlowID    = errors.New("flow id must be positive")
	ErrEmptyRecipients  = errors.New("at least one recipient is required")
)

// Enum parse errors
var (
	ErrInvalidEntityKind      = errors.New("invalid entity kind")
	ErrInvalidLifecycleStatus = errors.New("invalid entity lifecycle status")
	ErrInvalidFlowDirection   = errors.New("invalid flow direction")
	ErrInvalidRating          = errors.New("invalid authoritativeness rating")
)
