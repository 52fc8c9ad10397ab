package entity

import "errors"

// Domain errors
var (
	// Model collaborator errors
	ErrModelUnavailable = errors.New("model service unavailable")

	// Reply processing errors
	ErrNoJSONFound = errors.New("no JSON object found in model reply")
	ErrBadStepJSON = errors.New("extracted span is not valid JSON")
	ErrInvalidStep = errors.New("model reply does not match a known step shape")

	// Request errors
	ErrInvalidRole = errors.New("invalid turn role")
)
