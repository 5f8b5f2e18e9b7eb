package weberrors

import "errors"

// Backend response errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSessionInvalid  = errors.New("session not recognized")
)

// Client-side validation errors, surfaced before any network call
var (
	ErrInvalidAmount     = errors.New("enter a valid amount")
	ErrNameLength        = errors.New("name must be between 3 and 60 characters")
	ErrDescriptionLength = errors.New("description must be between 3 and 600 characters")
	ErrInvalidDuration   = errors.New("choose a valid auction duration")
	ErrMissingField      = errors.New("all fields are required")
)
