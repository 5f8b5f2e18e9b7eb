package utils

import (
	"github.com/google/uuid"
)

// RequestID returns a new unique identifier for tagging an incoming request
func RequestID() string {
	return uuid.New().String()
}
