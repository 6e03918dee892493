package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID generates a UUID v4 request id
func NewRequestID() string {
	return uuid.New().String()
}

// RequestIDOrNew returns id when it is a valid UUID, otherwise a fresh one
func RequestIDOrNew(id string) string {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err == nil {
		return id
	}
	return NewRequestID()
}
