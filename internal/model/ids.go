package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a time-ordered UUIDv7 identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ValidID reports whether id is a well-formed UUID.
func ValidID(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
