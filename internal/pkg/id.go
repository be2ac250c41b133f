package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random session identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
