// Package utils provides general-purpose helpers used across the
// application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces record IDs. IDs are UUIDv7, so records created one
// after another also sort in creation order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, or a random UUIDv4 if the clock-based
// variant cannot be produced.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
