package pkguid

import "github.com/google/uuid"

// UUID generates RFC 9562 UUID strings. Version 7 is preferred so IDs sort by
// creation time in logs; version 4 is used if the clock source fails.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
