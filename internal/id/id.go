package id

import "github.com/google/uuid"

// New returns an opaque unique transaction ID. IDs are generated once at
// creation and never reused.
func New() string {
	return uuid.NewString()
}
