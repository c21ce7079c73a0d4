package repository

import "errors"

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// DuplicateIDError is returned when a caller-supplied ID collides with an
// existing entry.
type DuplicateIDError struct {
	ID string
}

func (d *DuplicateIDError) Error() string {
	return "entity ID must be unique: " + d.ID
}
