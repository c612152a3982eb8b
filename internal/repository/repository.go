// Package repository defines the store interfaces consumed by the service
// layer, plus their gorm/postgres implementations. Interfaces keep the
// stores swappable; the in-memory fakes under repository/memory implement
// the same contracts for tests.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (duplicate email, duplicate vote).
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps gorm's sentinel errors onto the repository ones so callers
// never depend on the ORM.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
