package history

import (
	"context"
	"errors"
	"fmt"
)

// ErrRecordNotFound is an error when no record exists for an id
var ErrRecordNotFound = errors.New("hand history not found")

// ErrPersistenceUnavailable is an error when a finished hand could not be handed off to the store
// The hand itself is settled; saving can be retried.
var ErrPersistenceUnavailable = errors.New("hand history could not be saved")

// PersistError is an error when the store refused a record
// It matches ErrPersistenceUnavailable with errors.Is and unwraps to the store's error.
type PersistError struct {
	Err error
}

func (p *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPersistenceUnavailable, p.Err)
}

// Unwrap returns the store's error
func (p *PersistError) Unwrap() error {
	return p.Err
}

// Is reports whether target is ErrPersistenceUnavailable
func (p *PersistError) Is(target error) bool {
	return target == ErrPersistenceUnavailable
}

// Store keeps hand history records
type Store interface {
	// Save inserts or replaces the record with the same id
	Save(ctx context.Context, r *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	// ListAll returns every record in the order it was first saved
	ListAll(ctx context.Context) ([]*Record, error)
	// Clear removes every record and returns how many were removed
	Clear(ctx context.Context) (int64, error)
}
