package shared

import "fmt"

// RepositoryError wraps a storage failure with the operation and entity
// it occurred on. Transactions roll back before one is raised, so a
// caller never observes a half-committed aggregate behind it.
type RepositoryError struct {
	Op     string
	Entity string
	Err    error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapStorage builds a RepositoryError around a storage-layer error.
func WrapStorage(op, entity string, err error) error {
	return &RepositoryError{Op: op, Entity: entity, Err: err}
}
