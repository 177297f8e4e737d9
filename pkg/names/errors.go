package names

import "fmt"

// ValidationError is returned when a submitted value breaks the name rules
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid name: %s", e.Reason)
}

// StorageError wraps a failure of the backing store
type StorageError struct {
	Op  string // Store operation that failed (save, list, ping, count)
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err for the given store operation. A nil err stays nil
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
