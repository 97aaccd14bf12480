package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrSchema        = errors.New("schema error")
	ErrDecode        = errors.New("decode error")
	ErrStore         = errors.New("store error")
)

// SchemaError reports a failure to apply the bootstrap DDL.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("apply schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// DecodeError reports an input line that is not a well-shaped JSON record.
// Raw holds the offending line verbatim.
type DecodeError struct {
	Line int
	Raw  string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// StoreError reports a failed write of one record. The record's transaction
// has been rolled back when this error is returned.
type StoreError struct {
	Line int
	Word string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("write line %d (word %q): %v", e.Line, e.Word, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }
