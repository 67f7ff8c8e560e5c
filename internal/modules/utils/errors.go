package utils

import (
	"errors"
	"fmt"
)

// Exit codes returned by the command line front end.
const (
	ExitOK           = 0
	ExitInvalidEntry = -1
)

// Common error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// EntryError describes a rejected command line entry.
type EntryError struct {
	Arg  string
	N    int64
	Code string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("[%s] entry %q (parsed as %d): %v", e.Code, e.Arg, e.N, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// ErrNotPositive is the cause of every InvalidEntry.
var ErrNotPositive = errors.New("term count must be positive")

// NewEntryError creates an InvalidEntry error for arg.
func NewEntryError(arg string, n int64) *EntryError {
	return &EntryError{
		Arg:  arg,
		N:    n,
		Code: ErrCodeInvalidInput,
		Err:  ErrNotPositive,
	}
}

// ExitCode maps an error from the front end to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var entryErr *EntryError
	if errors.As(err, &entryErr) && entryErr.Code == ErrCodeInvalidInput {
		return ExitInvalidEntry
	}
	return ExitOK
}

// GetUserFriendlyError converts an error to the line printed for the user.
func GetUserFriendlyError(err error) string {
	var entryErr *EntryError
	if errors.As(err, &entryErr) && entryErr.Code == ErrCodeInvalidInput {
		return "Error, invalid entry."
	}
	return fmt.Sprintf("Error: %v", err)
}
