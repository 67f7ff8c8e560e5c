package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryError(t *testing.T) {
	err := NewEntryError("abc", 0)

	assert.Equal(t, `[INVALID_INPUT] entry "abc" (parsed as 0): term count must be positive`, err.Error())
	assert.ErrorIs(t, err, ErrNotPositive)
	assert.Equal(t, "Error, invalid entry.", GetUserFriendlyError(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitInvalidEntry, ExitCode(NewEntryError("-5", -5)))
	assert.Equal(t, ExitInvalidEntry, ExitCode(fmt.Errorf("parse: %w", NewEntryError("0", 0))))
	assert.Equal(t, ExitOK, ExitCode(errors.New("write failed")))
}

func TestGetUserFriendlyError_Other(t *testing.T) {
	assert.Equal(t, "Error: boom", GetUserFriendlyError(errors.New("boom")))
}
