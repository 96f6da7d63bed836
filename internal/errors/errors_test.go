//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrPermission, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "Package name must be in format: com.example.myapp",
		Location: "/home/dev/.droidcraft/config.yaml",
		Field:    "packageName",
		Context:  map[string]string{"Preset": "xml", "Dialect": "groovy"},
		Hint:     "Use lowercase segments separated by dots",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /home/dev/.droidcraft/config.yaml")
	assert.Contains(t, output, "Field: packageName")
	assert.Contains(t, output, "Preset: xml")
	assert.Contains(t, output, "Package name must be in format: com.example.myapp")
	assert.Contains(t, output, "Hint: Use lowercase segments separated by dots")
	assert.Less(t, strings.Index(output, "Dialect"), strings.Index(output, "Preset"), "context keys are sorted")
}

func TestDetailErrorMultilineMessageIsIndented(t *testing.T) {
	detail := &DetailError{Type: "validation failed", Message: "first\nsecond"}
	assert.Contains(t, detail.Error(), "\n  first\n  second\n")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"Minimum SDK version must be at least 16",
		"",
		"minSdkVersion",
		"Pass --min-sdk with a value between 16 and 34",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "Minimum SDK version must be at least 16", detail.Message)
	assert.Equal(t, "minSdkVersion", detail.Field)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("preset \"tiny\" not found", "", "valid presets: default")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "Hint: valid presets: default")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil error returns success", err: nil, wantCode: ExitSuccess},
		{name: "validation error", err: ErrValidation, wantCode: ExitValidationError},
		{name: "wrapped validation error", err: fmt.Errorf("bad config: %w", ErrValidation), wantCode: ExitValidationError},
		{name: "permission error", err: ErrPermission, wantCode: ExitPermissionDenied},
		{name: "fs permission error", err: fmt.Errorf("writing: %w", fs.ErrPermission), wantCode: ExitPermissionDenied},
		{name: "not found error", err: ErrNotFound, wantCode: ExitNotFound},
		{name: "fs not exist error", err: fmt.Errorf("reading: %w", fs.ErrNotExist), wantCode: ExitNotFound},
		{name: "explicit exit error", err: NewExitError(errors.New("boom"), ExitNotFound), wantCode: ExitNotFound},
		{name: "unknown error returns general error", err: errors.New("unknown error"), wantCode: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorWrapsCause(t *testing.T) {
	err := &ExitError{Err: ErrValidation, Code: ExitValidationError, Printed: true}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation error", err.Error())
	assert.Equal(t, "Not Found", (&ExitError{Code: ExitNotFound}).Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
