// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is a path given on the command line or in configuration.
	// A valid path is non-empty, not whitespace-only and free of NUL bytes.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath is invalid.
	InvalidFilesystemPathError struct {
		Value  FilesystemPath
		Reason string
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Validate returns an InvalidFilesystemPathError when p is unusable.
func (p FilesystemPath) Validate() error {
	switch {
	case strings.TrimSpace(string(p)) == "":
		return &InvalidFilesystemPathError{Value: p, Reason: "must be non-empty"}
	case strings.ContainsRune(string(p), 0):
		return &InvalidFilesystemPathError{Value: p, Reason: "must not contain NUL"}
	}
	return nil
}

// ValidateExt validates p and additionally requires the given extension,
// compared case-sensitively.
func (p FilesystemPath) ValidateExt(ext string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if filepath.Ext(string(p)) != ext {
		return &InvalidFilesystemPathError{Value: p, Reason: "must end in " + ext}
	}
	return nil
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
