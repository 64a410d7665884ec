// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
)

// ErrMalformedManifest is the sentinel wrapped by MalformedManifestError.
var ErrMalformedManifest = errors.New("malformed manifest")

// MalformedManifestError reports a manifest that is missing a required field,
// carries a mistyped value or violates a structural rule.
type MalformedManifestError struct {
	// File is the manifest file name.
	File string
	// Field is the JSON path of the offending field, if known.
	Field string
	// Cause describes the problem.
	Cause error
}

// Error implements the error interface.
func (e *MalformedManifestError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed manifest %s: %s: %v", e.File, e.Field, e.Cause)
	}
	return fmt.Sprintf("malformed manifest %s: %v", e.File, e.Cause)
}

// Unwrap exposes both ErrMalformedManifest and the cause to errors.Is.
func (e *MalformedManifestError) Unwrap() []error {
	return []error{ErrMalformedManifest, e.Cause}
}

func malformed(file, field, format string, args ...any) error {
	return &MalformedManifestError{File: file, Field: field, Cause: fmt.Errorf(format, args...)}
}
