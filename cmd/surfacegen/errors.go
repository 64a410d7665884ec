// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/invowk/surfacegen/internal/generate"
	"github.com/invowk/surfacegen/internal/issue"
	"github.com/invowk/surfacegen/internal/synth"
	"github.com/invowk/surfacegen/pkg/catalog"
	"github.com/invowk/surfacegen/pkg/ctype"
	"github.com/invowk/surfacegen/pkg/manifest"
	"github.com/invowk/surfacegen/pkg/types"
)

// errStale is returned by generate --check when the output is out of date.
var errStale = errors.New("generated surface is out of date")

// classifyError maps a command failure to its exit code and issue catalog
// entry. The output write check comes first because a missing output
// directory also matches os.ErrNotExist.
func classifyError(err error) (types.ExitCode, issue.Id) {
	switch {
	case errors.Is(err, errStale):
		return types.ExitStale, issue.SurfaceStaleId
	case errors.Is(err, generate.ErrOutputWrite):
		return types.ExitOutputWrite, issue.OutputWriteFailedId
	case errors.Is(err, ctype.ErrUnsupportedType):
		return types.ExitUnsupportedType, issue.UnsupportedTypeId
	case errors.Is(err, catalog.ErrUnknownCategory):
		return types.ExitUnknownCategory, issue.UnknownCategoryId
	case errors.Is(err, manifest.ErrMalformedManifest):
		return types.ExitMalformedManifest, issue.MalformedManifestId
	case errors.Is(err, os.ErrNotExist):
		return types.ExitMalformedManifest, issue.ManifestNotFoundId
	case errors.Is(err, synth.ErrInvalidPackage):
		return types.ExitFailure, issue.InvalidPackageId
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return types.ExitFailure, ae.Issue
	}
	return types.ExitFailure, 0
}

// fail classifies err, prints verbose guidance and returns the ExitError the
// command should return. fang prints the error message itself.
func (a *App) fail(err error) error {
	code, id := classifyError(err)
	a.logger.Debug("command failed", "exit", code, "issue", id)

	if a.verbose {
		var ae *issue.ActionableError
		if errors.As(err, &ae) {
			fmt.Fprintln(a.stderr, ae.Format(true))
		}
		if entry := issue.Get(id); entry != nil {
			rendered, renderErr := entry.Render(a.cfg.Style)
			if renderErr != nil {
				a.logger.Warn("failed to render issue catalog entry", "issue", id, "error", renderErr)
			} else {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	} else if id != 0 {
		fmt.Fprintln(a.stderr, SubtitleStyle.Render("Run with --verbose for guidance."))
	}

	return &ExitError{Code: code, Err: err}
}

// formatErrorForDisplay uses ActionableError.Format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
