// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/invowk/surfacegen/internal/synth"
	"github.com/invowk/surfacegen/pkg/manifest"
)

// ErrOutputWrite is the sentinel wrapped by OutputWriteError.
var ErrOutputWrite = errors.New("output write failed")

type (
	// Request describes one generation.
	Request struct {
		// ManifestPath is the manifest to read.
		ManifestPath string
		// OutputPath is the Go file to write.
		OutputPath string
		// Package is the package clause of the output.
		Package string
		// BuildTag optionally constrains the output file.
		BuildTag string
	}

	// Result summarizes a finished generation.
	Result struct {
		OutputPath string
		Tables     int
		Functions  int
		Bytes      int
		// Unchanged is true when the output already held the same bytes
		// and was left untouched.
		Unchanged bool
	}

	// OutputWriteError reports a failure to replace the output file.
	OutputWriteError struct {
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap exposes ErrOutputWrite and the underlying error.
func (e *OutputWriteError) Unwrap() []error {
	return []error{ErrOutputWrite, e.Err}
}

// Run generates the surface described by req.
func Run(ctx context.Context, req Request, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	plan, src, err := Render(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Debug("rendered surface", "tables", len(plan.Tables), "functions", len(plan.Funcs), "bytes", len(src))

	res := &Result{
		OutputPath: req.OutputPath,
		Tables:     len(plan.Tables),
		Functions:  len(plan.Funcs),
		Bytes:      len(src),
	}
	if existing, readErr := os.ReadFile(req.OutputPath); readErr == nil && bytes.Equal(existing, src) {
		logger.Info("surface up to date", "output", req.OutputPath)
		res.Unchanged = true
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeFileAtomic(req.OutputPath, src); err != nil {
		return nil, &OutputWriteError{Path: req.OutputPath, Err: err}
	}
	logger.Info("wrote surface", "output", req.OutputPath, "functions", res.Functions)
	return res, nil
}

// Render parses the manifest and renders the surface without touching the
// output file.
func Render(ctx context.Context, req Request) (*synth.Plan, []byte, error) {
	plan, err := buildPlan(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	src, err := synth.Render(plan)
	if err != nil {
		return nil, nil, err
	}
	return plan, src, nil
}

// Check parses the manifest at path and plans its surface. It reports every
// generation-time error Run would, without rendering or writing.
func Check(ctx context.Context, path string) (*synth.Plan, error) {
	return buildPlan(ctx, Request{ManifestPath: path, Package: "surface"})
}

// Stale reports whether the output of req differs from what Run would write.
func Stale(ctx context.Context, req Request) (bool, error) {
	_, src, err := Render(ctx, req)
	if err != nil {
		return false, err
	}
	existing, err := os.ReadFile(req.OutputPath)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", req.OutputPath, err)
	}
	return !bytes.Equal(existing, src), nil
}

func buildPlan(ctx context.Context, req Request) (*synth.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := manifest.Parse(req.ManifestPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return synth.Build(m, synth.Options{
		Package:  req.Package,
		Source:   sourceName(req.ManifestPath, req.OutputPath),
		BuildTag: req.BuildTag,
	})
}

// sourceName is the manifest path as seen from the output's directory, so
// the generated header does not depend on the working directory.
func sourceName(manifestPath, outputPath string) string {
	if outputPath == "" {
		return filepath.ToSlash(filepath.Base(manifestPath))
	}
	absManifest, err1 := filepath.Abs(manifestPath)
	absOutDir, err2 := filepath.Abs(filepath.Dir(outputPath))
	if err1 != nil || err2 != nil {
		return filepath.ToSlash(filepath.Base(manifestPath))
	}
	rel, err := filepath.Rel(absOutDir, absManifest)
	if err != nil {
		return filepath.ToSlash(filepath.Base(manifestPath))
	}
	return filepath.ToSlash(rel)
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place. The temp file is removed on every failure path.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".surfacegen-*.go.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
