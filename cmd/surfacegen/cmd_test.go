// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/surfacegen/internal/config"
	"github.com/invowk/surfacegen/internal/issue"
	"github.com/invowk/surfacegen/pkg/types"
)

const hostManifest = "../../pkg/manifest/testdata/gdnative_api.json"

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// newTestApp returns an App whose config lookup is confined to temp dirs.
func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := NewApp(&stdout, &stderr)
	app.loadOpts = config.LoadOptions{ConfigDirPath: t.TempDir(), WorkDir: t.TempDir()}
	return app, &stdout, &stderr
}

func runCLI(t *testing.T, app *App, stdout, stderr *bytes.Buffer, args ...string) cliResult {
	t.Helper()
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.ExecuteContext(t.Context())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func run(t *testing.T, args ...string) cliResult {
	t.Helper()
	app, stdout, stderr := newTestApp(t)
	return runCLI(t, app, stdout, stderr, args...)
}

func requireExit(t *testing.T, err error, want types.ExitCode) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %T: %v", err, err)
	assert.Equal(t, want, exitErr.Code, "error: %v", exitErr.Err)
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "v1.2.3", "abc1234", "2026-06-15T10:00:00Z"
	assert.Equal(t, "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)", getVersionString())

	Version = "dev"
	assert.Equal(t, "dev (built from source)", getVersionString())
}

func TestGenerateWritesAndChecks(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "surface_gen.go")

	res := run(t, "generate", "-m", hostManifest, "-o", out, "-p", "gdapi")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "wrote")
	assert.Contains(t, res.stdout, "7 tables, 18 functions")

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package gdapi")

	res = run(t, "generate", "-m", hostManifest, "-o", out, "-p", "gdapi")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "up to date")

	res = run(t, "generate", "--check", "-m", hostManifest, "-o", out, "-p", "gdapi")
	require.NoError(t, res.err)

	require.NoError(t, os.WriteFile(out, append(src, "// edited\n"...), 0o644))
	res = run(t, "generate", "--check", "-m", hostManifest, "-o", out, "-p", "gdapi")
	requireExit(t, res.err, types.ExitStale)

	edited, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(edited), "// edited", "--check must not rewrite the output")
}

func TestGenerateUsesConfig(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(t)
	manifestPath, err := filepath.Abs(hostManifest)
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "api_gen.go")

	cfg := config.DefaultConfig()
	cfg.Manifest = manifestPath
	cfg.Output = out
	cfg.Package = "fromconfig"
	cfg.BuildTag = "linux"
	require.NoError(t, os.WriteFile(
		filepath.Join(app.loadOpts.ConfigDirPath, config.ConfigFileName),
		[]byte(config.GenerateCUE(cfg)), 0o644))

	res := runCLI(t, app, stdout, stderr, "generate", "--package", "fromflag")
	require.NoError(t, res.err, res.stderr)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package fromflag", "flags override config")
	assert.Contains(t, string(src), "//go:build linux")
}

func TestGenerateFailures(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	tests := []struct {
		name     string
		manifest string
		output   string
		pkg      string
		want     types.ExitCode
	}{
		{
			name:     "missing manifest",
			manifest: filepath.Join(tmp, "nope.json"),
			output:   filepath.Join(tmp, "a.go"),
			want:     types.ExitMalformedManifest,
		},
		{
			name:     "malformed manifest",
			manifest: writeManifest(t, `{"extensions": []}`),
			output:   filepath.Join(tmp, "b.go"),
			want:     types.ExitMalformedManifest,
		},
		{
			name: "unsupported type",
			manifest: writeManifest(t, `{"core": {"type": "CORE", "version": {"major": 1, "minor": 0},
				"api": [{"name": "godot_f", "return_type": "void", "arguments": [["int ***", "p_x"]]}]},
				"extensions": []}`),
			output: filepath.Join(tmp, "c.go"),
			want:   types.ExitUnsupportedType,
		},
		{
			name: "unknown category",
			manifest: writeManifest(t, `{"core": {"type": "CORE", "version": {"major": 1, "minor": 0}, "api": []},
				"extensions": [{"type": "TELEPORT", "version": {"major": 1, "minor": 0}, "api": []}]}`),
			output: filepath.Join(tmp, "d.go"),
			want:   types.ExitUnknownCategory,
		},
		{
			name:     "missing output directory",
			manifest: hostManifest,
			output:   filepath.Join(tmp, "missing", "e.go"),
			want:     types.ExitOutputWrite,
		},
		{
			name:     "output is not a go file",
			manifest: hostManifest,
			output:   filepath.Join(tmp, "f.txt"),
			want:     types.ExitFailure,
		},
		{
			name:     "invalid package",
			manifest: hostManifest,
			output:   filepath.Join(tmp, "g.go"),
			pkg:      "not-a-package",
			want:     types.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := []string{"generate", "-m", tt.manifest, "-o", tt.output}
			if tt.pkg != "" {
				args = append(args, "-p", tt.pkg)
			}
			res := run(t, args...)
			requireExit(t, res.err, tt.want)
			assert.NoFileExists(t, tt.output)
		})
	}
}

func TestGenerateVerboseGuidance(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(app.loadOpts.ConfigDirPath, config.ConfigFileName),
		[]byte(`style: "notty"`), 0o644))
	manifestPath := writeManifest(t, `{"extensions": []}`)

	res := runCLI(t, app, stdout, stderr, "--verbose", "generate", "-m", manifestPath, "-o", filepath.Join(t.TempDir(), "x.go"))
	requireExit(t, res.err, types.ExitMalformedManifest)
	assert.Contains(t, res.stderr, "manifest")
}

func TestCheckListsTables(t *testing.T) {
	t.Parallel()

	res := run(t, "check", hostManifest)
	require.NoError(t, res.err, res.stderr)

	for _, want := range []string{
		"godot_gdnative_core_api_struct",
		"godot_gdnative_core_1_1_api_struct",
		"godot_gdnative_ext_nativescript_1_1_api_struct",
		"NATIVESCRIPT (nativescript)",
		"GDNATIVE_API_TYPES_GDNATIVE_EXT_NET, 1 functions",
		"7 tables, 18 functions",
	} {
		assert.Contains(t, res.stdout, want)
	}
	assert.NotContains(t, res.stdout, "Functions")
}

func TestCheckVerboseListsFunctions(t *testing.T) {
	t.Parallel()

	res := run(t, "-v", "check", hostManifest)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "godot_net_bind_stream_peer")
	assert.Contains(t, res.stdout, "JNIEnv *godot_android_get_env()")
}

func TestCheckUnknownCategory(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `{"core": {"type": "CORE", "version": {"major": 1, "minor": 0}, "api": []},
		"extensions": [{"type": "ARVR", "version": {"major": 9, "minor": 9}, "api": []}]}`)
	res := run(t, "check", path)
	requireExit(t, res.err, types.ExitUnknownCategory)
}

func TestMaptype(t *testing.T) {
	t.Parallel()

	res := run(t, "maptype", "const godot_string *", "void *", "void")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "param:  *godot_string")
	assert.Contains(t, res.stdout, "param:  unsafe.Pointer")
	assert.Contains(t, res.stdout, "result: (none)")

	res = run(t, "maptype", "int ***")
	requireExit(t, res.err, types.ExitUnsupportedType)
}

func TestConfigShowAndInit(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(t)
	res := runCLI(t, app, stdout, stderr, "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "(using defaults)")
	assert.Contains(t, res.stdout, "surface_gen.go")

	stdout.Reset()
	res = runCLI(t, app, stdout, stderr, "config", "init")
	require.NoError(t, res.err)
	path := filepath.Join(app.loadOpts.ConfigDirPath, config.ConfigFileName)
	assert.FileExists(t, path)

	stdout.Reset()
	res = runCLI(t, app, stdout, stderr, "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, path)
}

func TestConfigInitReportsOperation(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	app.loadOpts.ConfigDirPath = blocker

	res := runCLI(t, app, stdout, stderr, "--verbose", "config", "init")
	requireExit(t, res.err, types.ExitFailure)
	require.ErrorContains(t, res.err, "failed to write configuration: failed to create config directory")

	var ae *issue.ActionableError
	require.ErrorAs(t, res.err, &ae)
	assert.Equal(t, "write configuration", ae.Operation)
	assert.Contains(t, res.stderr, "Error chain:")
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(app.loadOpts.ConfigDirPath, config.ConfigFileName),
		[]byte(`log_level: "loud"`), 0o644))

	res := runCLI(t, app, stdout, stderr, "config", "dump")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Warning")
	assert.Equal(t, config.GenerateCUE(config.DefaultConfig()), res.stdout)
}
