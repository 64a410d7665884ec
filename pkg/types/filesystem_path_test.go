// SPDX-License-Identifier: MPL-2.0

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemPathValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path FilesystemPath
		want bool
	}{
		{"absolute path", "/usr/share/gdnative_api.json", true},
		{"relative path", "gdnative_api.json", true},
		{"windows style", `C:\godot\gdnative_api.json`, true},
		{"dot path", ".", true},
		{"empty is invalid", "", false},
		{"whitespace only is invalid", "   ", false},
		{"nul is invalid", "api\x00.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.path.Validate()
			if tt.want {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidFilesystemPath)
			var fpErr *InvalidFilesystemPathError
			assert.ErrorAs(t, err, &fpErr)
		})
	}
}

func TestFilesystemPathValidateExt(t *testing.T) {
	t.Parallel()

	assert.NoError(t, FilesystemPath("gen/surface_gen.go").ValidateExt(".go"))

	err := FilesystemPath("gen/surface_gen.txt").ValidateExt(".go")
	require.ErrorIs(t, err, ErrInvalidFilesystemPath)
	assert.EqualError(t, err, `invalid filesystem path "gen/surface_gen.txt": must end in .go`)

	assert.ErrorIs(t, FilesystemPath("").ValidateExt(".go"), ErrInvalidFilesystemPath)
}
