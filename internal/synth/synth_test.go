// SPDX-License-Identifier: MPL-2.0

package synth

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/surfacegen/pkg/catalog"
	"github.com/invowk/surfacegen/pkg/ctype"
	"github.com/invowk/surfacegen/pkg/manifest"
)

func loadHostManifest(t *testing.T) *manifest.Manifest {
	t.Helper()

	m, err := manifest.Parse(filepath.Join("..", "..", "pkg", "manifest", "testdata", "gdnative_api.json"))
	require.NoError(t, err)
	return m
}

func fn(name, ret string, args ...manifest.Argument) manifest.Function {
	return manifest.Function{Name: name, ReturnType: ret, Arguments: args}
}

func arg(cType, name string) manifest.Argument {
	return manifest.Argument{Type: cType, Name: name}
}

func TestBuildHostManifest(t *testing.T) {
	t.Parallel()

	plan, err := Build(loadHostManifest(t), Options{Package: "gdapi", Source: "gdnative_api.json"})
	require.NoError(t, err)

	structs := make([]string, 0, len(plan.Tables))
	for _, table := range plan.Tables {
		structs = append(structs, table.Struct)
	}
	assert.Equal(t, []string{
		"godot_gdnative_core_api_struct",
		"godot_gdnative_core_1_1_api_struct",
		"godot_gdnative_core_1_2_api_struct",
		"godot_gdnative_ext_nativescript_api_struct",
		"godot_gdnative_ext_nativescript_1_1_api_struct",
		"godot_gdnative_ext_android_api_struct",
		"godot_gdnative_ext_net_api_struct",
	}, structs)

	assert.True(t, plan.Tables[0].Head)
	for _, table := range plan.Tables[1:] {
		assert.False(t, table.Head, table.Struct)
	}
	assert.Equal(t, uint32(1), plan.Tables[3].Value)
	assert.Equal(t, "nativescript", plan.Tables[3].Extension)
	assert.Equal(t, "GDNATIVE_API_TYPES_GDNATIVE_EXT_NET", plan.Tables[6].Enumerant)

	require.Len(t, plan.Funcs, 18)
	assert.Len(t, plan.FuncsOf(0), 8)
	assert.Len(t, plan.FuncsOf(1), 2)
	assert.True(t, plan.UsesUnsafe())

	resize := plan.Funcs[9]
	assert.Equal(t, "godot_pool_byte_array_resize", resize.CName)
	assert.Equal(t, "GodotPoolByteArrayResize", resize.Accessor)
	assert.Equal(t, "godotPoolByteArrayResize", resize.Field)
	assert.Equal(t, 1, resize.Table)
	assert.Equal(t, 1, resize.Slot)
	assert.Equal(t, "(self_ *godot_pool_byte_array, count godot_int) godot_error", resize.Signature())
	assert.Equal(t, "self_, count", resize.Args())
	assert.False(t, resize.Params[1].Const, "const is dropped by value")
	assert.True(t, plan.Funcs[1].Params[0].Const, "godot_variant_as_int reads through a const pointer")
	assert.Equal(t, "godot_error godot_pool_byte_array_resize(godot_pool_byte_array *p_self, const godot_int p_count)", resize.CSignature)
}

func TestBuildSignatures(t *testing.T) {
	t.Parallel()

	plan, err := Build(loadHostManifest(t), Options{Package: "gdapi"})
	require.NoError(t, err)

	byName := make(map[string]Func)
	for _, f := range plan.Funcs {
		byName[f.CName] = f
	}

	tests := map[string]string{
		"godot_variant_new_int":                  "(r_dest *godot_variant, i int64)",
		"godot_variant_as_int":                   "(self_ *godot_variant) int64",
		"godot_alloc":                            "(bytes int32) unsafe.Pointer",
		"godot_free":                             "(ptr unsafe.Pointer)",
		"godot_nativescript_set_global_type_tag": "(idx int32, name *byte, type_tag unsafe.Pointer)",
		"godot_android_get_env":                  "() unsafe.Pointer",
		"godot_android_get_activity":             "() unsafe.Pointer",
		"godot_net_bind_stream_peer":             "(obj *godot_object, interface_ *godot_net_stream_peer)",
		"godot_dictionary_merge":                 "(self_ *godot_dictionary, dictionary *godot_dictionary, overwrite godot_bool)",
		"godot_array_operator_index":             "(self_ *godot_array, idx godot_int) *godot_variant",
	}
	for name, want := range tests {
		assert.Equal(t, want, byName[name].Signature(), name)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       manifest.Manifest
		opts    Options
		wantErr error
	}{
		{
			name: "unknown tag",
			m: manifest.Manifest{Primary: manifest.Category{
				Tag: "CORE", Version: manifest.Version{Major: 1},
				Next: &manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1, Minor: 1}},
			}, Extensions: []manifest.Category{{Tag: "NOPE", Version: manifest.Version{Major: 1}}}},
			wantErr: catalog.ErrUnknownCategory,
		},
		{
			name: "unpublished version of unversioned category",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1}},
				Extensions: []manifest.Category{{Tag: "ANDROID", Version: manifest.Version{Major: 2}}}},
			wantErr: catalog.ErrUnknownCategory,
		},
		{
			name: "void argument",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("f", "void", arg("void", "p_x"))}}},
			wantErr: ctype.ErrUnsupportedType,
		},
		{
			name: "by-value JNIEnv result",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("f", "JNIEnv")}}},
			wantErr: ctype.ErrUnsupportedType,
		},
		{
			name: "struct result by value",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("godot_array_get", "godot_variant", arg("const godot_array *", "p_self"))}}},
			wantErr: ctype.ErrUnsupportedType,
		},
		{
			name: "struct argument by value",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("f", "void", arg("godot_instance_create_func", "p_create_func"))}}},
			wantErr: ctype.ErrUnsupportedType,
		},
		{
			name: "multi-word named type",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("f", "void", arg("unsigned int *", "p_x"))}}},
			wantErr: ctype.ErrUnsupportedType,
		},
		{
			name: "triple pointer",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("f", "void", arg("char ***", "p_x"))}}},
			wantErr: ctype.ErrUnsupportedType,
		},
		{
			name: "go name collision",
			m: manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1},
				Functions: []manifest.Function{fn("godot_foo_bar", "void"), fn("godot_fooBar", "void")}}},
			wantErr: manifest.ErrMalformedManifest,
		},
		{
			name:    "bad package",
			m:       manifest.Manifest{Primary: manifest.Category{Tag: "CORE", Version: manifest.Version{Major: 1}}},
			opts:    Options{Package: "not-a-package"},
			wantErr: ErrInvalidPackage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			if opts.Package == "" {
				opts.Package = "surface"
			}
			plan, err := Build(&tt.m, opts)
			assert.Nil(t, plan)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	opts := Options{Package: "gdapi", Source: "testdata/gdnative_api.json", BuildTag: "!nogdapi"}
	plan, err := Build(loadHostManifest(t), opts)
	require.NoError(t, err)

	src, err := Render(plan)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "surface_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "gdapi", file.Name.Name)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by surfacegen from testdata/gdnative_api.json. DO NOT EDIT.\n\n//go:build !nogdapi\n"))
	assert.Contains(t, text, "\"unsafe\"")
	assert.Contains(t, text, "func (s *Surface) GodotPoolByteArrayResize(self_ *godot_pool_byte_array, count godot_int) godot_error {\n\treturn s.godotPoolByteArrayResize(self_, count)\n}")
	assert.Contains(t, text, "func (s *Surface) GodotFree(ptr unsafe.Pointer) {\n\ts.godotFree(ptr)\n}")
	assert.Contains(t, text, "{Table: 6, Index: 0, Name: \"godot_net_bind_stream_peer\"}")
	assert.Contains(t, text, "// godot_gdnative_ext_nativescript_1_1_api_struct (NATIVESCRIPT 1.1, nativescript)")
	assert.Equal(t, 1, strings.Count(text, "Head:"))
	assert.Equal(t, len(plan.Funcs), strings.Count(text, "\t\t&s."))
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	generate := func() []byte {
		plan, err := Build(loadHostManifest(t), Options{Package: "gdapi", Source: "testdata/gdnative_api.json"})
		require.NoError(t, err)
		src, err := Render(plan)
		require.NoError(t, err)
		return src
	}

	first := generate()
	for range 3 {
		assert.True(t, bytes.Equal(first, generate()), "generating twice from the same manifest differs")
	}
}

func TestBuildErrorNamesFunction(t *testing.T) {
	t.Parallel()

	m := &manifest.Manifest{Primary: manifest.Category{
		Tag: "CORE", Version: manifest.Version{Major: 1, Minor: 2},
		Functions: []manifest.Function{
			fn("godot_free", "void", arg("void *", "p_ptr")),
			fn("godot_dictionary_duplicate", "godot_dictionary", arg("const godot_dictionary *", "p_self")),
		},
	}}
	_, err := Build(m, Options{Package: "gdapi"})
	require.ErrorIs(t, err, ctype.ErrUnsupportedType)
	assert.EqualError(t, err,
		`CORE 1.2 godot_dictionary_duplicate: return type: unsupported type "godot_dictionary": struct passed by value`)
}

func TestRenderReservedFieldNames(t *testing.T) {
	t.Parallel()

	m := &manifest.Manifest{Primary: manifest.Category{
		Tag: "CORE", Version: manifest.Version{Major: 1},
		Functions: []manifest.Function{fn("targets", "void"), fn("resolution", "void")},
	}}
	plan, err := Build(m, Options{Package: "mini"})
	require.NoError(t, err)
	assert.Equal(t, "targets_", plan.Funcs[0].Field)
	assert.Equal(t, "resolution_", plan.Funcs[1].Field)
	assert.Equal(t, "Resolution_", plan.Funcs[1].Accessor)

	src, err := Render(plan)
	require.NoError(t, err)
	text := string(src)
	assert.Regexp(t, `\ttargets_\s+func\(\)`, text)
	assert.Contains(t, text, "func (s *Surface) targets() []any {")
	_, err = parser.ParseFile(token.NewFileSet(), "mini.go", src, 0)
	require.NoError(t, err)
}

func TestRenderWithoutUnsafe(t *testing.T) {
	t.Parallel()

	m := &manifest.Manifest{Primary: manifest.Category{
		Tag: "CORE", Version: manifest.Version{Major: 1},
		Functions: []manifest.Function{fn("godot_int_add", "int64_t", arg("int64_t", "p_a"), arg("int64_t", "p_b"))},
	}}
	plan, err := Build(m, Options{Package: "mini"})
	require.NoError(t, err)

	src, err := Render(plan)
	require.NoError(t, err)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by surfacegen. DO NOT EDIT.\n\npackage mini\n"))
	assert.NotContains(t, text, "unsafe")
	assert.Contains(t, text, "func (s *Surface) GodotIntAdd(a int64, b int64) int64 {")
	_, err = parser.ParseFile(token.NewFileSet(), "mini.go", src, 0)
	require.NoError(t, err)
}
