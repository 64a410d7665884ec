// SPDX-License-Identifier: MPL-2.0

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cName    string
		exported string
		field    string
	}{
		{"godot_variant_new_int", "GodotVariantNewInt", "godotVariantNewInt"},
		{"godot_alloc", "GodotAlloc", "godotAlloc"},
		{"_leading__double_", "LeadingDouble", "leadingDouble"},
		{"type", "Type", "type_"},
		{"resolution", "Resolution", "resolution_"},
		{"targets", "Targets", "targets_"},
		{"vec3_add", "Vec3Add", "vec3Add"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exported, exportedName(tt.cName), "exportedName(%q)", tt.cName)
		assert.Equal(t, tt.field, fieldName(tt.cName), "fieldName(%q)", tt.cName)
	}
}

func TestParamNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"self is reserved", []string{"p_self"}, []string{"self_"}},
		{"prefix stripped", []string{"p_count"}, []string{"count"}},
		{"non-prefixed kept", []string{"r_dest", "p_i"}, []string{"r_dest", "i"}},
		{"keyword", []string{"p_interface", "p_type"}, []string{"interface_", "type_"}},
		{"predeclared", []string{"p_len", "p_string"}, []string{"len_", "string_"}},
		{"receiver and packages", []string{"s", "p_unsafe", "foreign"}, []string{"s_", "unsafe_", "foreign_"}},
		{"empty", []string{"", "p_"}, []string{"arg0", "arg1"}},
		{"duplicates", []string{"p_x", "x", "p_x"}, []string{"x", "x_", "x__"}},
		{"reserved then duplicate", []string{"p_self", "self_"}, []string{"self_", "self__"}},
		{"sanitized", []string{"p_2d", "p_a-b"}, []string{"_2d", "a_b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			namer := newParamNamer()
			got := make([]string, len(tt.raw))
			for i, raw := range tt.raw {
				got[i] = namer.name(raw, i)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCDecl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cType, name, want string
	}{
		{"godot_variant *", "r_dest", "godot_variant *r_dest"},
		{"JNIEnv*", "godot_android_get_env", "JNIEnv *godot_android_get_env"},
		{"const  void * *", "p_args", "const void **p_args"},
		{"const int64_t", "p_i", "const int64_t p_i"},
		{"void", "", "void"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cDecl(tt.cType, tt.name), "cDecl(%q, %q)", tt.cType, tt.name)
	}
}
