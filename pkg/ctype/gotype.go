// SPDX-License-Identifier: MPL-2.0

package ctype

import (
	"go/token"
	"strings"
)

var goNames = map[Kind]string{
	Bool:       "bool",
	Uint8:      "uint8",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Int64:      "int64",
	Int:        "int32",
	Double:     "float64",
	Char:       "byte",
	SignedChar: "int8",
	SizeT:      "uintptr",
}

// scalarTypedefs are host typedefs of integer, float or enum types. Any
// other named type at depth 0 is a struct passed by value, which purego
// only marshals on darwin.
var scalarTypedefs = map[string]bool{
	"godot_bool":                 true,
	"godot_int":                  true,
	"godot_real":                 true,
	"godot_error":                true,
	"godot_variant_type":         true,
	"godot_variant_operator":     true,
	"godot_vector3_axis":         true,
	"godot_method_rpc_mode":      true,
	"godot_property_hint":        true,
	"godot_property_usage_flags": true,
}

// GoType spells d as a Go parameter type. Go has no const pointers, so
// const-ness is not part of the spelling.
//
// Untyped targets collapse one pointer level into unsafe.Pointer: "void *"
// becomes unsafe.Pointer and "const void **" becomes *unsafe.Pointer. void
// and JNIEnv have no by-value Go spelling, and neither has a named struct.
func (d Descriptor) GoType() (string, error) {
	switch d.Kind {
	case Unit:
		return "", &UnsupportedTypeError{Raw: d.Raw, Reason: "void is only valid as a return type"}
	case Opaque:
		if d.Depth == 0 {
			return "", &UnsupportedTypeError{Raw: d.Raw, Reason: "opaque type passed by value"}
		}
		return strings.Repeat("*", d.Depth-1) + "unsafe.Pointer", nil
	case OpaquePointer:
		return strings.Repeat("*", d.Depth) + "unsafe.Pointer", nil
	case Named:
		if !token.IsIdentifier(d.Name) {
			return "", &UnsupportedTypeError{Raw: d.Raw, Reason: "not a Go identifier"}
		}
		if d.ByValueStruct() {
			return "", &UnsupportedTypeError{Raw: d.Raw, Reason: "struct passed by value"}
		}
		return strings.Repeat("*", d.Depth) + d.Name, nil
	default:
		return strings.Repeat("*", d.Depth) + goNames[d.Kind], nil
	}
}

// GoResult is GoType for return positions, where the unit type spells as
// the empty string (no result).
func (d Descriptor) GoResult() (string, error) {
	if d.IsUnit() {
		return "", nil
	}
	return d.GoType()
}

// ByValueStruct reports whether d names a struct at depth 0.
func (d Descriptor) ByValueStruct() bool {
	return d.Kind == Named && d.Depth == 0 && !scalarTypedefs[d.Name]
}

// UsesUnsafe reports whether the Go spelling of d refers to unsafe.Pointer.
func (d Descriptor) UsesUnsafe() bool {
	return d.Kind == OpaquePointer || (d.Kind == Opaque && d.Depth > 0)
}
