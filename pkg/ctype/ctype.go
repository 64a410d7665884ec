// SPDX-License-Identifier: MPL-2.0

package ctype

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// Named is an identifier outside the alias table.
	Named Kind = iota
	// Unit is void at depth 0.
	Unit
	// Opaque is an untyped byte target (void behind a pointer, JNIEnv).
	Opaque
	// OpaquePointer is a foreign-runtime handle that is itself a pointer (jobject).
	OpaquePointer
	// Bool is the C bool.
	Bool
	// Uint8 is uint8_t.
	Uint8
	// Uint32 is uint32_t.
	Uint32
	// Uint64 is uint64_t.
	Uint64
	// Int64 is int64_t.
	Int64
	// Int is the platform C int.
	Int
	// Double is the C double.
	Double
	// Char is the C char.
	Char
	// SignedChar is signed char.
	SignedChar
	// SizeT is size_t.
	SizeT
)

// ErrUnsupportedType is the sentinel wrapped by UnsupportedTypeError.
var ErrUnsupportedType = errors.New("unsupported type")

// cTypePattern splits "const godot_string **" into the const qualifier,
// the base identifier and the pointer markers.
var cTypePattern = regexp.MustCompile(`^\s*(const\s+)?([\w\s]+?)\s*([\s*]*)$`)

var aliases = map[string]Kind{
	"void":        Unit,
	"bool":        Bool,
	"uint8_t":     Uint8,
	"uint32_t":    Uint32,
	"uint64_t":    Uint64,
	"int64_t":     Int64,
	"int":         Int,
	"double":      Double,
	"char":        Char,
	"signed char": SignedChar,
	"size_t":      SizeT,
	"JNIEnv":      Opaque,
	"jobject":     OpaquePointer,
}

type (
	// Kind classifies the resolved base of a Descriptor.
	Kind int

	// Descriptor is the mapped form of a raw C type string.
	Descriptor struct {
		// Raw is the string the descriptor was mapped from.
		Raw string
		// Depth is the pointer depth (0, 1 or 2).
		Depth int
		// Const marks a read-only target. At depth 2 it qualifies the inner pointer.
		Const bool
		// Kind is the resolved base.
		Kind Kind
		// Name is the base identifier as written (collapsed whitespace).
		Name string
	}

	// UnsupportedTypeError is returned for a raw type outside the grammar
	// or for a pointer/const combination that cannot be expressed.
	UnsupportedTypeError struct {
		Raw    string
		Reason string
	}
)

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q: %s", e.Raw, e.Reason)
}

// Unwrap returns ErrUnsupportedType for errors.Is.
func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// Map converts a raw type string into a Descriptor.
//
// Supported shapes are T, const T (const ignored), T*, const T* and
// const T**. Any other pointer/const combination fails with
// *UnsupportedTypeError citing raw.
func Map(raw string) (Descriptor, error) {
	caps := cTypePattern.FindStringSubmatch(raw)
	if caps == nil {
		return Descriptor{}, &UnsupportedTypeError{Raw: raw, Reason: "not a C type"}
	}

	isConst := caps[1] != ""
	base := strings.Join(strings.Fields(caps[2]), " ")
	depth := strings.Count(caps[3], "*")

	switch {
	case depth == 0:
		isConst = false
	case depth == 1:
	case depth == 2 && isConst:
	case depth == 2:
		return Descriptor{}, &UnsupportedTypeError{Raw: raw, Reason: "double pointer must be const-qualified"}
	default:
		return Descriptor{}, &UnsupportedTypeError{Raw: raw, Reason: fmt.Sprintf("pointer depth %d", depth)}
	}

	kind, ok := aliases[base]
	if !ok {
		kind = Named
	}
	if kind == Unit && depth > 0 {
		kind = Opaque
	}

	return Descriptor{Raw: raw, Depth: depth, Const: isConst, Kind: kind, Name: base}, nil
}

// IsUnit reports whether d is the depth-0 void type.
func (d Descriptor) IsUnit() bool {
	return d.Kind == Unit
}

// String renders d in normalized C spelling ("const char *").
func (d Descriptor) String() string {
	var sb strings.Builder
	if d.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(d.Name)
	if d.Depth > 0 {
		sb.WriteString(" " + strings.Repeat("*", d.Depth))
	}
	return sb.String()
}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Named:
		return "named"
	case Unit:
		return "unit"
	case Opaque:
		return "opaque"
	case OpaquePointer:
		return "opaque-pointer"
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Double:
		return "double"
	case Char:
		return "char"
	case SignedChar:
		return "signed-char"
	case SizeT:
		return "size_t"
	default:
		return "unknown"
	}
}
