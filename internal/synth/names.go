// SPDX-License-Identifier: MPL-2.0

package synth

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
)

// receiverName is the receiver of every generated accessor.
const receiverName = "s"

// resolutionField holds the *foreign.Resolution inside Surface.
const resolutionField = "resolution"

// targetsMethod lists the Surface fields in slot order.
const targetsMethod = "targets"

// predeclared lists the universe-scope identifiers a parameter must not shadow.
var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true,
	"complex64": true, "complex128": true, "error": true,
	"float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"true": true, "false": true, "iota": true, "nil": true,
	"append": true, "cap": true, "clear": true, "close": true, "complex": true,
	"copy": true, "delete": true, "imag": true, "len": true, "make": true,
	"max": true, "min": true, "new": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true,
}

// reservedParams are names the generated file itself uses.
var reservedParams = map[string]bool{
	"self":       true,
	receiverName: true,
	"unsafe":     true,
	"foreign":    true,
	"_":          true,
}

// exportedName converts a C function name to exported CamelCase:
// godot_variant_new_int becomes GodotVariantNewInt.
func exportedName(cName string) string {
	var b strings.Builder
	for _, part := range strings.Split(cName, "_") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// fieldName is the lowerCamel form of exportedName.
func fieldName(cName string) string {
	exported := exportedName(cName)
	if exported == "" {
		return ""
	}
	r := []rune(exported)
	r[0] = unicode.ToLower(r[0])
	name := string(r)
	if token.IsKeyword(name) || name == resolutionField || name == targetsMethod {
		name += "_"
	}
	return name
}

// paramNamer assigns Go parameter names within one signature.
type paramNamer struct {
	used map[string]bool
}

func newParamNamer() *paramNamer {
	return &paramNamer{used: make(map[string]bool)}
}

// name derives the Go name of the i-th argument. The host's p_ prefix is
// stripped; names that would shadow a keyword, a predeclared identifier or
// something the generated file refers to get a trailing underscore, as do
// repeats within the signature. An empty name becomes argN.
func (n *paramNamer) name(raw string, i int) string {
	name := sanitize(strings.TrimPrefix(raw, "p_"))
	if name == "" {
		name = fmt.Sprintf("arg%d", i)
	}
	if token.IsKeyword(name) || predeclared[name] || reservedParams[name] {
		name += "_"
	}
	for n.used[name] {
		name += "_"
	}
	n.used[name] = true
	return name
}

// sanitize replaces characters that cannot appear in a Go identifier.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
