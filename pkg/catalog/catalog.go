// SPDX-License-Identifier: MPL-2.0

// Package catalog holds the fixed mapping between API category tags, the
// host's api-type enumerants and the C struct names of each published
// revision.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is the sentinel wrapped by UnknownCategoryError.
var ErrUnknownCategory = errors.New("unknown category")

type (
	// Entry describes one category tag.
	Entry struct {
		// Tag is the manifest tag ("CORE", "NATIVESCRIPT", ...).
		Tag string
		// Enumerant is the host's GDNATIVE_API_TYPES constant name.
		Enumerant string
		// Value is the enumerant's numeric value as stored in api structs.
		Value uint32
		// Prefix is the struct-name stem, e.g. "godot_gdnative_ext_nativescript".
		Prefix string
		// Versioned reports whether revisions other than Published get
		// "<prefix>_<major>_<minor>_api_struct" names.
		Versioned bool
		// Published is the version whose struct carries the bare name.
		Published [2]uint32
	}

	// UnknownCategoryError is returned for a tag or tag/version pair missing
	// from the catalog.
	UnknownCategoryError struct {
		Tag   string
		Major uint32
		Minor uint32
		// HasVersion is false when only the tag was looked up.
		HasVersion bool
	}
)

// entries is ordered by enumerant value.
var entries = []Entry{
	{Tag: "CORE", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_CORE", Value: 0, Prefix: "godot_gdnative_core", Versioned: true, Published: [2]uint32{1, 0}},
	{Tag: "NATIVESCRIPT", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_EXT_NATIVESCRIPT", Value: 1, Prefix: "godot_gdnative_ext_nativescript", Versioned: true, Published: [2]uint32{1, 0}},
	{Tag: "PLUGINSCRIPT", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_EXT_PLUGINSCRIPT", Value: 2, Prefix: "godot_gdnative_ext_pluginscript", Published: [2]uint32{1, 0}},
	{Tag: "ANDROID", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_EXT_ANDROID", Value: 3, Prefix: "godot_gdnative_ext_android", Published: [2]uint32{1, 0}},
	{Tag: "ARVR", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_EXT_ARVR", Value: 4, Prefix: "godot_gdnative_ext_arvr", Published: [2]uint32{1, 1}},
	{Tag: "VIDEODECODER", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_EXT_VIDEODECODER", Value: 5, Prefix: "godot_gdnative_ext_videodecoder", Published: [2]uint32{0, 1}},
	{Tag: "NET", Enumerant: "GDNATIVE_API_TYPES_GDNATIVE_EXT_NET", Value: 6, Prefix: "godot_gdnative_ext_net", Published: [2]uint32{3, 1}},
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	if e.HasVersion {
		return fmt.Sprintf("unknown API type and version: %s %d.%d", e.Tag, e.Major, e.Minor)
	}
	return fmt.Sprintf("unknown API type: %s", e.Tag)
}

// Unwrap returns ErrUnknownCategory for errors.Is.
func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// Lookup returns the entry for tag.
func Lookup(tag string) (Entry, error) {
	for _, e := range entries {
		if e.Tag == tag {
			return e, nil
		}
	}
	return Entry{}, &UnknownCategoryError{Tag: tag}
}

// StructName returns the C struct name of the (tag, major, minor) revision.
// The published revision of each category uses the bare
// "<prefix>_api_struct" name; CORE and NATIVESCRIPT revisions beyond it
// embed the version. Any other pair is unknown.
func StructName(tag string, major, minor uint32) (string, error) {
	e, err := Lookup(tag)
	if err != nil {
		return "", err
	}
	if e.Published == [2]uint32{major, minor} {
		return e.Prefix + "_api_struct", nil
	}
	if e.Versioned {
		return fmt.Sprintf("%s_%d_%d_api_struct", e.Prefix, major, minor), nil
	}
	return "", &UnknownCategoryError{Tag: tag, Major: major, Minor: minor, HasVersion: true}
}

// Entries returns a copy of every catalog entry in enumerant order.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}
