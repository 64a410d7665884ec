// SPDX-License-Identifier: MPL-2.0

package manifest

import "fmt"

// MaxChainLength bounds the number of revisions in one category chain.
const MaxChainLength = 256

type (
	// Manifest is the root of an API description.
	Manifest struct {
		// Primary is the head of the primary category chain.
		Primary Category
		// Extensions are the extension chain heads in declaration order.
		Extensions []Category
		// FilePath is the file the manifest was read from, if any.
		FilePath string
	}

	// Category is one revision of a category's function table.
	Category struct {
		// Name is the optional human-readable extension name.
		Name string
		// Tag identifies the category (e.g. "CORE", "NATIVESCRIPT").
		Tag string
		// Version is the revision's version.
		Version Version
		// Next links to the following revision of the same category.
		Next *Category
		// Functions are the table's function slots in declaration order.
		Functions []Function
	}

	// Version is a (major, minor) revision number.
	Version struct {
		Major uint32 `json:"major"`
		Minor uint32 `json:"minor"`
	}

	// Function is a single function slot of a category revision.
	Function struct {
		Name       string
		ReturnType string
		Arguments  []Argument
	}

	// Argument is a declared function parameter.
	Argument struct {
		Type string
		Name string
	}

	// Key is the (tag, major, minor) triple identifying a revision.
	Key struct {
		Tag   string
		Major uint32
		Minor uint32
	}

	// Revision is one entry of the flattened revision list.
	Revision struct {
		*Category
		// Chain is 0 for the primary chain and i+1 for Extensions[i].
		Chain int
		// Primary reports whether the revision belongs to the primary chain.
		Primary bool
		// Head reports whether the revision is the first of its chain.
		Head bool
	}
)

// String returns "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// String returns "TAG major.minor".
func (k Key) String() string {
	return fmt.Sprintf("%s %d.%d", k.Tag, k.Major, k.Minor)
}

// Key returns the revision's (tag, major, minor) triple.
func (c *Category) Key() Key {
	return Key{Tag: c.Tag, Major: c.Version.Major, Minor: c.Version.Minor}
}

// Chain returns c followed by every revision reachable through Next.
func (c *Category) Chain() []*Category {
	var chain []*Category
	for rev := c; rev != nil; rev = rev.Next {
		chain = append(chain, rev)
	}
	return chain
}

// Revisions returns every revision in canonical order: the primary chain
// head to tail, then each extension chain head to tail in declaration order.
// Nothing is deduplicated or reordered.
func (m *Manifest) Revisions() []Revision {
	var revisions []Revision
	appendChain := func(head *Category, chain int) {
		for i, rev := range head.Chain() {
			revisions = append(revisions, Revision{
				Category: rev,
				Chain:    chain,
				Primary:  chain == 0,
				Head:     i == 0,
			})
		}
	}

	appendChain(&m.Primary, 0)
	for i := range m.Extensions {
		appendChain(&m.Extensions[i], i+1)
	}
	return revisions
}

// FunctionCount returns the number of functions across all revisions.
func (m *Manifest) FunctionCount() int {
	n := 0
	for _, rev := range m.Revisions() {
		n += len(rev.Functions)
	}
	return n
}
