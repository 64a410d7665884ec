// SPDX-License-Identifier: MPL-2.0

package manifest

import "strings"

// Validate checks the structural rules the schema cannot express: non-empty
// identifiers, bounded chains, revisions of one chain sharing a tag, and
// function names unique across every category. The first violation is
// returned as a *MalformedManifestError.
func (m *Manifest) Validate() error {
	file := m.FilePath
	if file == "" {
		file = "<manifest>"
	}

	heads := []*Category{&m.Primary}
	for i := range m.Extensions {
		heads = append(heads, &m.Extensions[i])
	}

	owners := make(map[string]Key)
	for _, head := range heads {
		length := 0
		for rev := head; rev != nil; rev = rev.Next {
			length++
			if length > MaxChainLength {
				return malformed(file, head.Tag, "revision chain longer than %d", MaxChainLength)
			}
			if strings.TrimSpace(rev.Tag) == "" {
				return malformed(file, "", "category without tag")
			}
			if rev.Tag != head.Tag {
				return malformed(file, rev.Key().String(), "revision of %s chain has tag %s", head.Tag, rev.Tag)
			}

			for _, fn := range rev.Functions {
				if strings.TrimSpace(fn.Name) == "" {
					return malformed(file, rev.Key().String(), "function without name")
				}
				if strings.TrimSpace(fn.ReturnType) == "" {
					return malformed(file, fn.Name, "missing return type")
				}
				for i, arg := range fn.Arguments {
					if strings.TrimSpace(arg.Type) == "" {
						return malformed(file, fn.Name, "argument %d has no type", i)
					}
				}
				if owner, dup := owners[fn.Name]; dup {
					return malformed(file, fn.Name, "function declared in both %s and %s", owner, rev.Key())
				}
				owners[fn.Name] = rev.Key()
			}
		}
	}
	return nil
}
