// Package declscan detects namespace-qualified declaration files and extracts
// the exported type and interface names from their bodies. Detection is a raw
// substring search and extraction is a shallow textual pattern — the corpus is
// never parsed as TypeScript. The contract only requires recognizing a literal
// marker phrase and members sitting at a single indentation level.
package declscan

import (
	"bytes"
	"regexp"
	"sort"
)

// exportPattern matches a member declaration at exactly one indentation unit:
// a single tab at line start, or a single space after an opening brace (the
// one-line namespace form). Deeper nesting puts a second whitespace character
// in front of the keyword and never matches.
var exportPattern = regexp.MustCompile(`(?m)(?:^|\{)[\t ](interface|type)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

// Scanner recognizes declaration files that contribute to the flat export
// module for a fixed namespace identifier.
type Scanner struct {
	markers [][]byte
}

// New returns a Scanner for the given namespace identifier (e.g., "Acode").
// Two marker phrasings are accepted: the ambient form "declare namespace NS"
// and the plain form "namespace NS {" used inside declare-global blocks.
func New(namespace string) *Scanner {
	return &Scanner{
		markers: [][]byte{
			[]byte("declare namespace " + namespace),
			[]byte("namespace " + namespace + " {"),
		},
	}
}

// HasMarker reports whether the file text contains either namespace marker.
func (s *Scanner) HasMarker(text []byte) bool {
	for _, m := range s.markers {
		if bytes.Contains(text, m) {
			return true
		}
	}
	return false
}

// ExportedNames returns every interface/type identifier declared at single
// indentation depth, in order of appearance. Duplicates are preserved; callers
// collapse them through a NameSet.
func (s *Scanner) ExportedNames(text []byte) []string {
	matches := exportPattern.FindAllSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, string(m[2]))
	}
	return names
}

// Collect adds the file's exported names to set if the file carries a
// namespace marker. Files without a marker never contribute, even when they
// contain declarations matching the extraction pattern.
func (s *Scanner) Collect(text []byte, set NameSet) {
	if !s.HasMarker(text) {
		return
	}
	for _, name := range s.ExportedNames(text) {
		set.Add(name)
	}
}

// NameSet accumulates collected identifiers. Duplicate names across files
// collapse to a single entry; only the spelling is kept.
type NameSet map[string]struct{}

// NewNameSet returns an empty accumulator.
func NewNameSet() NameSet {
	return make(NameSet)
}

// Add inserts a name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains name.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct names collected.
func (s NameSet) Len() int {
	return len(s)
}

// Sorted returns the names in ascending byte order. Sorting happens here, and
// only here, so generated output is stable regardless of collection order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
