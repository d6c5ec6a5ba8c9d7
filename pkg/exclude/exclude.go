// Package exclude holds the static exclusion sets applied while collecting files.
package exclude

import (
	"sort"
	"strings"
)

// ExtensionSet is an immutable, case-insensitive set of file extensions.
// Entries may span more than one dot (".js.map"). Leading dots belong to the
// file's stem, so ".log" as a file name has no extension; dot-files that must
// be skipped by name are added with WithDotFiles.
type ExtensionSet struct {
	exts     map[string]struct{}
	dotFiles map[string]struct{}
}

// NewExtensionSet builds an ExtensionSet. Entries without a leading dot get one.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := ExtensionSet{exts: make(map[string]struct{}, len(exts))}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set.exts[ext] = struct{}{}
	}
	return set
}

// WithDotFiles returns a copy of s that also matches the given dot-file names
// (".DS_Store") as whole names, case-insensitively.
func (s ExtensionSet) WithDotFiles(names ...string) ExtensionSet {
	out := ExtensionSet{
		exts:     s.exts,
		dotFiles: make(map[string]struct{}, len(s.dotFiles)+len(names)),
	}
	for name := range s.dotFiles {
		out.dotFiles[name] = struct{}{}
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		out.dotFiles[name] = struct{}{}
	}
	return out
}

// Matches reports whether the file name is an excluded dot-file or ends in one
// of the excluded extensions. Every dot-delimited suffix after the stem's
// leading dots is tried, so "app.js.map" matches ".js.map" as well as ".map".
func (s ExtensionSet) Matches(name string) (string, bool) {
	lower := strings.ToLower(name)
	if _, ok := s.dotFiles[lower]; ok {
		return lower, true
	}

	start := len(lower) - len(strings.TrimLeft(lower, "."))
	for i := start; i < len(lower); i++ {
		if lower[i] != '.' {
			continue
		}
		if _, ok := s.exts[lower[i:]]; ok {
			return lower[i:], true
		}
	}
	return "", false
}

// Len returns the number of entries, dot-file names included.
func (s ExtensionSet) Len() int { return len(s.exts) + len(s.dotFiles) }

// List returns the entries in sorted order, dot-file names included.
func (s ExtensionSet) List() []string {
	all := make(map[string]struct{}, s.Len())
	for k := range s.exts {
		all[k] = struct{}{}
	}
	for k := range s.dotFiles {
		all[k] = struct{}{}
	}
	return sortedKeys(all)
}

// NameSet is an immutable set of exact directory names.
type NameSet struct {
	names map[string]struct{}
}

// NewNameSet builds a NameSet. Matching is exact and case-sensitive.
func NewNameSet(names ...string) NameSet {
	set := NameSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set.names[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of entries.
func (s NameSet) Len() int { return len(s.names) }

// List returns the entries in sorted order.
func (s NameSet) List() []string { return sortedKeys(s.names) }

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
