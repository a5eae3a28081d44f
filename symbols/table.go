package symbols

import "scala-lint/imports"

// Table aggregates parsed manifests and answers the lookups the analysis
// needs: wildcard membership and deprecation of members and modules. It
// implements imports.Deprecations.
type Table struct {
	modules map[string]*moduleEntry
}

type moduleEntry struct {
	deprecated *string
	terms      map[string]Member
	types      map[string]Member
}

func NewTable() *Table {
	return &Table{modules: map[string]*moduleEntry{}}
}

func isTermKind(kind string) bool {
	switch kind {
	case "object", "def", "val", "package":
		return true
	}
	return false
}

func (t *Table) Add(manifest *Manifest) {
	for _, mod := range manifest.Modules {
		entry, ok := t.modules[mod.Path()]
		if !ok {
			entry = &moduleEntry{terms: map[string]Member{}, types: map[string]Member{}}
			t.modules[mod.Path()] = entry
		}
		if mod.Deprecated != nil {
			entry.deprecated = mod.Deprecated
		}
		for _, m := range mod.Members {
			if isTermKind(m.Kind) {
				entry.terms[m.Name] = m
			} else {
				entry.types[m.Name] = m
			}
		}
	}
}

// Knows reports whether any manifest described the module; wildcard
// imports of unknown modules are never flagged.
func (t *Table) Knows(qual imports.TypeRef) bool {
	_, ok := t.modules[string(qual)]
	return ok
}

// Has reports whether the module exports a member with this name.
func (t *Table) Has(qual imports.TypeRef, name string) bool {
	entry, ok := t.modules[string(qual)]
	if !ok {
		return false
	}
	if _, ok := entry.terms[name]; ok {
		return true
	}
	_, ok = entry.types[name]
	return ok
}

// Member resolves a selector name against the module's members, term
// namespace first, then the type namespace, and reports its deprecation if
// any.
func (t *Table) Member(qual imports.TypeRef, name string) (imports.Deprecation, bool) {
	entry, ok := t.modules[string(qual)]
	if !ok {
		return imports.Deprecation{}, false
	}
	m, ok := entry.terms[name]
	if !ok {
		m, ok = entry.types[name]
	}
	if !ok || m.Deprecated == nil {
		return imports.Deprecation{}, false
	}
	return imports.Deprecation{Label: m.Kind + " " + m.Name, Message: *m.Deprecated}, true
}

// Qualifier reports whether the module itself is deprecated.
func (t *Table) Qualifier(qual imports.TypeRef) (imports.Deprecation, bool) {
	entry, ok := t.modules[string(qual)]
	if !ok || entry.deprecated == nil {
		return imports.Deprecation{}, false
	}
	return imports.Deprecation{Label: "module " + string(qual), Message: *entry.deprecated}, true
}
