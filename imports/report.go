package imports

// Category is the lint category attached to every warning this package
// emits.
const Category = "unused-imports"

// Action is one textual edit: replace Span with Text. An empty Text is a
// deletion.
type Action struct {
	Span  Span
	Text  string
	Title string
}

// Warning is one unused-import diagnostic. Actions is empty unless fix
// synthesis is enabled and this warning carries the statement's edits.
type Warning struct {
	Pos      Span
	Message  string
	Category string
	Owner    ScopeID
	Origin   string
	Actions  []Action
}

// Reporter is the diagnostic sink supplied by the host.
type Reporter interface {
	Warn(unit UnitID, w Warning)
}

// Deprecation describes a deprecated symbol for the warning addendum.
// Label names the symbol the way it should read in the message
// ("object JavaConverters"); Message is the deprecation message, possibly
// empty.
type Deprecation struct {
	Label   string
	Message string
}

// Deprecations is the host's deprecation lookup. Member resolves a
// selector name against the qualifier's members, trying the term namespace
// first and the type namespace second. Qualifier reports whether the
// qualifier's own symbol is deprecated.
type Deprecations interface {
	Member(qualifier TypeRef, name string) (Deprecation, bool)
	Qualifier(qualifier TypeRef) (Deprecation, bool)
}
