package imports

// Position is a byte offset into a compilation unit's source.
type Position int

// NoPos marks a clause that has no real source position (synthetic imports
// injected by the host front end).
const NoPos Position = -1

type Span struct {
	Start Position
	End   Position
}

func (s Span) IsDefined() bool {
	return s.Start > NoPos && s.End >= s.Start
}

func (s Span) Union(o Span) Span {
	if !s.IsDefined() {
		return o
	}
	if !o.IsDefined() {
		return s
	}
	if o.Start < s.Start {
		s.Start = o.Start
	}
	if o.End > s.End {
		s.End = o.End
	}
	return s
}

// TypeRef names the qualifier an import clause selects from, as a dotted
// path ("scala.collection.mutable").
type TypeRef string

// Selector is one named item imported by a clause. A selector with
// Exclusion set hides Name instead of importing it and is never reported
// unused. NamePos covers the name only, not any rename part.
type Selector struct {
	Name      string
	Rename    string
	Wildcard  bool
	Exclusion bool
	NamePos   Span
}

// ClauseID indexes a clause in an Arena. Clause identity is stable for the
// lifetime of one compilation unit.
type ClauseID int

// Clause is one dotted import target with its selector list. A single
// source statement may hold several comma-separated clauses sharing one
// keyword; only the first clause's Pos spans the keyword, so for that
// clause Pos.Start sits before Point (the qualifier start), while every
// later clause has Pos.Start == Point.
type Clause struct {
	Qualifier TypeRef
	Selectors []Selector
	Pos       Span
	Point     Position
}

// CarriesKeyword reports whether this clause is the first clause of its
// statement, i.e. its span begins at the introducing keyword.
func (c *Clause) CarriesKeyword() bool {
	return c.Pos.IsDefined() && c.Pos.Start != c.Point
}

// Arena owns the clauses of a run and hands out stable integer ids, so the
// usage and context maps can be keyed by id instead of pointer identity.
type Arena struct {
	clauses []*Clause
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) Add(c Clause) ClauseID {
	a.clauses = append(a.clauses, &c)
	return ClauseID(len(a.clauses) - 1)
}

func (a *Arena) Clause(id ClauseID) *Clause {
	return a.clauses[id]
}

func (a *Arena) Len() int {
	return len(a.clauses)
}

// UnitID identifies one compilation unit, typically its file URI.
type UnitID string

// ScopeID routes warning suppression policy for the host; this package
// passes it through unmodified.
type ScopeID int

// Unit is what the host hands to ResolveUnit once a unit's traversal is
// done. Foreign units (host-generated or written in another source
// language) produce no diagnostics.
type Unit struct {
	ID      UnitID
	Source  []byte
	Foreign bool
}
