package imports

// Entry records one clause coming into scope: the clause itself, the clause
// that physically carries the statement's keyword, and the lexical owner at
// the point of entry.
type Entry struct {
	Clause  ClauseID
	Keyword ClauseID
	Owner   ScopeID
}

// State is the analysis state of one compilation run. The run driver
// constructs it, the traversal feeds it through MarkUsed and
// RecordClauseEntry, and ResolveUnit drains it per unit. It is not safe for
// concurrent use; a host that parallelizes across units must synchronize
// externally.
type State struct {
	// Fixes enables edit synthesis; without it every warning is plain.
	Fixes bool

	// Deprecations is optional; when nil no addendum is appended.
	Deprecations Deprecations

	arena *Arena
	used  map[ClauseID]map[int]struct{}
	log   map[UnitID][]Entry
}

func NewState(arena *Arena) *State {
	return &State{
		arena: arena,
		used:  map[ClauseID]map[int]struct{}{},
		log:   map[UnitID][]Entry{},
	}
}

func (s *State) Arena() *Arena {
	return s.arena
}

// MarkUsed records that selector (an index into the clause's selector list)
// satisfied a reference through clause. Redundant calls are harmless.
func (s *State) MarkUsed(clause ClauseID, selector int) {
	set, ok := s.used[clause]
	if !ok {
		set = map[int]struct{}{}
		s.used[clause] = set
	}
	set[selector] = struct{}{}
}

// RecordClauseEntry logs clause entering scope in unit. visible is the
// sequence of clauses currently in scope, most recent first; it is scanned
// to find the clause carrying the statement's keyword when clause itself
// does not. owner is passed through to the eventual warning.
func (s *State) RecordClauseEntry(unit UnitID, clause ClauseID, visible []ClauseID, owner ScopeID) {
	keyword := clause
	if !s.arena.Clause(clause).CarriesKeyword() {
		for _, v := range visible {
			if s.arena.Clause(v).CarriesKeyword() {
				keyword = v
				break
			}
		}
	}
	s.log[unit] = append([]Entry{{Clause: clause, Keyword: keyword, Owner: owner}}, s.log[unit]...)
}

// drainLog removes and returns the unit's entries, coalescing duplicate
// entries for the same clause (nested blocks may re-enter a clause's
// visibility; the first logged occurrence wins).
func (s *State) drainLog(unit UnitID) []Entry {
	entries, ok := s.log[unit]
	if !ok {
		return nil
	}
	delete(s.log, unit)

	seen := map[ClauseID]struct{}{}
	out := entries[:0]
	for _, e := range entries {
		if _, dup := seen[e.Clause]; dup {
			continue
		}
		seen[e.Clause] = struct{}{}
		out = append(out, e)
	}
	return out
}

// drainUsed removes and returns the used-selector set for a clause. A
// clause that never saw a MarkUsed call drains to nil, meaning entirely
// unused.
func (s *State) drainUsed(clause ClauseID) map[int]struct{} {
	set := s.used[clause]
	delete(s.used, clause)
	return set
}
