package imports

import (
	"fmt"
	"sort"
)

type unusedPair struct {
	sel   int
	entry Entry
}

// ResolveUnit drains the unit's context log and usage sets and reports
// every unused, non-excluded selector. With Fixes enabled, warnings carry
// text edits whose combined application removes exactly the dead parts of
// each import statement.
func (s *State) ResolveUnit(unit Unit, report Reporter) {
	entries := s.drainLog(unit.ID)
	if unit.Foreign || len(entries) == 0 {
		// drop any usage sets so an abandoned unit doesn't leak them
		for _, e := range entries {
			s.drainUsed(e.Clause)
		}
		return
	}

	unusedByClause := map[ClauseID][]int{}
	pairsByClause := map[ClauseID][]unusedPair{}
	var pairs []unusedPair
	for _, e := range entries {
		used := s.drainUsed(e.Clause)
		c := s.arena.Clause(e.Clause)
		for i := range c.Selectors {
			if c.Selectors[i].Exclusion {
				continue
			}
			if _, ok := used[i]; ok {
				continue
			}
			p := unusedPair{sel: i, entry: e}
			unusedByClause[e.Clause] = append(unusedByClause[e.Clause], i)
			pairsByClause[e.Clause] = append(pairsByClause[e.Clause], p)
			pairs = append(pairs, p)
		}
	}

	// Stable sort by the owning clause's start position only. Selectors
	// recorded out of textual order within one clause keep their recorded
	// order; the original behavior guarantees no more than this.
	sort.SliceStable(pairs, func(i, j int) bool {
		return s.arena.Clause(pairs[i].entry.Clause).Pos.Start <
			s.arena.Clause(pairs[j].entry.Clause).Pos.Start
	})

	if !s.Fixes {
		for _, p := range pairs {
			report.Warn(unit.ID, s.warning(p, nil))
		}
		return
	}

	// statement membership, keyed by keyword clause
	stmts := map[ClauseID][]ClauseID{}
	for _, e := range entries {
		stmts[e.Keyword] = append(stmts[e.Keyword], e.Clause)
	}
	for _, ids := range stmts {
		sort.Slice(ids, func(i, j int) bool {
			return s.arena.Clause(ids[i]).Pos.Start < s.arena.Clause(ids[j]).Pos.Start
		})
	}

	// one statement at a time, in sorted warning order
	grouped := map[ClauseID][]unusedPair{}
	var order []ClauseID
	for _, p := range pairs {
		if _, ok := grouped[p.entry.Keyword]; !ok {
			order = append(order, p.entry.Keyword)
		}
		grouped[p.entry.Keyword] = append(grouped[p.entry.Keyword], p)
	}
	for _, kw := range order {
		s.fixStatement(unit, grouped[kw], stmts[kw], unusedByClause, pairsByClause, report)
	}
}

func (s *State) warning(p unusedPair, actions []Action) Warning {
	c := s.arena.Clause(p.entry.Clause)
	sel := c.Selectors[p.sel]
	return Warning{
		Pos:      sel.NamePos,
		Message:  "Unused import" + s.deprecationAddendum(c.Qualifier, sel),
		Category: Category,
		Owner:    p.entry.Owner,
		Origin:   origin(c, sel),
		Actions:  actions,
	}
}

func origin(c *Clause, sel Selector) string {
	if sel.Wildcard {
		return string(c.Qualifier) + "._"
	}
	return string(c.Qualifier) + "." + sel.Name
}

func (s *State) deprecationAddendum(qual TypeRef, sel Selector) string {
	if s.Deprecations == nil {
		return ""
	}
	if !sel.Wildcard {
		if d, ok := s.Deprecations.Member(qual, sel.Name); ok {
			return fmt.Sprintf(" of deprecated %s%s", d.Label, deprecationSuffix(d))
		}
	}
	if d, ok := s.Deprecations.Qualifier(qual); ok {
		return fmt.Sprintf(" from deprecated %s%s", d.Label, deprecationSuffix(d))
	}
	return ""
}

func deprecationSuffix(d Deprecation) string {
	if d.Message == "" {
		return ""
	}
	return ": " + d.Message
}
