package imports

import "sort"

// ActionTitle is the description attached to every synthesized edit.
const ActionTitle = "remove unused import"

// fixStatement emits the warnings and edits for one source statement (one
// keyword clause). stmt is the statement's full clause list in source
// order; unused and clausePairs hold the per-clause unused selectors.
func (s *State) fixStatement(unit Unit, pairs []unusedPair, stmt []ClauseID, unused map[ClauseID][]int, clausePairs map[ClauseID][]unusedPair, report Reporter) {
	fullyUnused := func(id ClauseID) bool {
		return len(unused[id]) == len(s.arena.Clause(id).Selectors)
	}

	// single clause, single selector: the whole statement is one dead name
	if len(stmt) == 1 {
		c := s.arena.Clause(stmt[0])
		if len(c.Selectors) == 1 && len(unused[stmt[0]]) == 1 {
			act := repairSpan(unit.Source, Action{Span: c.Pos, Title: ActionTitle})
			report.Warn(unit.ID, s.warning(pairs[0], []Action{act}))
			return
		}
	}

	// every clause dead: delete the wrapping span with the last warning
	allDead := true
	for _, id := range stmt {
		if !fullyUnused(id) {
			allDead = false
			break
		}
	}
	if allDead {
		sorted := append([]unusedPair(nil), pairs...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return s.namePos(sorted[i]).Start < s.namePos(sorted[j]).Start
		})
		wrap := Span{Start: NoPos, End: NoPos}
		for _, id := range stmt {
			wrap = wrap.Union(s.arena.Clause(id).Pos)
		}
		for i, p := range sorted {
			var acts []Action
			if i == len(sorted)-1 {
				acts = []Action{repairSpan(unit.Source, Action{Span: wrap, Title: ActionTitle})}
			}
			report.Warn(unit.ID, s.warning(p, acts))
		}
		return
	}

	for idx, id := range stmt {
		if len(unused[id]) == 0 {
			continue
		}
		if fullyUnused(id) {
			s.fixRemovedClause(unit, idx, stmt, unused, clausePairs[id], report)
		} else {
			s.fixUpdatedClause(unit, idx, stmt, unused[id], clausePairs[id], report)
		}
	}
}

// fixRemovedClause deletes a fully-unused clause from a statement that
// keeps at least one other clause.
func (s *State) fixRemovedClause(unit Unit, idx int, stmt []ClauseID, unused map[ClauseID][]int, cpairs []unusedPair, report Reporter) {
	c := s.arena.Clause(stmt[idx])

	start := c.Pos.Start
	if c.CarriesKeyword() {
		start = c.Point
	}
	end := c.Pos.End
	if idx+1 < len(stmt) {
		end = s.arena.Clause(stmt[idx+1]).Pos.Start
	}
	acts := []Action{repairSpan(unit.Source, Action{Span: Span{Start: start, End: end}, Title: ActionTitle})}

	// a removed trailing clause leaves a dangling comma after the nearest
	// surviving clause; delete that comma-and-gap too
	if idx == len(stmt)-1 {
		prev := idx - 1
		for prev >= 0 && len(unused[stmt[prev]]) == len(s.arena.Clause(stmt[prev]).Selectors) {
			prev--
		}
		if prev >= 0 {
			gap := Span{
				Start: s.arena.Clause(stmt[prev]).Pos.End,
				End:   s.arena.Clause(stmt[prev+1]).Pos.Start,
			}
			acts = append(acts, repairSpan(unit.Source, Action{Span: gap, Title: ActionTitle}))
		}
	}

	sorted := append([]unusedPair(nil), cpairs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return s.namePos(sorted[i]).Start < s.namePos(sorted[j]).Start
	})
	for i, p := range sorted {
		if i == len(sorted)-1 {
			report.Warn(unit.ID, s.warning(p, acts))
		} else {
			report.Warn(unit.ID, s.warning(p, nil))
		}
	}
}

// fixUpdatedClause rewrites a clause that keeps some selectors and drops
// others.
func (s *State) fixUpdatedClause(unit Unit, idx int, stmt []ClauseID, unused []int, cpairs []unusedPair, report Reporter) {
	c := s.arena.Clause(stmt[idx])
	dead := map[int]struct{}{}
	for _, i := range unused {
		dead[i] = struct{}{}
	}
	var survivors []int
	for i := range c.Selectors {
		if _, gone := dead[i]; !gone {
			survivors = append(survivors, i)
		}
	}

	if len(survivors) == 1 {
		// collapse to the minimal single-selector form
		start := c.Pos.Start
		if c.CarriesKeyword() {
			start = c.Point
		}
		act := repairSpan(unit.Source, Action{
			Span:  Span{Start: start, End: c.Pos.End},
			Text:  singleSelectorText(c.Qualifier, c.Selectors[survivors[0]]),
			Title: ActionTitle,
		})
		for i, p := range cpairs {
			if i == len(cpairs)-1 {
				report.Warn(unit.ID, s.warning(p, []Action{act}))
			} else {
				report.Warn(unit.ID, s.warning(p, nil))
			}
		}
		return
	}

	// braces stay; each unused selector deletes its own slice of the list
	for _, p := range cpairs {
		sel := c.Selectors[p.sel]
		var acts []Action
		if p.sel < len(c.Selectors)-1 {
			next := c.Selectors[p.sel+1]
			acts = append(acts, repairSpan(unit.Source, Action{
				Span:  Span{Start: sel.NamePos.Start, End: next.NamePos.Start},
				Title: ActionTitle,
			}))
		} else {
			// final selector: take the comma before the trailing unused run
			// and everything up to the closing brace
			run := p.sel
			for run > 0 {
				if _, gone := dead[run-1]; !gone {
					break
				}
				run--
			}
			runStart := c.Selectors[run].NamePos.Start
			acts = append(acts,
				repairSpan(unit.Source, Action{
					Span:  Span{Start: scanBackComma(unit.Source, runStart), End: runStart},
					Title: ActionTitle,
				}),
				repairSpan(unit.Source, Action{
					Span:  Span{Start: sel.NamePos.Start, End: c.Pos.End - 1},
					Title: ActionTitle,
				}),
			)
		}
		report.Warn(unit.ID, s.warning(p, acts))
	}
}

func singleSelectorText(qual TypeRef, sel Selector) string {
	switch {
	case sel.Wildcard:
		return string(qual) + "._"
	case sel.Rename != "":
		return string(qual) + ".{" + sel.Name + " => " + sel.Rename + "}"
	default:
		return string(qual) + "." + sel.Name
	}
}

func (s *State) namePos(p unusedPair) Span {
	return s.arena.Clause(p.entry.Clause).Selectors[p.sel].NamePos
}
