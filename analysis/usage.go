package analysis

import (
	sitter "github.com/smacker/go-tree-sitter"

	"scala-lint/imports"
)

// markUsage scans every identifier reference in the unit and marks the
// selector that would have brought the name into scope. References that
// sit inside an import declaration do not count.
func (s *Engine) markUsage(uri string, fctx *FileContext) {
	for _, query := range []*sitter.Query{s.queries.TermReferences, s.queries.TypeReferences} {
		qc := sitter.NewQueryCursor()
		qc.Exec(query, fctx.Tree.RootNode())
		for match, goNext := qc.NextMatch(); goNext; match, goNext = qc.NextMatch() {
			for _, cap := range match.Captures {
				if insideImport(cap.Node) {
					continue
				}
				s.resolveReference(fctx, cap.Node.Content(fctx.Body), imports.Position(cap.Node.StartByte()))
			}
		}
	}
}

func insideImport(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "import_declaration" {
			return true
		}
	}
	return false
}

// resolveReference finds the clause a name binds to. Later clauses shadow
// earlier ones, and a clause only counts once the reference sits past its
// end. An exclusion keeps the name out of its own clause without touching
// what earlier clauses supply.
func (s *Engine) resolveReference(fctx *FileContext, name string, at imports.Position) {
	for i := len(fctx.Clauses) - 1; i >= 0; i-- {
		id := fctx.Clauses[i]
		c := s.arena.Clause(id)
		if c.Pos.End > at {
			continue
		}
		if idx := s.matchClause(c, name); idx >= 0 {
			s.state.MarkUsed(id, idx)
			return
		}
	}
}

func (s *Engine) matchClause(c *imports.Clause, name string) int {
	wild := -1
	for i := range c.Selectors {
		sel := c.Selectors[i]
		switch {
		case sel.Exclusion:
			if sel.Name == name {
				return -1
			}
		case sel.Wildcard:
			wild = i
		case sel.Rename != "":
			if sel.Rename == name {
				return i
			}
		case sel.Name == name:
			return i
		}
	}
	if wild >= 0 && s.symbols != nil && s.symbols.Has(c.Qualifier, name) {
		return wild
	}
	return -1
}
