package analysis

import (
	sitter "github.com/smacker/go-tree-sitter"

	"scala-lint/imports"
)

// extractImports walks the tree for import declarations and registers one
// clause per dotted target, recording each clause's entry into scope as it
// goes. The first clause of a declaration spans the keyword; later clauses
// start at their own qualifier, which is what the edit synthesis keys off.
func (s *Engine) extractImports(uri string, fctx *FileContext) {
	var walk func(n *sitter.Node, depth int)
	walk = func(n *sitter.Node, depth int) {
		if n.Type() == "import_declaration" {
			s.extractDeclaration(uri, fctx, n, depth)
			return
		}
		scoped := depth
		if opensScope(n) {
			scoped++
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i), scoped)
		}
	}
	walk(fctx.Tree.RootNode(), 0)
}

func opensScope(n *sitter.Node) bool {
	switch n.Type() {
	case "template_body", "block":
		return true
	}
	return false
}

func (s *Engine) extractDeclaration(uri string, fctx *FileContext, decl *sitter.Node, depth int) {
	body := fctx.Body
	declStart := imports.Position(decl.StartByte())

	var path, sels, wild *sitter.Node
	first := true

	flush := func() {
		if path == nil {
			return
		}
		c := buildClause(body, path, sels, wild)
		if first {
			c.Pos.Start = declStart
			first = false
		}
		s.registerClause(uri, fctx, c, depth)
		path, sels, wild = nil, nil, nil
	}

	for i := 0; i < int(decl.ChildCount()); i++ {
		ch := decl.Child(i)
		switch ch.Type() {
		case ",":
			flush()
		case "stable_identifier", "identifier":
			path = ch
		case "import_selectors":
			sels = ch
		case "wildcard", "import_wildcard":
			wild = ch
		}
	}
	flush()
}

func buildClause(body []byte, path, sels, wild *sitter.Node) imports.Clause {
	point := imports.Position(path.StartByte())
	c := imports.Clause{Point: point}

	switch {
	case sels != nil:
		c.Qualifier = imports.TypeRef(path.Content(body))
		c.Pos = imports.Span{Start: point, End: imports.Position(sels.EndByte())}
		for i := 0; i < int(sels.NamedChildCount()); i++ {
			c.Selectors = append(c.Selectors, buildSelector(body, sels.NamedChild(i)))
		}
	case wild != nil:
		c.Qualifier = imports.TypeRef(path.Content(body))
		c.Pos = imports.Span{Start: point, End: imports.Position(wild.EndByte())}
		c.Selectors = []imports.Selector{{
			Name:     "_",
			Wildcard: true,
			NamePos:  nodeSpan(wild),
		}}
	default:
		// import a.b.c selects c from a.b
		c.Pos = imports.Span{Start: point, End: imports.Position(path.EndByte())}
		name := lastIdentifier(path)
		if name == nil || name.StartByte() == path.StartByte() {
			// bare "import a" has nothing to select from
			c.Qualifier = ""
			c.Selectors = []imports.Selector{{
				Name:    path.Content(body),
				NamePos: nodeSpan(path),
			}}
			break
		}
		c.Qualifier = imports.TypeRef(body[path.StartByte() : name.StartByte()-1])
		c.Selectors = []imports.Selector{{
			Name:    name.Content(body),
			NamePos: nodeSpan(name),
		}}
	}
	return c
}

func buildSelector(body []byte, n *sitter.Node) imports.Selector {
	switch n.Type() {
	case "renamed_identifier":
		name := n.ChildByFieldName("name")
		alias := n.ChildByFieldName("alias")
		if name == nil {
			name = n.NamedChild(0)
		}
		if alias == nil {
			alias = n.NamedChild(int(n.NamedChildCount()) - 1)
		}
		rename := alias.Content(body)
		return imports.Selector{
			Name:      name.Content(body),
			Rename:    rename,
			Exclusion: rename == "_",
			NamePos:   nodeSpan(name),
		}
	case "wildcard", "import_wildcard":
		return imports.Selector{
			Name:     "_",
			Wildcard: true,
			NamePos:  nodeSpan(n),
		}
	default:
		return imports.Selector{
			Name:    n.Content(body),
			NamePos: nodeSpan(n),
		}
	}
}

func (s *Engine) registerClause(uri string, fctx *FileContext, c imports.Clause, depth int) {
	id := s.arena.Add(c)

	visible := make([]imports.ClauseID, 0, len(fctx.Clauses))
	for i := len(fctx.Clauses) - 1; i >= 0; i-- {
		visible = append(visible, fctx.Clauses[i])
	}
	s.state.RecordClauseEntry(imports.UnitID(uri), id, visible, imports.ScopeID(depth))
	fctx.Clauses = append(fctx.Clauses, id)

	// a wildcard over a module no manifest describes can never be proven
	// unused, so it counts as used from the start
	clause := s.arena.Clause(id)
	for i := range clause.Selectors {
		sel := clause.Selectors[i]
		if sel.Wildcard && (s.symbols == nil || !s.symbols.Knows(clause.Qualifier)) {
			s.state.MarkUsed(id, i)
		}
	}
}

func lastIdentifier(path *sitter.Node) *sitter.Node {
	var last *sitter.Node
	for i := 0; i < int(path.ChildCount()); i++ {
		child := path.Child(i)
		if child.Type() == "identifier" || child.Type() == "operator_identifier" {
			last = child
		}
	}
	if last == nil && path.Type() == "identifier" {
		return path
	}
	return last
}

func nodeSpan(n *sitter.Node) imports.Span {
	return imports.Span{
		Start: imports.Position(n.StartByte()),
		End:   imports.Position(n.EndByte()),
	}
}
