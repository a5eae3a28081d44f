package analysis

import (
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/scala"

	"scala-lint/imports"
	"scala-lint/symbols"
)

type FileContext struct {
	Body     []byte
	Tree     *sitter.Tree
	Clauses  []imports.ClauseID
	Warnings []imports.Warning
}

// Engine analyses Scala compilation units for unused imports. One engine
// owns one clause arena and one recorder state; files are units keyed by
// URI.
type Engine struct {
	// Fixes makes every analysis attach quickfix edits to its warnings.
	Fixes bool

	symbols      *symbols.Table
	arena        *imports.Arena
	state        *imports.State
	fileContexts map[string]FileContext

	queries Queries
}

func ScalaParser() *sitter.Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(scala.GetLanguage())
	return parser
}

// New builds an engine. table may be nil; without it wildcard imports are
// never flagged and no deprecation addenda are produced.
func New(table *symbols.Table) *Engine {
	k := &Engine{
		symbols:      table,
		arena:        imports.NewArena(),
		fileContexts: map[string]FileContext{},
	}
	k.state = imports.NewState(k.arena)
	if table != nil {
		k.state.Deprecations = table
	}
	if err := k.queries.Init(); err != nil {
		panic(err)
	}
	return k
}

func (s *Engine) Queries() Queries {
	return s.queries
}

func (s *Engine) DeleteFileContext(uri string) {
	delete(s.fileContexts, uri)
}

// SetFileContext parses content, records import clauses and their usage,
// and resolves the unit's diagnostics. Re-setting a URI re-analyses it
// from scratch.
func (s *Engine) SetFileContext(uri string, content []byte) error {
	s.state.Fixes = s.Fixes

	it := ScalaParser()
	fctx := FileContext{
		Body: content,
		Tree: it.Parse(nil, content),
	}

	s.extractImports(uri, &fctx)
	s.markUsage(uri, &fctx)

	sink := &warningCollector{}
	s.state.ResolveUnit(imports.Unit{ID: imports.UnitID(uri), Source: content}, sink)
	fctx.Warnings = sink.warnings

	s.fileContexts[uri] = fctx
	return nil
}

func (s *Engine) GetFileContext(uri string) (FileContext, error) {
	k, ok := s.fileContexts[uri]
	if !ok {
		return FileContext{}, errors.New("file context not found")
	}
	return k, nil
}

func (s *Engine) Clause(id imports.ClauseID) *imports.Clause {
	return s.arena.Clause(id)
}

type warningCollector struct {
	warnings []imports.Warning
}

func (c *warningCollector) Warn(_ imports.UnitID, w imports.Warning) {
	c.warnings = append(c.warnings, w)
}
