package imports_test

import (
	"strings"
	"testing"

	"scala-lint/imports"
)

// collector is a Reporter that just accumulates warnings.
type collector struct {
	warnings []imports.Warning
}

func (c *collector) Warn(_ imports.UnitID, w imports.Warning) {
	c.warnings = append(c.warnings, w)
}

func (c *collector) actions() []imports.Action {
	var out []imports.Action
	for _, w := range c.warnings {
		out = append(out, w.Actions...)
	}
	return out
}

// fixture drives the recorder API the way a host front end would: parse the
// import statements out of src, register the clauses, and record each one
// entering scope in order.
type fixture struct {
	t      *testing.T
	src    []byte
	arena  *imports.Arena
	state  *imports.State
	ids   []imports.ClauseID
	unit  imports.Unit
	sink  collector
}

func newFixture(t *testing.T, src string) *fixture {
	t.Helper()
	f := &fixture{
		t:     t,
		src:   []byte(src),
		arena: imports.NewArena(),
		unit:  imports.Unit{ID: "test.scala", Source: []byte(src)},
	}
	f.state = imports.NewState(f.arena)
	f.state.Fixes = true
	f.parse()
	var visible []imports.ClauseID
	for _, id := range f.ids {
		f.state.RecordClauseEntry(f.unit.ID, id, reversed(visible), 1)
		visible = append(visible, id)
	}
	return f
}

func reversed(ids []imports.ClauseID) []imports.ClauseID {
	out := make([]imports.ClauseID, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, ids[i])
	}
	return out
}

// parse handles just enough of the selector-import syntax for the tests:
// one statement per line, clauses split on top-level commas, optional
// selector braces with renames and wildcards.
func (f *fixture) parse() {
	f.t.Helper()
	src := string(f.src)
	offset := 0
	for _, line := range strings.SplitAfter(src, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "import ") {
			stmtStart := offset + (len(line) - len(trimmed))
			f.parseStatement(stmtStart, strings.TrimRight(trimmed, "\n"))
		}
		offset += len(line)
	}
}

func (f *fixture) parseStatement(stmtStart int, stmt string) {
	f.t.Helper()
	body := stmt[len("import "):]
	bodyStart := stmtStart + len("import ")

	depth := 0
	clauseStart := 0
	var segments [][2]int
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				segments = append(segments, [2]int{clauseStart, i})
				clauseStart = i + 1
			}
		}
	}
	segments = append(segments, [2]int{clauseStart, len(body)})

	for i, seg := range segments {
		text := body[seg[0]:seg[1]]
		lead := len(text) - len(strings.TrimLeft(text, " \t"))
		text = strings.Trim(text, " \t")
		point := bodyStart + seg[0] + lead
		end := point + len(text)

		start := point
		if i == 0 {
			start = stmtStart
		}
		c := imports.Clause{
			Pos:   imports.Span{Start: imports.Position(start), End: imports.Position(end)},
			Point: imports.Position(point),
		}

		if brace := strings.Index(text, ".{"); brace >= 0 {
			c.Qualifier = imports.TypeRef(text[:brace])
			inner := text[brace+2 : len(text)-1]
			selStart := point + brace + 2
			for _, part := range strings.Split(inner, ",") {
				lead := len(part) - len(strings.TrimLeft(part, " \t"))
				sel := parseSelector(strings.Trim(part, " \t"), selStart+lead)
				c.Selectors = append(c.Selectors, sel)
				selStart += len(part) + 1
			}
		} else if dot := strings.LastIndex(text, "."); dot >= 0 {
			c.Qualifier = imports.TypeRef(text[:dot])
			name := text[dot+1:]
			c.Selectors = []imports.Selector{{
				Name:     name,
				Wildcard: name == "_",
				NamePos: imports.Span{
					Start: imports.Position(point + dot + 1),
					End:   imports.Position(end),
				},
			}}
		} else {
			f.t.Fatalf("unparseable clause %q", text)
		}
		f.ids = append(f.ids, f.arena.Add(c))
	}
}

func parseSelector(text string, start int) imports.Selector {
	if arrow := strings.Index(text, "=>"); arrow >= 0 {
		name := strings.Trim(text[:arrow], " \t")
		rename := strings.Trim(text[arrow+2:], " \t")
		return imports.Selector{
			Name:      name,
			Rename:    rename,
			Exclusion: rename == "_",
			NamePos: imports.Span{
				Start: imports.Position(start),
				End:   imports.Position(start + len(name)),
			},
		}
	}
	return imports.Selector{
		Name:     text,
		Wildcard: text == "_",
		NamePos: imports.Span{
			Start: imports.Position(start),
			End:   imports.Position(start + len(text)),
		},
	}
}

// use marks the named selector used in the first clause that imports it.
func (f *fixture) use(name string) {
	f.t.Helper()
	for _, id := range f.ids {
		c := f.arena.Clause(id)
		for i, sel := range c.Selectors {
			if sel.Name == name || (sel.Wildcard && name == "_") {
				f.state.MarkUsed(id, i)
				return
			}
		}
	}
	f.t.Fatalf("no selector named %q", name)
}

func (f *fixture) resolve() *collector {
	f.t.Helper()
	f.state.ResolveUnit(f.unit, &f.sink)
	return &f.sink
}

func (f *fixture) apply() string {
	f.t.Helper()
	return string(imports.Apply(f.src, f.sink.actions()))
}
