package imports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkUsedIsIdempotent(t *testing.T) {
	f := newFixture(t, "import a.{x, y}\n")
	for i := 0; i < 5; i++ {
		f.use("y")
	}

	sink := f.resolve()

	require.Len(t, sink.warnings, 1)
	assert.Equal(t, "a.x", sink.warnings[0].Origin)
}

func TestDuplicateClauseEntriesCoalesce(t *testing.T) {
	f := newFixture(t, "import a.{x, y}\n")
	// a nested block re-entering the clause's visibility logs it again
	f.state.RecordClauseEntry(f.unit.ID, f.ids[0], nil, 2)
	f.use("y")

	sink := f.resolve()

	require.Len(t, sink.warnings, 1)
}

func TestKeywordClauseFoundThroughVisibleList(t *testing.T) {
	f := newFixture(t, "package p\nimport a.x, b.y\nclass C\n")

	// the fixture recorded b with a visible; its keyword clause must be a,
	// so deleting the whole statement spans the keyword
	sink := f.resolve()

	require.Len(t, sink.warnings, 2)
	assert.Equal(t, "package p\nclass C\n", f.apply())
}

func TestExclusionNeverReported(t *testing.T) {
	f := newFixture(t, "import a.{x => _, y => _}\nclass C\n")

	sink := f.resolve()

	assert.Empty(t, sink.warnings)
}

func TestFullyUsedStatementReportsNothing(t *testing.T) {
	f := newFixture(t, "import a.{x, y}\n")
	f.use("x")
	f.use("y")

	sink := f.resolve()

	assert.Empty(t, sink.warnings)
}
