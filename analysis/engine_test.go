package analysis_test

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scala-lint/analysis"
	"scala-lint/symbols"
)

//go:embed test.scala
var testScala []byte

const fixedScala = `package demo

import scala.collection.mutable
import scala.collection.immutable.TreeMap
import scala.util.{Try => Attempt}
import java.io.File

object Demo {
  val cache = mutable.Map.empty[String, Int]
  val ordered: TreeMap[String, Int] = TreeMap.empty
  def parse(s: String): Attempt[Int] = Attempt(s.toInt)
  def open(path: String): File = new File(path)
}
`

func TestEngineFindsUnusedSelectors(t *testing.T) {
	eng := analysis.New(nil)
	require.NoError(t, eng.SetFileContext("test.scala", testScala))

	fctx, err := eng.GetFileContext("test.scala")
	require.NoError(t, err)

	var origins []string
	for _, w := range fctx.Warnings {
		assert.Equal(t, "Unused import", w.Message)
		origins = append(origins, w.Origin)
	}
	assert.Equal(t, []string{
		"scala.collection.immutable.ListMap",
		"scala.util.Success",
		"java.net.URI",
	}, origins)
}

func TestEngineFixRewritesSource(t *testing.T) {
	eng := analysis.New(nil)
	eng.Fixes = true
	require.NoError(t, eng.SetFileContext("test.scala", testScala))

	fixed, err := eng.Fix("test.scala")
	require.NoError(t, err)
	assert.Equal(t, fixedScala, string(fixed))
}

func TestEngineDiagnostics(t *testing.T) {
	eng := analysis.New(nil)
	eng.Fixes = true
	require.NoError(t, eng.SetFileContext("test.scala", testScala))

	diags, err := eng.Diagnostics("test.scala")
	require.NoError(t, err)
	require.Len(t, diags, 3)
	for _, d := range diags {
		assert.Equal(t, "unused-imports", d.Source)
		assert.NotEmpty(t, d.Actions)
	}
	// ListMap sits on line 3 of the fixture
	assert.Equal(t, 3, diags[0].Range.Start.Line)
}

func TestEngineDeleteFileContext(t *testing.T) {
	eng := analysis.New(nil)
	require.NoError(t, eng.SetFileContext("test.scala", testScala))
	eng.DeleteFileContext("test.scala")
	_, err := eng.GetFileContext("test.scala")
	assert.Error(t, err)
}

func TestWildcardOverUnknownModuleNeverFlagged(t *testing.T) {
	src := []byte("import scala.sys.process._\n\nobject A\n")

	eng := analysis.New(nil)
	require.NoError(t, eng.SetFileContext("a.scala", src))

	fctx, err := eng.GetFileContext("a.scala")
	require.NoError(t, err)
	assert.Empty(t, fctx.Warnings)
}

func symbolTable(t *testing.T, manifest string) *symbols.Table {
	t.Helper()
	m, err := symbols.ParseManifest("manifest", []byte(manifest))
	require.NoError(t, err)
	table := symbols.NewTable()
	table.Add(m)
	return table
}

func TestWildcardOverKnownModuleFlagged(t *testing.T) {
	table := symbolTable(t, `module scala.math.Ordering {
	member Int object
}`)
	src := []byte("import scala.math.Ordering._\n\nobject A\n")

	eng := analysis.New(table)
	eng.Fixes = true
	require.NoError(t, eng.SetFileContext("a.scala", src))

	fctx, err := eng.GetFileContext("a.scala")
	require.NoError(t, err)
	require.Len(t, fctx.Warnings, 1)
	assert.Equal(t, "scala.math.Ordering._", fctx.Warnings[0].Origin)

	fixed, err := eng.Fix("a.scala")
	require.NoError(t, err)
	assert.Equal(t, "\nobject A\n", string(fixed))
}

func TestWildcardSatisfiedByMemberReference(t *testing.T) {
	table := symbolTable(t, `module scala.math.Ordering {
	member Int object
}`)
	src := []byte("import scala.math.Ordering._\n\nobject A {\n  val o = Int\n}\n")

	eng := analysis.New(table)
	require.NoError(t, eng.SetFileContext("a.scala", src))

	fctx, err := eng.GetFileContext("a.scala")
	require.NoError(t, err)
	assert.Empty(t, fctx.Warnings)
}

func TestDeprecatedMemberAddendum(t *testing.T) {
	table := symbolTable(t, `module scala.collection {
	member JavaConverters object deprecated "Use scala.jdk.CollectionConverters instead"
}`)
	src := []byte("import scala.collection.JavaConverters\n\nobject A\n")

	eng := analysis.New(table)
	require.NoError(t, eng.SetFileContext("a.scala", src))

	fctx, err := eng.GetFileContext("a.scala")
	require.NoError(t, err)
	require.Len(t, fctx.Warnings, 1)
	assert.Equal(t,
		"Unused import of deprecated object JavaConverters: Use scala.jdk.CollectionConverters instead",
		fctx.Warnings[0].Message)
}
