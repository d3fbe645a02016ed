// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"))
}

// notboth returns a BDD with two variables and the node for !x0 & !x1.
func notboth() (*BDD, Node) {
	bdd, _ := New(2)
	return bdd, bdd.And(bdd.NIthvar(0), bdd.NIthvar(1))
}

func TestPrintDot(t *testing.T) {
	bdd, n := notboth()
	var buf bytes.Buffer
	require.NoError(t, bdd.PrintDot(&buf, n))
	newGoldie(t).Assert(t, "dot_notboth", buf.Bytes())

	buf.Reset()
	require.NoError(t, bdd.PrintDot(&buf, bdd.True()))
	newGoldie(t).Assert(t, "dot_true", buf.Bytes())

	assert.Error(t, bdd.PrintDot(&buf, Node(17)))
}

func TestFPrintDot(t *testing.T) {
	bdd, n := notboth()
	filename := filepath.Join(t.TempDir(), "notboth.dot")
	require.NoError(t, bdd.FPrintDot(filename, n))
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	newGoldie(t).Assert(t, "dot_notboth", content)
}

func TestPrintSet(t *testing.T) {
	bdd, n := notboth()
	var buf bytes.Buffer
	require.NoError(t, bdd.PrintSet(&buf, n))
	assert.Equal(t, "node: 4\n3[1] ? 1 : 0\n4[0] ? 3 : 0\n", buf.String())

	buf.Reset()
	require.NoError(t, bdd.PrintSet(&buf, bdd.False()))
	assert.Equal(t, "False\n", buf.String())
}

func TestPrint(t *testing.T) {
	bdd, n := notboth()
	assert.Equal(t, "(4[0] ? 3 : 0)", bdd.Print(n))
	assert.Equal(t, "True", bdd.Print(bdd.True()))
	assert.Contains(t, bdd.Print(Node(10)), "not a valid index")
	assert.Contains(t, bdd.Stats(), "Varnum:     2")
	bdd.LogStats(true)
}

func TestDiagramGolden(t *testing.T) {
	bdd, n := notboth()
	g, err := bdd.Diagram(n)
	require.NoError(t, err)
	out, err := json.MarshalIndent(g, "", "  ")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "diagram_notboth", append(out, '\n'))
}

func TestDiagram(t *testing.T) {
	bdd, _ := New(4)
	x := []Node{bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2), bdd.Ithvar(3)}
	roots := []Node{
		bdd.Or(bdd.And(x[0], x[1]), bdd.And(x[2], x[3])),
		bdd.Xor(bdd.Xor(x[0], x[1]), bdd.Xor(x[2], x[3])),
		bdd.Imp(x[1], x[3]),
		x[2],
	}
	for _, n := range roots {
		g, err := bdd.Diagram(n)
		require.NoError(t, err)
		assert.Equal(t, n, g.Root)

		// every reachable node occurs exactly once
		seen := make(map[Node]bool)
		for _, v := range g.Nodes {
			assert.False(t, seen[v.ID], "duplicate node %d", v.ID)
			seen[v.ID] = true
		}
		assert.Len(t, seen, len(bdd.reachable(n)))

		// non constant nodes come first, by level, and own exactly two edges
		last := -1
		inner := 0
		for _, v := range g.Nodes {
			if v.Terminal {
				assert.Equal(t, bdd.Varnum(), v.Row)
				continue
			}
			inner++
			assert.GreaterOrEqual(t, v.Level, last)
			last = v.Level
			assert.Equal(t, v.Level, v.Row)
		}
		require.Len(t, g.Edges, 2*inner)
		for k := 0; k < len(g.Edges); k += 2 {
			low, high := g.Edges[k], g.Edges[k+1]
			assert.Equal(t, low.Source, high.Source)
			assert.Equal(t, FalseBranch, low.Branch)
			assert.Equal(t, TrueBranch, high.Branch)
			assert.Equal(t, bdd.low(low.Source), low.Target)
			assert.Equal(t, bdd.high(high.Source), high.Target)
		}
	}

	g, err := bdd.Diagram(bdd.False())
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)

	_, err = bdd.Diagram(Node(-3))
	assert.ErrorIs(t, err, errBadNode)
}
