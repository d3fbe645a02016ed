// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dalzilio/rudd/v2"
)

var (
	scenarioA = filepath.Join("..", "dfa", "testdata", "scenario_a.yaml")
	scenarioB = filepath.Join("..", "dfa", "testdata", "scenario_b.json")
	broken    = filepath.Join("..", "dfa", "testdata", "broken.yaml")
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testOptions(t *testing.T) *RootOptions {
	return &RootOptions{logger: zaptest.NewLogger(t), config: &Config{}}
}

func execute(t *testing.T, newCommand func(*RootOptions) *cobra.Command, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAccept(t *testing.T) {
	out, err := execute(t, NewAcceptCommand, testOptions(t), scenarioA, "10", "110")
	require.NoError(t, err)
	assert.Equal(t, "\"10\": accepted\n\"110\": accepted\n", out)

	out, err = execute(t, NewAcceptCommand, testOptions(t), scenarioA, "1", "10", "11")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.True(t, IsSilent(err))
	assert.Contains(t, err.Error(), "2 out of 3")
	assert.Equal(t, "\"1\": rejected\n\"10\": accepted\n\"11\": rejected\n", out)
}

func TestAcceptSymbols(t *testing.T) {
	out, err := execute(t, NewAcceptCommand, testOptions(t), scenarioB, "--symbols", "", "a,a,a")
	require.NoError(t, err)
	assert.Equal(t, "\"\": accepted\n\"a,a,a\": accepted\n", out)

	_, err = execute(t, NewAcceptCommand, testOptions(t), scenarioB, "aa,b")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestAcceptMissingFile(t *testing.T) {
	_, err := execute(t, NewAcceptCommand, testOptions(t), "missing.yaml", "a")
	require.Error(t, err)
	assert.False(t, IsSilent(err))
}

func TestReach(t *testing.T) {
	out, err := execute(t, NewReachCommand, testOptions(t), scenarioA)
	require.NoError(t, err)
	assert.Equal(t, "s0\ns1\ns2\n", out)

	out, err = execute(t, NewReachCommand, testOptions(t), scenarioA, "--count")
	require.NoError(t, err)
	assert.Equal(t, "3/3\n", out)
}

func TestStrict(t *testing.T) {
	out, err := execute(t, NewReachCommand, testOptions(t), broken)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	opts := testOptions(t)
	opts.config.Strict = true
	_, err = execute(t, NewReachCommand, opts, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate state")
}

func TestDot(t *testing.T) {
	out, err := execute(t, NewDotCommand, testOptions(t), scenarioB, "--root", "I")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph BDD{\n  rankdir=TB;\n"))
	assert.Contains(t, out, `[label="x0"]`)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	filename := filepath.Join(t.TempDir(), "t.dot")
	out, err = execute(t, NewDotCommand, testOptions(t), scenarioA, "-o", filename)
	require.NoError(t, err)
	assert.Empty(t, out)
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "style=dashed")

	_, err = execute(t, NewDotCommand, testOptions(t), scenarioA, "--root", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid root")
}

func TestDiagram(t *testing.T) {
	out, err := execute(t, NewDiagramCommand, testOptions(t), scenarioA, "--root", "r")
	require.NoError(t, err)
	var g rudd.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	inner := 0
	for _, v := range g.Nodes {
		if !v.Terminal {
			inner++
		}
	}
	assert.Equal(t, 2*inner, len(g.Edges))
	// R holds for three of the four codes, it is !x0 | !x1
	assert.Equal(t, 2, inner)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "conf.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("nodesize: 100\ncachesize: 31\ncheckorder: true\n"), 0o644))
	c, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, &Config{Nodesize: 100, Cachesize: 31, Checkorder: true}, c)
	assert.Len(t, c.options(zaptest.NewLogger(t)), 4)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	c, err = LoadConfig(empty)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, c)
	assert.Len(t, c.options(zaptest.NewLogger(t)), 2)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("nodesize: 10\nunknown: 3\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(bad, []byte("cachesize: -4\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	// the root command reads the file given with --config
	root := NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"--config", filename, "reach", scenarioA})
	require.NoError(t, root.Execute())
	assert.Equal(t, "s0\ns1\ns2\n", buf.String())

	root = NewRootCommand()
	root.SetArgs([]string{"--config", filepath.Join(dir, "missing.yaml"), "reach", scenarioA})
	assert.Error(t, root.Execute())
}
