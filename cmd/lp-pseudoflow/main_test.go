package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
	"github.com/polinapolina/dense-subgraphs-with-similar-edges/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diamondDimacs = `c diamond
p max 4 5
n 1 s
n 4 t
a 1 2 3
a 1 3 2
a 2 4 2
a 3 4 3
a 2 3 1
`

// bottleneck has a single minimum cut, behind node 2.
const bottleneckDimacs = `p max 4 3
n 1 s
n 4 t
a 1 2 5
a 2 3 1
a 3 4 5
`

const chainDimacs = `p max 5 8
n 1 s
n 5 t
a 1 2 0
a 1 3 0
a 1 4 0
a 2 3 1
a 3 4 1
a 2 5 1
a 3 5 2
a 4 5 3
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parse(t *testing.T, args ...string) Config {
	t.Helper()
	fs := flag.NewFlagSet("lp-pseudoflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := ParseFlags(fs, args)
	require.NoError(t, err)
	return cfg
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Run(parse(t, args...), &out, metrics.NewRecorder(prometheus.NewRegistry())))
	return out.String()
}

func TestParseFlags(t *testing.T) {
	cfg := parse(t, "-g", "x.max", "-sweep", "1, 2.5,4", "-lifo", "-eps", "1e-6", "-flow")
	assert.Equal(t, "x.max", cfg.GraphPath)
	assert.Equal(t, []float64{1, 2.5, 4}, cfg.Sweep)
	assert.True(t, cfg.Solver.LifoBuckets)
	assert.Equal(t, 1e-6, cfg.Solver.Epsilon)
	assert.True(t, cfg.Flow)
	assert.False(t, cfg.Check)

	fs := flag.NewFlagSet("lp-pseudoflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := ParseFlags(fs, nil)
	assert.ErrorIs(t, err, errNoGraph)

	fs = flag.NewFlagSet("lp-pseudoflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = ParseFlags(fs, []string{"-g", "x.max", "-sweep", "1,two"})
	assert.Error(t, err)
}

func TestRunValue(t *testing.T) {
	path := writeTemp(t, "diamond.max", diamondDimacs)
	assert.Equal(t, "s 5\n", run(t, "-g", path))
	assert.Equal(t, "s 5\n", run(t, "-g", path, "-check", "-lifo", "-inv"))
}

func TestRunFlow(t *testing.T) {
	path := writeTemp(t, "diamond.max", diamondDimacs)
	out := run(t, "-g", path, "-flow", "-check")

	net, err := graph.ReadDimacsFile(path)
	require.NoError(t, err)
	flows, value, err := graph.ReadFlow(strings.NewReader(out), net)
	require.NoError(t, err)
	assert.Equal(t, 5.0, value)
	for i, e := range net.Edges {
		assert.LessOrEqual(t, flows[i], e.Capacity)
		assert.GreaterOrEqual(t, flows[i], 0.0)
	}
}

func TestRunCut(t *testing.T) {
	path := writeTemp(t, "bottleneck.max", bottleneckDimacs)
	assert.Equal(t, "v 2\ns 1\n", run(t, "-g", path, "-cut"))
}

func TestRunSweep(t *testing.T) {
	path := writeTemp(t, "chain.max", chainDimacs)
	lines := strings.Split(strings.TrimSpace(run(t, "-g", path, "-sweep", "1,2,4", "-check")), "\n")
	require.Len(t, lines, 4)
	for i, want := range []string{"l 1 3 ", "l 2 6 ", "l 4 6 "} {
		assert.True(t, strings.HasPrefix(lines[i], want), "line %q", lines[i])
	}
	assert.Equal(t, "s 6", lines[3])
}

func TestRunSchedule(t *testing.T) {
	path := writeTemp(t, "chain.max", chainDimacs)
	schedule := writeTemp(t, "sweep.yaml", "edges: 2\nconstant: 1\nparams: [1, 4]\n")
	lines := strings.Split(strings.TrimSpace(run(t, "-g", path, "-schedule", schedule)), "\n")
	require.Len(t, lines, 3)
	// Node 2 keeps its unit source arc; at 4 the sink arcs bound the cut.
	assert.True(t, strings.HasPrefix(lines[0], "l 1 3 "), "line %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "l 4 6 "), "line %q", lines[1])
}

func TestRunRatioSchedule(t *testing.T) {
	path := writeTemp(t, "ratio.max", "p max 4 3\nn 3 s\nn 4 t\na 3 1 0\na 1 2 10\na 2 4 1\n")
	schedule := writeTemp(t, "ratio.yaml", "edges: 1\nratio:\n  total: 4\n  precision: 1e-6\n")
	assert.Equal(t, "r 2 2 1 2 1\ne 1\ns 1\n", run(t, "-g", path, "-schedule", schedule))
}

// pathMetagraphDimacs has edge nodes 1-3 for the path edges ab, bc and cd, vertex nodes 4-7 for
// a to d, and similarities 1 between ab and bc and 0.2 between bc and cd.
const pathMetagraphDimacs = `p par-max 9 20
n 8 s
n 9 t
a 1 2 0.5
a 2 1 0.5
a 2 3 0.1
a 3 2 0.1
a 8 1 0
a 8 2 0
a 8 3 0
a 1 9 0.5
a 2 9 0.6
a 3 9 0.1
a 4 1 1e9
a 5 1 1e9
a 5 2 1e9
a 6 2 1e9
a 6 3 1e9
a 7 3 1e9
a 8 4 0
a 8 5 0
a 8 6 0
a 8 7 0
`

func TestRunLambdaSchedule(t *testing.T) {
	path := writeTemp(t, "path.max", pathMetagraphDimacs)
	schedule := writeTemp(t, "lambda.yaml", "edges: 3\nlambda:\n  min: 0.1\n  max: 1\n")
	lines := strings.Split(strings.TrimSpace(run(t, "-g", path, "-schedule", schedule)), "\n")
	require.Len(t, lines, 8)

	solution := func(line string, lambda, sim, den float64) {
		t.Helper()
		fields := strings.Fields(line)
		require.Len(t, fields, 4)
		require.Equal(t, "m", fields[0])
		for i, want := range []float64{lambda, sim, den} {
			got, err := strconv.ParseFloat(fields[i+1], 64)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9, line)
		}
	}
	solution(lines[0], 0.1, 0.5, 2.0/3)
	assert.Equal(t, []string{"e 1", "e 2"}, lines[1:3])
	solution(lines[3], 1, 0.4, 0.75)
	assert.Equal(t, []string{"e 1", "e 2", "e 3"}, lines[4:7])
	assert.True(t, strings.HasPrefix(lines[7], "s "))
}

func TestRunDump(t *testing.T) {
	path := writeTemp(t, "diamond.max", diamondDimacs)
	dumped := filepath.Join(t.TempDir(), "out.max")
	run(t, "-g", path, "-dump", dumped)

	want, err := graph.ReadDimacsFile(path)
	require.NoError(t, err)
	got, err := graph.ReadDimacsFile(dumped)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunErrors(t *testing.T) {
	rec := metrics.NewRecorder(prometheus.NewRegistry())

	bad := writeTemp(t, "bad.max", "p max 2 1\nn 1 s\nn 2 t\n")
	assert.ErrorIs(t, Run(parse(t, "-g", bad), io.Discard, rec), graph.ErrArcCount)

	chain := writeTemp(t, "chain.max", chainDimacs)
	assert.Error(t, Run(parse(t, "-g", chain, "-sweep", "4,1"), io.Discard, rec))

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	assert.ErrorIs(t, Run(parse(t, "-g", chain, "-schedule", missing), io.Discard, rec), os.ErrNotExist)
}
