package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/pseudoflow"
)

// Config is everything the command line selects.
type Config struct {
	GraphPath    string
	Flow         bool
	Check        bool
	Cut          bool
	Sweep        []float64
	SchedulePath string
	DumpPath     string
	MetricsAddr  string
	Debug        int
	NoColour     bool

	Solver pseudoflow.Options
}

var errNoGraph = errors.New("no graph file given")

// ParseFlags reads the command line into a Config. fs must be fresh.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	graphPtr := fs.String("g", "", "Graph file, DIMACS max-flow format.")
	flowPtr := fs.Bool("flow", false, "Recover the flow and print an 'f from to flow' line per arc.")
	checkPtr := fs.Bool("check", false, "Recover the flow and verify it is a maximum flow. Fails the run otherwise.")
	cutPtr := fs.Bool("cut", false, "Print the source side of the minimum cut, one 'v id' line per node.")
	sweepPtr := fs.String("sweep", "", "Comma separated, non-decreasing source capacities to solve at in turn. E.g. \"1,2,4\".")
	schedulePtr := fs.String("schedule", "", "YAML sweep schedule. Overrides -sweep.")
	dumpPtr := fs.String("dump", "", "Write the network as read back out in DIMACS format to this file.")
	metricsPtr := fs.String("metrics", "", "If set, serve Prometheus metrics on the given address:port and wait for an interrupt after solving. E.g. \"0.0.0.0:9090\".")
	epsPtr := fs.Float64("eps", pseudoflow.DefaultEpsilon, "Tolerance under which excess and capacity changes count as zero.")
	lifoPtr := fs.Bool("lifo", false, "Process strong roots of equal label newest first.")
	invPtr := fs.Bool("inv", false, "Verify solver invariants after every step. Slow; for debugging.")
	debugPtr := fs.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace.")
	colourPtr := fs.Bool("nc", false, "Removes the colouring from the log output.")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		GraphPath:    *graphPtr,
		Flow:         *flowPtr,
		Check:        *checkPtr,
		Cut:          *cutPtr,
		SchedulePath: *schedulePtr,
		DumpPath:     *dumpPtr,
		MetricsAddr:  *metricsPtr,
		Debug:        *debugPtr,
		NoColour:     *colourPtr,
		Solver: pseudoflow.Options{
			Epsilon:         *epsPtr,
			LifoBuckets:     *lifoPtr,
			CheckInvariants: *invPtr,
		},
	}
	if cfg.GraphPath == "" {
		return cfg, errNoGraph
	}
	var err error
	if cfg.Sweep, err = parseSweep(*sweepPtr); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseSweep(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	fields := strings.Split(list, ",")
	params := make([]float64, len(fields))
	for i, f := range fields {
		p, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("sweep value %d: %w", i+1, err)
		}
		params[i] = p
	}
	return params, nil
}
