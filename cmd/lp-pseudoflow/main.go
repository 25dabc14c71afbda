package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
	"github.com/polinapolina/dense-subgraphs-with-similar-edges/metrics"
	"github.com/polinapolina/dense-subgraphs-with-similar-edges/pseudoflow"
	"github.com/polinapolina/dense-subgraphs-with-similar-edges/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var errNotOptimal = errors.New("flow failed the optimality check")

func main() {
	cfg, err := ParseFlags(flag.CommandLine, os.Args[1:])
	if cfg.NoColour {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(cfg.Debug)
	if errors.Is(err, errNoGraph) {
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Bad arguments.")
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	if cfg.MetricsAddr != "" {
		go func() {
			log.Info().Msg("Serving metrics on " + cfg.MetricsAddr)
			log.Error().Err(http.ListenAndServe(cfg.MetricsAddr, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))).Msg("Metrics server stopped.")
		}()
	}

	out := bufio.NewWriter(os.Stdout)
	err = Run(cfg, out, rec)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Run failed.")
	}

	if cfg.MetricsAddr != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		log.Info().Msg("Done. Waiting for an interrupt to stop serving metrics.")
		<-ctx.Done()
	}
}

// Run reads the network, solves it as cfg asks and writes results to out.
func Run(cfg Config, out io.Writer, rec *metrics.Recorder) error {
	watch := utils.Watch{}
	watch.Start()

	file := utils.OpenFile(cfg.GraphPath)
	net, err := graph.ReadDimacs(file)
	file.Close()
	if err != nil {
		return err
	}
	log.Info().Msg("Read " + utils.V(net.NumNodes) + " nodes and " + utils.V(len(net.Edges)) + " arcs in (ms) " + utils.V(watch.Lap().Milliseconds()))
	log.Debug().Msg("Source capacity " + utils.V(net.SourceCapacity()))

	if cfg.DumpPath != "" {
		watch.Pause()
		err := dump(cfg.DumpPath, net)
		watch.UnPause()
		if err != nil {
			return err
		}
	}

	s, err := pseudoflow.New(net, cfg.Solver)
	if err != nil {
		return err
	}
	defer s.Release()
	log.Info().Msg("Built solver with " + utils.V(s.NumArcs()) + " arcs in (ms) " + utils.V(watch.Lap().Milliseconds()))

	var schedule *Schedule
	switch {
	case cfg.SchedulePath != "":
		if schedule, err = LoadSchedule(cfg.SchedulePath); err != nil {
			return err
		}
	case len(cfg.Sweep) > 0:
		schedule = &Schedule{Params: cfg.Sweep}
	}

	if schedule == nil {
		if err := s.InitializePreflow(); err != nil {
			return err
		}
		err := s.Solve()
		elapsed := watch.Lap()
		rec.ObserveSolve(elapsed, s.Stats(), s.MinCutValue(), sourceSide(s), err)
		if err != nil {
			return err
		}
		log.Info().Msg("Solved in (ms) " + utils.V(elapsed.Milliseconds()))
	} else if err := runSchedule(s, schedule, out, rec, &watch); err != nil {
		return err
	}
	log.Info().Object("stats", s.Stats()).Float64("cut", s.MinCutValue()).Msg("Min cut")
	utils.MemoryStats()

	if cfg.Cut {
		if err := writeCut(out, s); err != nil {
			return err
		}
	}

	defer func() {
		log.Info().Msg("Total (ms) " + utils.V(watch.Elapsed().Milliseconds()) + ", wall (ms) " + utils.V(watch.AbsoluteElapsed().Milliseconds()))
	}()
	if !cfg.Flow && !cfg.Check {
		_, err := fmt.Fprintf(out, "s %s\n", utils.V(s.MinCutValue()))
		return err
	}

	value := s.MinCutValue()
	if err := s.RecoverFlow(); err != nil {
		return err
	}
	log.Info().Msg("Recovered flow in (ms) " + utils.V(watch.Lap().Milliseconds()))

	if cfg.Check {
		if report := s.CheckOptimality(); !report.OK() {
			return fmt.Errorf("%w: %v", errNotOptimal, report.Messages)
		}
	}
	if cfg.Flow {
		return graph.WriteFlow(out, net, s.Flows(), value)
	}
	_, err = fmt.Fprintf(out, "s %s\n", utils.V(value))
	return err
}

func runSchedule(s *pseudoflow.Solver, sc *Schedule, out io.Writer, rec *metrics.Recorder, watch *utils.Watch) error {
	s.ResetStats()
	if sc.Lambda != nil {
		res, err := sc.Search(s)
		elapsed := watch.Lap()
		rec.ObserveSolve(elapsed, s.Stats(), s.MinCutValue(), sourceSide(s), err)
		if err != nil {
			return err
		}
		log.Info().Msg("Searched " + utils.V(res.Solves) + " lambdas in (ms) " + utils.V(elapsed.Milliseconds()) +
			", found " + utils.V(len(res.Solutions)) + " distinct solutions")

		for _, sol := range res.Solutions {
			if _, err := fmt.Fprintf(out, "m %s %s %s\n", utils.V(sol.Lambda), utils.V(sol.Similarity), utils.V(sol.Density)); err != nil {
				return err
			}
			if err := writeSelected(out, sol.Selected); err != nil {
				return err
			}
		}
		return nil
	}
	if sc.Ratio != nil {
		res, err := sc.Iterate(s)
		if err != nil {
			return err
		}
		elapsed := watch.Lap()
		rec.ObserveSolve(elapsed, s.Stats(), s.MinCutValue(), sourceSide(s), nil)
		log.Info().Msg("Iterated source capacity " + utils.V(res.Iterations) + " times in (ms) " + utils.V(elapsed.Milliseconds()) +
			", selected " + utils.V(utils.CountTrue(res.Selected)) + " of " + utils.V(len(res.Selected)))

		if _, err := fmt.Fprintf(out, "r %d %s %s %s %s\n", res.Iterations, utils.V(res.Capacity), utils.V(res.Gain),
			utils.V(res.Similarity), utils.V(res.Density)); err != nil {
			return err
		}
		return writeSelected(out, res.Selected)
	}

	points, err := sc.Sweep(s)
	elapsed := watch.Lap()
	rec.ObserveSweep(elapsed, s.Stats(), points)
	if err != nil {
		return err
	}
	log.Info().Msg("Swept " + utils.V(len(points)) + " parameters in (ms) " + utils.V(elapsed.Milliseconds()))
	for _, p := range points {
		if _, err := fmt.Fprintf(out, "l %s %s %d\n", utils.V(p.Param), utils.V(p.CutValue), p.SourceSide); err != nil {
			return err
		}
	}
	return nil
}

func sourceSide(s *pseudoflow.Solver) int {
	edges, nodes := s.MinCutSizes(s.NumNodes())
	return edges + nodes
}

func writeSelected(out io.Writer, selected []bool) error {
	for i, sel := range selected {
		if sel {
			if _, err := fmt.Fprintf(out, "e %d\n", i+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCut(out io.Writer, s *pseudoflow.Solver) error {
	for i, in := range s.MinCutPartition(s.NumNodes()) {
		if in {
			if _, err := fmt.Fprintf(out, "v %d\n", i+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func dump(path string, net *graph.Network) error {
	f := utils.CreateFile(path)
	if err := graph.WriteDimacs(f, net); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
