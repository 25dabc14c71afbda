// Package metrics exports solver work counters and cut values to Prometheus.
package metrics

import (
	"time"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/pseudoflow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pseudoflow"

// Recorder holds the solver collectors. All of them are registered on the Registerer given to
// NewRecorder, so tests and the command can each use a private registry.
type Recorder struct {
	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	work          *prometheus.CounterVec
	minCut        prometheus.Gauge
	sourceSide    prometheus.Gauge
	sweepPoints   prometheus.Counter
	sweepDuration prometheus.Histogram
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		// Labels: "ok", "error"
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solves by result",
		}, []string{"result"}),
		solveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solve duration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		// Labels: "pushes", "mergers", "relabels", "gaps", "arc_scans"
		work: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Solver operations by kind",
		}, []string{"kind"}),
		minCut: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "min_cut_value",
			Help:      "Capacity of the last minimum cut",
		}),
		sourceSide: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "source_side_nodes",
			Help:      "Non-terminal nodes on the source side of the last cut",
		}),
		sweepPoints: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_points_total",
			Help:      "Parameter values solved by sweeps",
		}),
		sweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Whole sweep duration",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// ObserveSolve records one solve. st is the work done by that solve alone.
func (r *Recorder) ObserveSolve(d time.Duration, st pseudoflow.Stats, cut float64, sourceSide int, err error) {
	r.solveDuration.Observe(d.Seconds())
	if err != nil {
		r.solves.WithLabelValues("error").Inc()
		return
	}
	r.solves.WithLabelValues("ok").Inc()
	r.addWork(st)
	r.minCut.Set(cut)
	r.sourceSide.Set(float64(sourceSide))
}

// ObserveSweep records a sweep and the work it did. The gauges take the last point.
func (r *Recorder) ObserveSweep(d time.Duration, st pseudoflow.Stats, points []pseudoflow.SweepPoint) {
	r.sweepDuration.Observe(d.Seconds())
	r.sweepPoints.Add(float64(len(points)))
	r.addWork(st)
	if len(points) > 0 {
		last := points[len(points)-1]
		r.minCut.Set(last.CutValue)
		r.sourceSide.Set(float64(last.SourceSide))
	}
}

func (r *Recorder) addWork(st pseudoflow.Stats) {
	r.work.WithLabelValues("pushes").Add(float64(st.Pushes))
	r.work.WithLabelValues("mergers").Add(float64(st.Mergers))
	r.work.WithLabelValues("relabels").Add(float64(st.Relabels))
	r.work.WithLabelValues("gaps").Add(float64(st.Gaps))
	r.work.WithLabelValues("arc_scans").Add(float64(st.ArcScans))
}
