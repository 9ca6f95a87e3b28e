package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"agelookup/internal/models"
)

const namespace = "agelookup"

var (
	persistedLookupDesc = prometheus.NewDesc(
		namespace+"_persisted_lookups_total",
		"Total lookup count by outcome, persisted across restarts",
		[]string{"outcome"},
		nil,
	)
)

// OutcomeStore persists lookup outcome counts.
type OutcomeStore interface {
	IncrementLookupOutcome(ctx context.Context, outcome string) error
	GetAllLookupOutcomes(ctx context.Context) ([]models.LookupOutcome, error)
}

// Metrics holds the in-process Prometheus collectors for lookups.
type Metrics struct {
	Lookups          *prometheus.CounterVec // labels: outcome={empty,success,no_data,failure}
	UpstreamDuration prometheus.Histogram
}

// NewMetrics creates and registers lookup metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Lookups, m.UpstreamDuration)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Age lookups by outcome.",
		}, []string{"outcome"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Age-estimation API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// OutcomeCollector is a custom Prometheus collector that reads persisted
// lookup outcome counts from the store on each scrape.
type OutcomeCollector struct {
	store  OutcomeStore
	logger *slog.Logger
}

// NewOutcomeCollector creates a collector over store.
func NewOutcomeCollector(store OutcomeStore, logger *slog.Logger) *OutcomeCollector {
	return &OutcomeCollector{store: store, logger: logger}
}

// Describe sends the metric descriptor to the channel.
func (c *OutcomeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- persistedLookupDesc
}

// Collect queries the store for all outcome counts and emits them as counters.
func (c *OutcomeCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	outcomes, err := c.store.GetAllLookupOutcomes(ctx)
	if err != nil {
		c.logger.Error("failed to collect lookup outcome metrics", "error", err)
		return
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(
			persistedLookupDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Outcome,
		)
	}
}

// Recorder records lookup outcomes and upstream timings.
// Persisting to the store is asynchronous and never blocks a page render.
type Recorder struct {
	metrics *Metrics
	store   OutcomeStore // nil when persistence is disabled
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewRecorder creates a recorder. store may be nil.
func NewRecorder(m *Metrics, store OutcomeStore, logger *slog.Logger) *Recorder {
	return &Recorder{metrics: m, store: store, logger: logger}
}

// RecordLookup counts a lookup outcome.
func (r *Recorder) RecordLookup(outcome string) {
	r.metrics.Lookups.WithLabelValues(outcome).Inc()

	if r.store == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.IncrementLookupOutcome(ctx, outcome); err != nil {
			r.logger.Error("failed to record lookup outcome", "outcome", outcome, "error", err)
		}
	}()
}

// ObserveUpstream records the duration of one age-estimation API call.
func (r *Recorder) ObserveUpstream(d time.Duration) {
	r.metrics.UpstreamDuration.Observe(d.Seconds())
}

// Wait blocks until pending outcome writes have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}
