package metrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agelookup/internal/logging"
	"agelookup/internal/models"
)

type fakeStore struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: make(map[string]int64)}
}

func (s *fakeStore) IncrementLookupOutcome(_ context.Context, outcome string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.counts[outcome]++
	return nil
}

func (s *fakeStore) GetAllLookupOutcomes(_ context.Context) ([]models.LookupOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []models.LookupOutcome
	for outcome, count := range s.counts {
		out = append(out, models.LookupOutcome{Outcome: outcome, Count: count})
	}
	return out, nil
}

func TestRecorder_RecordLookup_WithoutStore(t *testing.T) {
	m := NewMetricsForTesting()
	r := NewRecorder(m, nil, logging.Discard())

	r.RecordLookup(models.OutcomeSuccess)
	r.RecordLookup(models.OutcomeSuccess)
	r.RecordLookup(models.OutcomeFailure)
	r.Wait()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Lookups.WithLabelValues(models.OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Lookups.WithLabelValues(models.OutcomeFailure)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Lookups.WithLabelValues(models.OutcomeEmpty)))
}

func TestRecorder_RecordLookup_PersistsOutcome(t *testing.T) {
	store := newFakeStore()
	r := NewRecorder(NewMetricsForTesting(), store, logging.Discard())

	r.RecordLookup(models.OutcomeEmpty)
	r.RecordLookup(models.OutcomeNoData)
	r.RecordLookup(models.OutcomeNoData)
	r.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, int64(1), store.counts[models.OutcomeEmpty])
	assert.Equal(t, int64(2), store.counts[models.OutcomeNoData])
}

func TestRecorder_RecordLookup_StoreErrorStillCounts(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	m := NewMetricsForTesting()
	r := NewRecorder(m, store, logging.Discard())

	r.RecordLookup(models.OutcomeSuccess)
	r.Wait()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Lookups.WithLabelValues(models.OutcomeSuccess)))
}

func TestRecorder_ObserveUpstream(t *testing.T) {
	m := NewMetricsForTesting()
	r := NewRecorder(m, nil, logging.Discard())

	r.ObserveUpstream(250 * time.Millisecond)
	r.ObserveUpstream(2 * time.Second)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(m.UpstreamDuration))
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	h := families[0].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), h.GetSampleCount())
	assert.InDelta(t, 2.25, h.GetSampleSum(), 1e-9)
}

func TestOutcomeCollector_Collect(t *testing.T) {
	store := newFakeStore()
	store.counts[models.OutcomeSuccess] = 7
	store.counts[models.OutcomeFailure] = 2

	collector := NewOutcomeCollector(store, logging.Discard())

	expected := `
# HELP agelookup_persisted_lookups_total Total lookup count by outcome, persisted across restarts
# TYPE agelookup_persisted_lookups_total counter
agelookup_persisted_lookups_total{outcome="failure"} 2
agelookup_persisted_lookups_total{outcome="success"} 7
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

func TestOutcomeCollector_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("database unavailable")

	collector := NewOutcomeCollector(store, logging.Discard())
	assert.Equal(t, 0, testutil.CollectAndCount(collector))
}
