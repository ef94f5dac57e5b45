package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Record outcomes.
const (
	OutcomeInserted = "inserted"
	OutcomeSkipped  = "skipped"
	OutcomeErrored  = "errored"
)

var (
	SyncedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replica_sync_records_total",
			Help: "Records processed by sync, by table and outcome",
		},
		[]string{"table", "outcome"},
	)

	SyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replica_sync_runs_total",
			Help: "Sync invocations, by table and response code",
		},
		[]string{"table", "code"},
	)

	SourceFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "replica_source_fetch_duration_seconds",
			Help:    "Latency of upstream fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)
)

// Register adds the sync collectors to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{SyncedRecords, SyncRuns, SourceFetchDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
