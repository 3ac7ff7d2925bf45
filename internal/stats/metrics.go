package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/snipsync/snipsync/internal/models"
)

// Metrics exports session counters to Prometheus. Used in daemon mode when
// a metrics listener is configured.
type Metrics struct {
	sessions          *prometheus.CounterVec
	recordsUploaded   prometheus.Counter
	recordsDownloaded prometheus.Counter
	conflictsResolved prometheus.Counter
	conflictsQueued   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snipsync",
			Name:      "sessions_total",
			Help:      "Sync sessions by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		recordsUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snipsync",
			Name:      "records_uploaded_total",
			Help:      "Records accepted by the remote store.",
		}),
		recordsDownloaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snipsync",
			Name:      "records_downloaded_total",
			Help:      "Remote records applied locally.",
		}),
		conflictsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snipsync",
			Name:      "conflicts_resolved_total",
			Help:      "Conflicts resolved automatically.",
		}),
		conflictsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snipsync",
			Name:      "conflicts_queued_total",
			Help:      "Conflicts queued for manual resolution.",
		}),
	}

	reg.MustRegister(
		m.sessions,
		m.recordsUploaded,
		m.recordsDownloaded,
		m.conflictsResolved,
		m.conflictsQueued,
	)

	return m
}

func (m *Metrics) observeSession(session *models.SyncSession) {
	outcome := "failed"
	if session.Succeeded() {
		outcome = "success"
	}
	m.sessions.WithLabelValues(session.Trigger, outcome).Inc()
	m.recordsUploaded.Add(float64(session.RecordsUploaded))
	m.recordsDownloaded.Add(float64(session.RecordsDownloaded))
	m.conflictsResolved.Add(float64(session.ConflictsResolved))
	m.conflictsQueued.Add(float64(session.ConflictsQueued))
}
