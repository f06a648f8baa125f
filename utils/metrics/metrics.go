// Package metrics provides Prometheus metrics for update-sync.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "updatesync"

var (
	// SyncPassTotal counts change list sync passes per collection.
	SyncPassTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_pass_total",
			Help:      "Total number of change list sync passes",
		},
		[]string{"collection", "status"},
	)

	// SyncDuration measures sync pass duration.
	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of change list sync passes in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"collection"},
	)

	// SyncChangesTotal counts applied change list entries.
	SyncChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_changes_total",
			Help:      "Total number of change list entries applied",
		},
		[]string{"collection", "kind"},
	)

	// ChangeListVersion tracks the persisted cursor per collection.
	ChangeListVersion = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "change_list_version",
			Help:      "Last applied change list version",
		},
		[]string{"collection"},
	)

	// NotificationsPostedTotal counts news resources handed to the notifier.
	NotificationsPostedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_posted_total",
			Help:      "Total number of news resources posted as notifications",
		},
	)

	// SyncJobTotal counts sync job runs by result.
	SyncJobTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_job_total",
			Help:      "Total number of sync job runs",
		},
		[]string{"result"},
	)
)

// RecordSyncPass records the outcome of one collection pass.
func RecordSyncPass(collection, status string, duration float64) {
	SyncPassTotal.WithLabelValues(collection, status).Inc()
	SyncDuration.WithLabelValues(collection).Observe(duration)
}

// RecordChanges records how many entries were applied.
func RecordChanges(collection string, updated, deleted int) {
	SyncChangesTotal.WithLabelValues(collection, "updated").Add(float64(updated))
	SyncChangesTotal.WithLabelValues(collection, "deleted").Add(float64(deleted))
}

func SetChangeListVersion(collection string, version int) {
	ChangeListVersion.WithLabelValues(collection).Set(float64(version))
}

func RecordNotifications(count int) {
	NotificationsPostedTotal.Add(float64(count))
}

func RecordSyncJob(result string) {
	SyncJobTotal.WithLabelValues(result).Inc()
}
