package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSyncPass(t *testing.T) {
	before := testutil.ToFloat64(SyncPassTotal.WithLabelValues("topics", "success"))
	RecordSyncPass("topics", "success", 0.25)
	assert.Equal(t, before+1, testutil.ToFloat64(SyncPassTotal.WithLabelValues("topics", "success")))
}

func TestRecordChanges(t *testing.T) {
	beforeUpdated := testutil.ToFloat64(SyncChangesTotal.WithLabelValues("news", "updated"))
	beforeDeleted := testutil.ToFloat64(SyncChangesTotal.WithLabelValues("news", "deleted"))

	RecordChanges("news", 3, 1)

	assert.Equal(t, beforeUpdated+3, testutil.ToFloat64(SyncChangesTotal.WithLabelValues("news", "updated")))
	assert.Equal(t, beforeDeleted+1, testutil.ToFloat64(SyncChangesTotal.WithLabelValues("news", "deleted")))
}

func TestSetChangeListVersion(t *testing.T) {
	SetChangeListVersion("news", 42)
	assert.Equal(t, float64(42), testutil.ToFloat64(ChangeListVersion.WithLabelValues("news")))
}

func TestRecordSyncJob(t *testing.T) {
	before := testutil.ToFloat64(SyncJobTotal.WithLabelValues("retry"))
	RecordSyncJob("retry")
	assert.Equal(t, before+1, testutil.ToFloat64(SyncJobTotal.WithLabelValues("retry")))
}
