// Package changelist_sync_usecase reconciles one local collection with its
// remote counterpart through a versioned change feed.
package changelist_sync_usecase

import (
	"context"
	"log/slog"
	"time"

	"update-sync/domain"
	"update-sync/port/synchronizer_port"
	"update-sync/utils/logger"
	"update-sync/utils/metrics"
	"update-sync/utils/otel"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	CollectionTopics        = "topics"
	CollectionNewsResources = "news_resources"
)

// Collection binds the algorithm to one synced collection.
type Collection struct {
	Name string
	// ReadVersion picks this collection's cursor out of the shared record.
	ReadVersion func(domain.ChangeListVersions) int
	// WriteVersion returns a copy of the record with this collection's cursor replaced.
	WriteVersion func(domain.ChangeListVersions, int) domain.ChangeListVersions
	// FetchChangeList returns entries with a version greater than after.
	FetchChangeList func(ctx context.Context, after int) ([]domain.ChangeList, error)
	// DeleteModels removes ids locally. Empty input is a no-op.
	DeleteModels func(ctx context.Context, ids []string) error
	// UpdateModels fetches and upserts ids. Empty input is a no-op.
	UpdateModels func(ctx context.Context, ids []string) error
}

func TopicVersion(v domain.ChangeListVersions) int { return v.TopicVersion }

func WithTopicVersion(v domain.ChangeListVersions, version int) domain.ChangeListVersions {
	v.TopicVersion = version
	return v
}

func NewsResourceVersion(v domain.ChangeListVersions) int { return v.NewsResourceVersion }

func WithNewsResourceVersion(v domain.ChangeListVersions, version int) domain.ChangeListVersions {
	v.NewsResourceVersion = version
	return v
}

// SyncWith runs one pass: read the cursor, fetch newer changes, apply deletes
// and updates, then advance the cursor to the highest version seen. The
// cursor is only written after both apply steps succeed. A false result
// always comes with the error that stopped the pass.
func SyncWith(ctx context.Context, synchronizer synchronizer_port.Synchronizer, c Collection, log *slog.Logger) (bool, error) {
	ctx = logger.WithCollection(ctx, c.Name)
	log = logger.NewContextLogger(log).WithContext(ctx)

	ctx, span := otel.Tracer().Start(ctx, "changelist.SyncWith",
		trace.WithAttributes(attribute.String("sync.collection", c.Name)))
	defer span.End()

	start := time.Now()
	fail := func(stage string, err error) (bool, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, stage)
		metrics.RecordSyncPass(c.Name, "failure", time.Since(start).Seconds())
		log.ErrorContext(ctx, "sync pass failed", "stage", stage, "error", err)
		return false, err
	}

	versions, err := synchronizer.GetChangeListVersions(ctx)
	if err != nil {
		return fail("read_version", err)
	}
	current := c.ReadVersion(versions)
	span.SetAttributes(attribute.Int("sync.version.current", current))

	changes, err := c.FetchChangeList(ctx, current)
	if err != nil {
		return fail("fetch_change_list", err)
	}

	deleted, changed, latest := domain.PartitionChangeList(changes)

	if err := c.DeleteModels(ctx, deleted); err != nil {
		return fail("delete", err)
	}
	if err := c.UpdateModels(ctx, changed); err != nil {
		return fail("update", err)
	}

	next := current
	if len(changes) > 0 {
		next = latest
		err := synchronizer.UpdateChangeListVersions(ctx, func(v domain.ChangeListVersions) domain.ChangeListVersions {
			return c.WriteVersion(v, latest)
		})
		if err != nil {
			return fail("write_version", err)
		}
		metrics.SetChangeListVersion(c.Name, latest)
	}

	metrics.RecordChanges(c.Name, len(changed), len(deleted))
	metrics.RecordSyncPass(c.Name, "success", time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("sync.changes.updated", len(changed)),
		attribute.Int("sync.changes.deleted", len(deleted)),
		attribute.Int("sync.version.next", next),
	)
	log.InfoContext(ctx, "sync pass completed",
		"from_version", current,
		"to_version", next,
		"updated", len(changed),
		"deleted", len(deleted),
		"duration_ms", time.Since(start).Milliseconds())
	return true, nil
}
