// Package demo_network serves a bundled topic and news dataset as if it came
// from the backend. Every item appears exactly once in its change list, in
// file order.
package demo_network

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"update-sync/domain"
)

//go:embed data/topics.json data/news.json
var assets embed.FS

// DataSource implements remote_port.RemoteDataSource over the bundled assets.
type DataSource struct {
	once   sync.Once
	err    error
	topics []domain.NetworkTopic
	news   []domain.NetworkNewsResource
}

func NewDataSource() *DataSource {
	return &DataSource{}
}

func (d *DataSource) load() error {
	d.once.Do(func() {
		if err := decodeAsset("data/topics.json", &d.topics); err != nil {
			d.err = err
			return
		}
		d.err = decodeAsset("data/news.json", &d.news)
	})
	return d.err
}

func decodeAsset(name string, out any) error {
	data, err := assets.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (d *DataSource) GetTopics(ctx context.Context, ids []string) ([]domain.NetworkTopic, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return filterByID(d.topics, ids, func(t domain.NetworkTopic) string { return t.ID }), nil
}

func (d *DataSource) GetNewsResources(ctx context.Context, ids []string) ([]domain.NetworkNewsResource, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return filterByID(d.news, ids, func(n domain.NetworkNewsResource) string { return n.ID }), nil
}

func (d *DataSource) GetTopicChangeList(ctx context.Context, after int) ([]domain.ChangeList, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return changeList(d.topics, after, func(t domain.NetworkTopic) string { return t.ID }), nil
}

func (d *DataSource) GetNewsResourceChangeList(ctx context.Context, after int) ([]domain.ChangeList, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return changeList(d.news, after, func(n domain.NetworkNewsResource) string { return n.ID }), nil
}

// filterByID keeps file order. A nil ids slice returns everything.
func filterByID[T any](items []T, ids []string, id func(T) string) []T {
	if ids == nil {
		return append([]T(nil), items...)
	}
	wanted := domain.NewIDSet(ids...)
	out := make([]T, 0, len(ids))
	for _, item := range items {
		if wanted.Has(id(item)) {
			out = append(out, item)
		}
	}
	return out
}

// changeList numbers items from 1 so that version 0 keeps meaning "never synced".
func changeList[T any](items []T, after int, id func(T) string) []domain.ChangeList {
	out := make([]domain.ChangeList, 0, len(items))
	for i, item := range items {
		version := i + 1
		if version <= after {
			continue
		}
		out = append(out, domain.ChangeList{ID: id(item), ChangeListVersion: version})
	}
	return out
}
