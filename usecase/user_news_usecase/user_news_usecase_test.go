package user_news_usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"update-sync/domain"
	"update-sync/mocks"
	"update-sync/port/synchronizer_port"
	"update-sync/utils/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeNewsRepository struct {
	mu      sync.Mutex
	queries []domain.NewsResourceQuery
	all     *stream.Signal[[]domain.NewsResource]
}

func (f *fakeNewsRepository) Sync(context.Context, synchronizer_port.Synchronizer) (bool, error) {
	return true, nil
}

func (f *fakeNewsRepository) GetNewsResources(query domain.NewsResourceQuery) stream.Flow[[]domain.NewsResource] {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return stream.Map(f.all.Flow(), func(news []domain.NewsResource) []domain.NewsResource {
		out := make([]domain.NewsResource, 0, len(news))
		for _, n := range news {
			if query.HasNewsFilter() && !query.FilterNewsIDs.Has(n.ID) {
				continue
			}
			if query.HasTopicFilter() && !anyTopicIn(n, query.FilterTopicIDs) {
				continue
			}
			out = append(out, n)
		}
		return out
	})
}

func (f *fakeNewsRepository) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func anyTopicIn(n domain.NewsResource, ids domain.IDSet) bool {
	for _, t := range n.Topics {
		if ids.Has(t.ID) {
			return true
		}
	}
	return false
}

var sampleNews = []domain.NewsResource{
	{ID: "n1", Title: "one", Topics: []domain.Topic{{ID: "t1"}}},
	{ID: "n2", Title: "two", Topics: []domain.Topic{{ID: "t2"}}},
	{ID: "n3", Title: "three", Topics: []domain.Topic{{ID: "t1"}, {ID: "t2"}}},
}

func setup(t *testing.T) (*CompositeUserNewsResourceRepository, *fakeNewsRepository, *stream.Signal[domain.UserData]) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userData := stream.NewSignalWith(domain.DefaultUserData())
	userRepo := mocks.NewMockUserDataRepository(ctrl)
	userRepo.EXPECT().UserData().DoAndReturn(userData.Flow).AnyTimes()

	news := &fakeNewsRepository{all: stream.NewSignalWith(sampleNews)}
	return NewCompositeUserNewsResourceRepository(news, userRepo), news, userData
}

func ids(list []domain.UserNewsResource) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.ID)
	}
	return out
}

func collect(ctx context.Context, f stream.Flow[[]domain.UserNewsResource]) <-chan []domain.UserNewsResource {
	ch := make(chan []domain.UserNewsResource, 16)
	go func() {
		_ = f.Collect(ctx, func(v []domain.UserNewsResource) error {
			ch <- v
			return nil
		})
	}()
	return ch
}

func next(t *testing.T, ch <-chan []domain.UserNewsResource) []domain.UserNewsResource {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for emission")
		return nil
	}
}

func TestObserveAll_JoinsUserState(t *testing.T) {
	repo, _, userData := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userData.Set(domain.DefaultUserData().
		WithTopicFollowed("t1", true).
		WithNewsResourceBookmarked("n2", true).
		WithNewsResourcesViewed([]string{"n3"}, true))

	got, err := stream.First(ctx, repo.ObserveAll(domain.NewsResourceQuery{}))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.True(t, got[0].FollowableTopics[0].IsFollowed)
	assert.False(t, got[0].IsSaved)
	assert.True(t, got[1].IsSaved)
	assert.True(t, got[2].HasBeenViewed)
	assert.Equal(t, []domain.FollowableTopic{
		{Topic: domain.Topic{ID: "t1"}, IsFollowed: true},
		{Topic: domain.Topic{ID: "t2"}, IsFollowed: false},
	}, got[2].FollowableTopics)
}

func TestObserveAll_RecomputesOnUserDataChange(t *testing.T) {
	repo, _, userData := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := collect(ctx, repo.ObserveAll(domain.NewsResourceQuery{FilterNewsIDs: domain.NewIDSet("n1")}))
	first := next(t, ch)
	require.Len(t, first, 1)
	assert.False(t, first[0].IsSaved)

	userData.Set(domain.DefaultUserData().WithNewsResourceBookmarked("n1", true))
	second := next(t, ch)
	require.Len(t, second, 1)
	assert.True(t, second[0].IsSaved)
}

func TestObserveAllForFollowedTopics_EmptySetSkipsQuery(t *testing.T) {
	repo, news, userData := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := collect(ctx, repo.ObserveAllForFollowedTopics())
	assert.Empty(t, next(t, ch))
	assert.Zero(t, news.queryCount())

	userData.Set(domain.DefaultUserData().WithTopicFollowed("t1", true))
	assert.Equal(t, []string{"n1", "n3"}, ids(next(t, ch)))
	assert.Equal(t, 1, news.queryCount())
}

func TestObserveAllForFollowedTopics_SameSetDoesNotResubscribe(t *testing.T) {
	repo, news, userData := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	followed := domain.DefaultUserData().WithTopicFollowed("t2", true)
	userData.Set(followed)

	ch := collect(ctx, repo.ObserveAllForFollowedTopics())
	assert.Equal(t, []string{"n2", "n3"}, ids(next(t, ch)))

	userData.Set(followed.WithNewsResourceBookmarked("n2", true))
	updated := next(t, ch)
	assert.Equal(t, []string{"n2", "n3"}, ids(updated))
	assert.True(t, updated[0].IsSaved)
	assert.Equal(t, 1, news.queryCount())
}

func TestObserveAllBookmarked(t *testing.T) {
	repo, news, userData := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := collect(ctx, repo.ObserveAllBookmarked())
	assert.Empty(t, next(t, ch))

	userData.Set(domain.DefaultUserData().WithNewsResourceBookmarked("n3", true))
	got := next(t, ch)
	assert.Equal(t, []string{"n3"}, ids(got))
	assert.True(t, got[0].IsSaved)

	// the previous inner flow may still deliver one recompute before the switch
	userData.Set(domain.DefaultUserData())
	for latest := next(t, ch); len(latest) > 0; latest = next(t, ch) {
		assert.Equal(t, []string{"n3"}, ids(latest))
	}
	assert.Equal(t, 1, news.queryCount())
}
