package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionChangeList(t *testing.T) {
	tests := map[string]struct {
		changes     []ChangeList
		wantDeleted []string
		wantChanged []string
		wantMax     int
	}{
		"empty": {},
		"updates and deletes": {
			changes: []ChangeList{
				{ID: "42", ChangeListVersion: 8},
				{ID: "43", ChangeListVersion: 9, IsDelete: true},
			},
			wantDeleted: []string{"43"},
			wantChanged: []string{"42"},
			wantMax:     9,
		},
		"later delete wins over earlier update": {
			changes: []ChangeList{
				{ID: "1", ChangeListVersion: 3},
				{ID: "1", ChangeListVersion: 5, IsDelete: true},
			},
			wantDeleted: []string{"1"},
			wantMax:     5,
		},
		"later update wins over earlier delete regardless of order": {
			changes: []ChangeList{
				{ID: "1", ChangeListVersion: 7},
				{ID: "1", ChangeListVersion: 4, IsDelete: true},
			},
			wantChanged: []string{"1"},
			wantMax:     7,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			deleted, changed, maxVersion := PartitionChangeList(tc.changes)
			assert.Equal(t, tc.wantDeleted, deleted)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.wantMax, maxVersion)
		})
	}
}

func TestIDSet(t *testing.T) {
	s := NewIDSet("a", "b")
	assert.True(t, s.With("c").Has("c"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []string{"b"}, s.Without("a").Sorted())
	assert.Equal(t, []string{"a"}, s.Minus(NewIDSet("b")).Sorted())
	assert.True(t, s.Equal(NewIDSet("b", "a")))

	var nilSet IDSet
	assert.False(t, nilSet.Has("a"))
	assert.Equal(t, 0, nilSet.Len())
}

func TestNewUserNewsResource(t *testing.T) {
	news := NewsResource{
		ID:     "n1",
		Title:  "Title",
		Topics: []Topic{{ID: "t1"}, {ID: "t2"}},
	}
	user := DefaultUserData().
		WithTopicFollowed("t2", true).
		WithNewsResourceBookmarked("n1", true)

	got := NewUserNewsResource(news, user)

	assert.True(t, got.IsSaved)
	assert.False(t, got.HasBeenViewed)
	assert.Equal(t, []FollowableTopic{
		{Topic: Topic{ID: "t1"}, IsFollowed: false},
		{Topic: Topic{ID: "t2"}, IsFollowed: true},
	}, got.FollowableTopics)
}
