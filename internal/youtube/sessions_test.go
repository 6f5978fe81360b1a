package youtube

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_Get(t *testing.T) {
	s := NewSessions()

	id, q := s.Get("")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	q.AddURL("https://youtu.be/abc")

	sameID, sameQueue := s.Get(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, q, sameQueue)
	assert.Equal(t, 1, sameQueue.Len())

	otherID, other := s.Get("garbage")
	assert.NotEqual(t, "garbage", otherID)
	assert.NotEqual(t, id, otherID)
	assert.Equal(t, 0, other.Len())
	assert.Equal(t, 2, s.Len())
}

func TestSessions_KeepsKnownShapeIDs(t *testing.T) {
	s := NewSessions()
	id := uuid.NewString()

	got, _ := s.Get(id)
	assert.Equal(t, id, got)
}

func TestSessions_Sweep(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions()
	s.now = func() time.Time { return now }

	stale, _ := s.Get("")
	now = now.Add(45 * time.Minute)
	fresh, _ := s.Get("")
	now = now.Add(20 * time.Minute)

	removed := s.Sweep(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())

	got, _ := s.Get(fresh)
	assert.Equal(t, fresh, got)

	_, q := s.Get(stale)
	assert.Equal(t, 0, q.Len())
}
