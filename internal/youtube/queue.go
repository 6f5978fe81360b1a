package youtube

import (
	"sync"
	"time"

	"github.com/varoOP/videoplayer/internal/domain"
)

// Queue is the ordered list of videos queued on the YouTube page.
// It only grows until Clear is called and is never persisted.
type Queue struct {
	mu      sync.RWMutex
	entries []domain.QueueEntry
	now     func() time.Time
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Add appends an entry, stamping AddedAt when it is unset
func (q *Queue) Add(entry domain.QueueEntry) domain.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	if entry.AddedAt.IsZero() {
		entry.AddedAt = q.now()
	}
	q.entries = append(q.entries, entry)
	return entry
}

// AddURL extracts the video id from raw and appends it.
// Nothing is appended when raw carries no recognizable marker.
func (q *Queue) AddURL(raw string) (domain.QueueEntry, bool) {
	id, ok := ExtractVideoID(raw)
	if !ok {
		return domain.QueueEntry{}, false
	}
	return q.Add(domain.QueueEntry{VideoID: id}), true
}

// SetTitle fills the title of every entry for videoID that has none yet
func (q *Queue) SetTitle(videoID, title string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.entries {
		if q.entries[i].VideoID == videoID && q.entries[i].Title == "" {
			q.entries[i].Title = title
		}
	}
}

// Entries returns a copy of the queue in insertion order
func (q *Queue) Entries() []domain.QueueEntry {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]domain.QueueEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}

func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = nil
}
