package youtube

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	queue    *Queue
	lastSeen time.Time
}

// Sessions keeps one queue per browser session.
// Session ids are random UUIDs handed out in a cookie.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewSessions() *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Get returns the queue of session id, creating the session when needed.
// An empty or malformed id starts a new session; the returned id is the one to
// hand back to the client.
func (s *Sessions) Get(id string) (string, *Queue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{queue: NewQueue()}
		sess.queue.now = s.now
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()

	return id, sess.queue
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many went
func (s *Sessions) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
