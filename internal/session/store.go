package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"elder-advice-agent/internal/model"
)

const (
	// DefaultCapacity is the per-session turn limit.
	DefaultCapacity = 20

	// DefaultTTL is the inactivity window after which a session expires.
	DefaultTTL = 30 * time.Minute

	// maxSessions bounds the number of live sessions held in memory.
	maxSessions = 10000
)

// Store holds bounded per-session conversation history. Sessions expire
// after the inactivity TTL and are purged lazily by the underlying LRU.
// Appends and reads for the same session serialize on the entry mutex;
// different sessions never contend.
type Store struct {
	sessions *expirable.LRU[string, *entry]
	capacity int
}

// entry is one session's turn ring. No back-pointers to the store.
type entry struct {
	mu    sync.Mutex
	turns []model.ConversationTurn
}

// NewStore creates a session store. capacity <= 0 and ttl <= 0 fall back
// to the defaults.
func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *entry](maxSessions, nil, ttl),
		capacity: capacity,
	}
}

// Append records a completed turn for the session, evicting the oldest
// turn when the session is at capacity. Appending also refreshes the
// session's expiry.
func (s *Store) Append(sessionID string, turn model.ConversationTurn) {
	if sessionID == "" {
		return
	}

	e, ok := s.sessions.Get(sessionID)
	if !ok {
		e = &entry{}
		// Add refreshes TTL; a concurrent add for the same key wins
		// arbitrarily, so re-read to converge on one entry.
		s.sessions.Add(sessionID, e)
		if existing, ok := s.sessions.Get(sessionID); ok {
			e = existing
		}
	} else {
		s.sessions.Add(sessionID, e)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.turns = append(e.turns, turn)
	if len(e.turns) > s.capacity {
		e.turns = e.turns[len(e.turns)-s.capacity:]
	}
}

// Recent returns up to n most recent turns in chronological order. An
// unknown or expired session yields an empty slice, not an error.
func (s *Store) Recent(sessionID string, n int) []model.ConversationTurn {
	if sessionID == "" || n <= 0 {
		return nil
	}

	e, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	start := 0
	if len(e.turns) > n {
		start = len(e.turns) - n
	}
	out := make([]model.ConversationTurn, len(e.turns)-start)
	copy(out, e.turns[start:])
	return out
}

// Close removes a session and its history immediately.
func (s *Store) Close(sessionID string) {
	s.sessions.Remove(sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
