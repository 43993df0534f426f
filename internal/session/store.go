// Package session keeps each browser session's selection in memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Store is a bounded, thread-safe LRU of selections with an idle TTL.
// Unknown and expired sessions read as the default selection.
type Store struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock
	onSize     func(int)

	mu      sync.Mutex
	entries map[string]*entry
	head    *entry // most recently used
	tail    *entry // least recently used
}

type entry struct {
	id       string
	sel      domain.Selection
	lastSeen time.Time
	prev     *entry
	next     *entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the real clock, for tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithSizeObserver registers fn to receive the entry count after every change.
func WithSizeObserver(fn func(int)) Option {
	return func(s *Store) { s.onSize = fn }
}

// NewStore creates a store holding at most maxEntries sessions, each expiring
// after ttl without access.
func NewStore(maxEntries int, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clockwork.NewRealClock(),
		onSize:     func(int) {},
		entries:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the selection for id and refreshes its last access time.
func (s *Store) Get(id string) domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return domain.DefaultSelection()
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		s.drop(e)
		return domain.DefaultSelection()
	}
	e.lastSeen = now
	s.moveToFront(e)
	return e.sel
}

// Put stores sel for id, replacing any previous value whole.
func (s *Store) Put(id string, sel domain.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.entries[id]; ok {
		e.sel = sel
		e.lastSeen = now
		s.moveToFront(e)
		return
	}

	e := &entry{id: id, sel: sel, lastSeen: now}
	s.entries[id] = e
	s.addToFront(e)

	if len(s.entries) > s.maxEntries {
		s.drop(s.tail)
	}
	s.onSize(len(s.entries))
}

// Reset stores the default selection for id and returns it.
func (s *Store) Reset(id string) domain.Selection {
	sel := domain.DefaultSelection()
	s.Put(id, sel)
	return sel
}

// Len returns the number of stored sessions, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	// Entries are ordered by recency, so expiry is contiguous from the tail.
	for s.tail != nil && s.expired(s.tail, now) {
		s.drop(s.tail)
		removed++
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			s.Sweep()
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return now.Sub(e.lastSeen) >= s.ttl
}

func (s *Store) drop(e *entry) {
	delete(s.entries, e.id)
	s.remove(e)
	s.onSize(len(s.entries))
}

func (s *Store) moveToFront(e *entry) {
	if e == s.head {
		return
	}
	s.remove(e)
	s.addToFront(e)
}

func (s *Store) addToFront(e *entry) {
	e.next = s.head
	e.prev = nil
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *Store) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
