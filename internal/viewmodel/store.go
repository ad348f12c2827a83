package viewmodel

import "sync"

// Store holds the current state snapshot of a view-model and publishes every
// change to its subscribers. Snapshots are treated as immutable: Update must
// return a new value instead of mutating slices of the old one.
type Store[S any] struct {
	mu    sync.Mutex
	value S
	subs  map[int]chan S
	next  int
}

func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{value: initial, subs: make(map[int]chan S)}
}

func (s *Store[S]) Value() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Update replaces the state with fn(current) and returns the new snapshot.
func (s *Store[S]) Update(fn func(S) S) S {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	for _, ch := range s.subs {
		offer(ch, s.value)
	}
	return s.value
}

// Subscribe returns a channel that first receives the current snapshot and
// then the latest one after each change. Slow readers skip intermediate
// snapshots. The returned func unsubscribes and closes the channel.
func (s *Store[S]) Subscribe() (<-chan S, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan S, 1)
	ch <- s.value
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// offer replaces whatever is buffered in ch with v. Only the publisher sends,
// under the store lock, so the send cannot block.
func offer[S any](ch chan S, v S) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
