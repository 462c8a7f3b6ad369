package watcher

import (
	"sort"
	"sync"
)

// Kind classifies a filesystem change
type Kind int

const (
	KindModified Kind = iota
	KindRenamed
	KindDeleted
)

// Code returns the single-character display code for the kind
func (k Kind) Code() string {
	switch k {
	case KindModified:
		return "M"
	case KindRenamed:
		return "R"
	case KindDeleted:
		return "D"
	}
	return "?"
}

// Change is a single pending filesystem change
type Change struct {
	Kind Kind
	Path string
}

// ChangeSet is the shared buffer of pending changes. Insertions arrive
// from the watcher's event goroutine while the watch loop drains on its
// own cadence, so every access goes through the mutex.
//
// Identity is the full (kind, path) pair: repeated events of one kind on
// a path collapse to a single entry, while different kinds on the same
// path coexist until the next drain.
type ChangeSet struct {
	mu      sync.Mutex
	pending map[Change]struct{}
}

// NewChangeSet creates an empty change set
func NewChangeSet() *ChangeSet {
	return &ChangeSet{pending: make(map[Change]struct{})}
}

// Insert adds a change; inserting an existing (kind, path) pair is a no-op
func (s *ChangeSet) Insert(c Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[c] = struct{}{}
}

// Len reports the number of pending changes
func (s *ChangeSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Drain removes and returns all pending changes sorted by path, or nil
// if none are pending. Snapshot and clear happen under one lock
// acquisition, so no insertion can be lost between them.
func (s *ChangeSet) Drain() []Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	changes := make([]Change, 0, len(s.pending))
	for c := range s.pending {
		changes = append(changes, c)
	}
	s.pending = make(map[Change]struct{})

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	return changes
}
