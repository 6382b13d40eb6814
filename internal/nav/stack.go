package nav

// entry is one position in the view stack. inst is set while the entry is
// mounted, and kept after it leaves its slot only with PreserveInstances.
type entry struct {
	view View
	inst Instance
}

// viewStack is the ordered view stack, root at index 0.
type viewStack struct {
	entries []*entry
}

// push adds an entry to the top of the stack.
func (s *viewStack) push(e *entry) {
	s.entries = append(s.entries, e)
}

// pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *viewStack) pop() *entry {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// peek returns the top entry without removing it.
func (s *viewStack) peek() *entry {
	return s.at(len(s.entries) - 1)
}

// at returns the entry at index i, or nil if out of range.
func (s *viewStack) at(i int) *entry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

func (s *viewStack) len() int {
	return len(s.entries)
}

func (s *viewStack) contains(e *entry) bool {
	for _, x := range s.entries {
		if x == e {
			return true
		}
	}
	return false
}

// truncate keeps the first n entries and returns the removed ones.
func (s *viewStack) truncate(n int) []*entry {
	if n >= len(s.entries) {
		return nil
	}
	removed := append([]*entry(nil), s.entries[n:]...)
	s.entries = s.entries[:n]
	return removed
}

// replace swaps in a new entry list and returns the old one.
func (s *viewStack) replace(entries []*entry) []*entry {
	old := s.entries
	s.entries = entries
	return old
}

// views returns the stack's views (shallow copy).
func (s *viewStack) views() []View {
	out := make([]View, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.view
	}
	return out
}

// stateBuffer holds the snapshots of covered views, newest last. Each
// snapshot remembers the entry it was taken from, so it can only ever be
// handed back to that entry.
type stateBuffer struct {
	saved []savedState
}

type savedState struct {
	owner *entry
	snap  Snapshot
}

func (b *stateBuffer) push(owner *entry, s Snapshot) {
	b.saved = append(b.saved, savedState{owner: owner, snap: s})
}

// take removes and returns the newest snapshot if it belongs to e.
// Returns nil when e has nothing saved.
func (b *stateBuffer) take(e *entry) Snapshot {
	n := len(b.saved)
	if n == 0 || b.saved[n-1].owner != e {
		return nil
	}
	s := b.saved[n-1].snap
	b.saved = b.saved[:n-1]
	return s
}

// lookup returns the snapshot saved for e, or nil.
func (b *stateBuffer) lookup(e *entry) Snapshot {
	for _, st := range b.saved {
		if st.owner == e {
			return st.snap
		}
	}
	return nil
}

func (b *stateBuffer) len() int {
	return len(b.saved)
}

func (b *stateBuffer) clear() {
	b.saved = b.saved[:0]
}
