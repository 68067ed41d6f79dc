package menu

// CarouselStore keeps the current 1-based index of every carousel for the
// lifetime of the session, so choices survive redraws and submenu trips.
type CarouselStore struct {
	indices map[string]int
}

// NewCarouselStore returns an empty store.
func NewCarouselStore() *CarouselStore {
	return &CarouselStore{indices: make(map[string]int)}
}

// Get returns the stored index for id, defaulting to 1.
func (s *CarouselStore) Get(id string) int {
	if idx, ok := s.indices[id]; ok {
		return idx
	}
	return 1
}

// Set stores an index. Range checking is the caller's job: every write goes
// through the wrap rule, so an out-of-range value here is a bug upstream.
func (s *CarouselStore) Set(id string, index int) {
	s.indices[id] = index
}

// Advance moves the carousel to its next choice and returns the new index.
// For n choices the index wraps via (index mod n) + 1, keeping it in [1, n].
func (s *CarouselStore) Advance(id string, n int) int {
	next := (s.Get(id) % n) + 1
	s.indices[id] = next
	return next
}
