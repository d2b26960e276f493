package selection

// State holds selection state
type State struct {
	SelectAll bool
	Checked   *orderedSet
}

// orderedSet is a string set that remembers insertion order
type orderedSet struct {
	index map[string]int
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]int)}
}

func (s *orderedSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *orderedSet) add(id string) {
	if s.has(id) {
		return
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, id)
}

func (s *orderedSet) remove(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.items = append(s.items[:i], s.items[i+1:]...)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
}

func (s *orderedSet) len() int {
	return len(s.items)
}

func (s *orderedSet) slice() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
