package browser

// selection is an insertion-ordered set of absolute file paths. Directory
// paths never enter it; callers gate on the entry type.
type selection struct {
	order  []string
	member map[string]struct{}
}

func newSelection() *selection {
	return &selection{member: make(map[string]struct{})}
}

func (s *selection) Has(path string) bool {
	_, ok := s.member[path]
	return ok
}

// Toggle adds path if absent and removes it if present.
func (s *selection) Toggle(path string) {
	if !s.Has(path) {
		s.Add(path)
		return
	}
	delete(s.member, path)
	for i, p := range s.order {
		if p == path {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *selection) Add(path string) {
	if s.Has(path) {
		return
	}
	s.member[path] = struct{}{}
	s.order = append(s.order, path)
}

func (s *selection) Clear() {
	s.order = s.order[:0]
	s.member = make(map[string]struct{})
}

func (s *selection) Len() int {
	return len(s.order)
}

// Paths returns the selected paths in insertion order.
func (s *selection) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
