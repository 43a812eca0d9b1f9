package ownership

// scores accumulates points per component, remembering insertion order.
type scores struct {
	order  []string
	points map[string]int
}

func newScores() *scores {
	return &scores{points: make(map[string]int)}
}

func (s *scores) add(component string, n int) {
	if _, ok := s.points[component]; !ok {
		s.order = append(s.order, component)
	}
	s.points[component] += n
}

func (s *scores) merge(other *scores) {
	for _, c := range other.order {
		s.add(c, other.points[c])
	}
}

// best returns the highest-scoring component. Ties go to the component that
// scored first. Components with no positive score never win.
func (s *scores) best() (string, bool) {
	return s.bestIn(s.order)
}

// bestIn is best with ties broken by position in order instead of insertion.
func (s *scores) bestIn(order []string) (string, bool) {
	winner, top := "", 0
	for _, c := range order {
		if p := s.points[c]; p > top {
			winner, top = c, p
		}
	}
	return winner, top > 0
}
