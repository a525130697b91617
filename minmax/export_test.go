package minmax

// Ties counts stored elements whose key equals the tracked extremum's key
// and reports whether the tracked index is the earliest of them.
// White-box helper for minmax_test.
func Ties[T any](s *Stack[T]) (count int, earliest bool) {
	if s.extremum == none {
		return 0, true
	}
	k := s.key(s.storage[s.extremum])
	first := none
	for i, v := range s.storage {
		if tie(s.key(v), k) {
			if first == none {
				first = i
			}
			count++
		}
	}

	return count, first == s.extremum
}
