package order

// Before reports whether key a is strictly more extreme than key b under d:
// a < b for Ascending, a > b for Descending. Equal keys are never Before
// each other.
func (d Direction) Before(a, b float64) bool {
	if d == Descending {
		return a > b
	}

	return a < b
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// String returns "ascending", "descending" or "unknown".
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Must validates a (direction, extractor) pair handed to a constructor and
// panics with ErrBadDirection or ErrNilExtractor when it is unusable.
func Must[T any](d Direction, key Extractor[T]) {
	if !d.Valid() {
		panic(ErrBadDirection.Error())
	}
	if key == nil {
		panic(ErrNilExtractor.Error())
	}
}
