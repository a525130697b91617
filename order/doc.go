// Package order holds the ordering primitives shared by the extremum-aware
// containers of lvlds (heap, minmax, pqueue, search).
//
// Every container in this module ranks its elements by a numeric key. The key
// is produced by an Extractor supplied at construction time, so arbitrary
// records can be ordered by one of their fields without implementing any
// interface:
//
//	byAge := order.Extractor[Person](func(p Person) float64 { return float64(p.Age) })
//
// Numeric element types do not need a hand-written extractor; Identity[N]()
// returns one for any integer or floating-point type:
//
//	key := order.Identity[int]()
//
// Direction selects which end of the ordering is "extreme":
//
//	– Ascending:  smaller keys come first (min-heap, min-stack).
//	– Descending: larger keys come first (max-heap, max-stack).
//
// Errors (sentinel):
//
//	– ErrNilExtractor  constructors received a nil Extractor.
//	– ErrBadDirection  constructors received a Direction outside {Ascending, Descending}.
//
// Both are programming errors: constructors across lvlds panic with them
// instead of returning them.
package order
