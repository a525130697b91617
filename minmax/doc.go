// Package minmax provides LIFO stacks that track their current extremum in
// amortized O(1): MinStack knows its smallest element, MaxStack its largest.
//
// What
//
//   - Stack[T] is the shared core, configured with an order.Direction and an
//     order.Extractor. MinStack and MaxStack are thin wrappers that add the
//     variant-named accessor (Min or Max).
//   - Besides the extremum element itself, the stack counts how many stored
//     elements tie its key (Occurrences).
//
// How
//
//   - Push compares the new key with the tracked one: a tie increments the
//     occurrence count, a strictly more extreme key replaces the extremum and
//     resets the count to 1, anything else leaves both untouched.
//   - Pop decrements the count when the removed key ties the extremum. When
//     the tracked element itself leaves, it was the last tie, and the
//     remaining storage is rescanned in full to find the new extremum and its
//     tie count.
//   - NaN keys rank after every other key in both directions and tie with
//     each other: a NaN is the extremum only while every stored key is NaN.
//   - The extremum is tracked as an index into storage, never as a separate
//     copy. The index always designates the earliest stored element tied with
//     the extremum, so popping from the top can only remove it together with
//     the last tie, at which point the rescan recomputes it.
//
// Complexity
//
//   - Push, Peek, Len, Min/Max, Occurrences: O(1).
//   - Pop: O(1), or O(n) when the last occurrence of the extremum is removed.
//
// Caller obligation
//
//	Do not mutate an element's key while it is stored. The stack cannot
//	observe such changes and its extremum bookkeeping silently desyncs.
//
// Empty stacks
//
//	Pop, Peek and the extremum accessors return the zero value and false on an
//	empty stack; Occurrences is 0.
//
// Thread safety
//
//	Not safe for concurrent use; synchronize externally.
package minmax
