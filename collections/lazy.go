package collections

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// LazyCollection is the deferred counterpart of [Collection].
//
// Where a Collection holds its items in memory, a LazyCollection holds a
// *factory* that produces a fresh [iter.Seq] every time the collection is
// iterated. Chained operations compose new factories over the previous one;
// nothing is evaluated until a terminal method (All, Count, First, Each, …)
// pulls values through the pipeline.
//
//	evens := collections.LazyRange(1, 1_000_000).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Take(3).
//	    All() // pulls exactly 6 upstream values
//
// # Restartability
//
// Because the collection stores a sequence factory rather than a live
// iterator, every iteration restarts the pipeline from scratch and two
// passes over the same LazyCollection observe the same values. Wrapping an
// already-running (and possibly exhausted) iterator is unrepresentable:
// [Defer] takes a factory, and [FromSeq] drains a one-shot sequence into
// memory at construction time. Use [LazyCollection.Remember] when the
// upstream work is expensive and should only run once.
//
// # Eager fallbacks
//
// Operations that inherently need the whole sequence (sorting, shuffling,
// set operations, splitting) materialize into a [Collection], run the eager
// implementation, and re-wrap the result. The fallback itself is deferred:
// materialization happens when the result is first iterated, not when the
// method is called.
type LazyCollection[T any] struct {
	seq func() iter.Seq[T]

	// sized is set by slice-backed constructors so Count can answer
	// without draining the pipeline.
	sized  bool
	length int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func sliceSeq[T any](items []T) func() iter.Seq[T] {
	return func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, item := range items {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Lazy creates a LazyCollection from a variadic list of items (copied).
func Lazy[T any](items ...T) *LazyCollection[T] {
	return LazyFrom(items)
}

// LazyFrom creates a LazyCollection backed by a copy of the given slice.
func LazyFrom[T any](items []T) *LazyCollection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &LazyCollection[T]{seq: sliceSeq(dst), sized: true, length: len(dst)}
}

// LazyEmpty creates an empty LazyCollection of type T.
func LazyEmpty[T any]() *LazyCollection[T] {
	return &LazyCollection[T]{seq: sliceSeq([]T{}), sized: true, length: 0}
}

// LazyRange creates a LazyCollection yielding consecutive integers from
// start to end inclusive, generated on demand. A start greater than end
// produces a descending range, matching [Range].
func LazyRange(start, end int) *LazyCollection[int] {
	step := 1
	length := end - start + 1
	if start > end {
		step = -1
		length = start - end + 1
	}
	return &LazyCollection[int]{
		sized:  true,
		length: length,
		seq: func() iter.Seq[int] {
			return func(yield func(int) bool) {
				for n := start; n != end+step; n += step {
					if !yield(n) {
						return
					}
				}
			}
		},
	}
}

// Defer creates a LazyCollection from a sequence factory. The factory is
// invoked once per iteration and must return a fresh sequence each time.
// Returns [ErrNilSequenceFactory] for a nil factory.
//
//	lines, err := collections.Defer(func() iter.Seq[string] {
//	    return readLines(path) // re-opens the file on every iteration
//	})
func Defer[T any](factory func() iter.Seq[T]) (*LazyCollection[T], error) {
	if factory == nil {
		return nil, ErrNilSequenceFactory
	}
	return &LazyCollection[T]{seq: factory}, nil
}

// FromSeq creates a LazyCollection from a one-shot sequence by draining it
// into memory immediately. A live iterator cannot be re-iterated, so this is
// the only safe way to accept one; prefer [Defer] when a restartable factory
// is available.
func FromSeq[T any](seq iter.Seq[T]) *LazyCollection[T] {
	items := make([]T, 0)
	for item := range seq {
		items = append(items, item)
	}
	return &LazyCollection[T]{seq: sliceSeq(items), sized: true, length: len(items)}
}

// Lazy returns a LazyCollection over a snapshot of the eager collection.
func (c *Collection[T]) Lazy() *LazyCollection[T] {
	return LazyFrom(c.items)
}

// Collect materializes the pipeline into an eager [Collection].
func (lc *LazyCollection[T]) Collect() *Collection[T] {
	return &Collection[T]{items: lc.All()}
}

// passthru runs an eager-only operation: materialize, apply fn, re-wrap the
// result lazily. Materialization is itself deferred until first iteration.
func (lc *LazyCollection[T]) passthru(fn func(*Collection[T]) *Collection[T]) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return sliceSeq(fn(lc.Collect()).items)()
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal methods
// ─────────────────────────────────────────────────────────────────────────────

// All drains the pipeline and returns the resulting items as a slice.
func (lc *LazyCollection[T]) All() []T {
	out := make([]T, 0)
	for item := range lc.seq() {
		out = append(out, item)
	}
	return out
}

// ToSlice is an alias for [LazyCollection.All].
func (lc *LazyCollection[T]) ToSlice() []T { return lc.All() }

// Count returns the number of items. Slice-backed collections answer from
// the known length; otherwise the whole pipeline is iterated.
func (lc *LazyCollection[T]) Count() int {
	if lc.sized {
		return lc.length
	}
	n := 0
	for range lc.seq() {
		n++
	}
	return n
}

// IsEmpty reports whether the pipeline yields no items.
// Consumes at most one item.
func (lc *LazyCollection[T]) IsEmpty() bool {
	_, ok := lc.First()
	return !ok
}

// IsNotEmpty reports whether the pipeline yields at least one item.
func (lc *LazyCollection[T]) IsNotEmpty() bool { return !lc.IsEmpty() }

// First returns the first item, optionally matching fns[0], consuming the
// pipeline only as far as needed.
func (lc *LazyCollection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	for item := range lc.seq() {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (lc *LazyCollection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := lc.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
// Always drains the pipeline.
func (lc *LazyCollection[T]) Last(fns ...func(T) bool) (T, bool) {
	var (
		found   T
		matched bool
	)
	for item := range lc.seq() {
		if len(fns) == 0 || fns[0](item) {
			found = item
			matched = true
		}
	}
	return found, matched
}

// Sole returns the single item matching fns[0] (or the single item of the
// whole pipeline when no predicate is given). Returns [ErrNoMatchingItems]
// or [ErrMultipleItemsFound] on cardinality violations; stops pulling as
// soon as a second match is seen.
func (lc *LazyCollection[T]) Sole(fns ...func(T) bool) (T, error) {
	var (
		zero  T
		found T
		n     int
	)
	for item := range lc.seq() {
		if len(fns) > 0 && !fns[0](item) {
			continue
		}
		n++
		if n > 1 {
			return zero, ErrMultipleItemsFound
		}
		found = item
	}
	if n == 0 {
		return zero, ErrNoMatchingItems
	}
	return found, nil
}

// Contains reports whether at least one item satisfies fn, consuming the
// pipeline only as far as needed.
func (lc *LazyCollection[T]) Contains(fn func(T) bool) bool {
	_, ok := lc.First(fn)
	return ok
}

// Each calls fn(item, index) for every item, driving the whole pipeline.
func (lc *LazyCollection[T]) Each(fn func(T, int)) {
	i := 0
	for item := range lc.seq() {
		fn(item, i)
		i++
	}
}

// Reduce reduces the pipeline to a single value of the same type T.
// For type-changing reductions use the package-level [LazyReduce].
func (lc *LazyCollection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	result := initial
	for item := range lc.seq() {
		result = fn(result, item)
	}
	return result
}

// Sum returns the sum of all items using fn to extract numeric values.
func (lc *LazyCollection[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for item := range lc.seq() {
		sum += fn(item)
	}
	return sum
}

// Average returns the arithmetic mean, or 0 for an empty pipeline.
func (lc *LazyCollection[T]) Average(fn func(T) float64) float64 {
	var (
		sum float64
		n   int
	)
	for item := range lc.seq() {
		sum += fn(item)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Min returns the item with the smallest value extracted by fn.
// Returns the zero value and false for an empty pipeline.
func (lc *LazyCollection[T]) Min(fn func(T) float64) (T, bool) {
	var (
		minItem T
		minVal  float64
		seen    bool
	)
	for item := range lc.seq() {
		if v := fn(item); !seen || v < minVal {
			minItem, minVal, seen = item, v, true
		}
	}
	return minItem, seen
}

// Max returns the item with the largest value extracted by fn.
// Returns the zero value and false for an empty pipeline.
func (lc *LazyCollection[T]) Max(fn func(T) float64) (T, bool) {
	var (
		maxItem T
		maxVal  float64
		seen    bool
	)
	for item := range lc.seq() {
		if v := fn(item); !seen || v > maxVal {
			maxItem, maxVal, seen = item, v, true
		}
	}
	return maxItem, seen
}

// Implode joins all items into a string using sep, converting each with fn.
func (lc *LazyCollection[T]) Implode(sep string, fn func(T) string) string {
	var b strings.Builder
	first := true
	for item := range lc.seq() {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(fn(item))
		first = false
	}
	return b.String()
}

// String drains the pipeline and renders it like the eager collection.
// It implements [fmt.Stringer].
func (lc *LazyCollection[T]) String() string {
	return lc.Collect().String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy-composable transformations
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps only items for which fn(item, index) returns true.
// The index refers to the position in the upstream sequence.
func (lc *LazyCollection[T]) Filter(fn func(T, int) bool) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			i := 0
			for item := range lc.seq() {
				if fn(item, i) && !yield(item) {
					return
				}
				i++
			}
		}
	}}
}

// Reject drops items for which fn returns true.
// It is the complement of [LazyCollection.Filter].
func (lc *LazyCollection[T]) Reject(fn func(T, int) bool) *LazyCollection[T] {
	return lc.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Where is an alias for [LazyCollection.Filter].
func (lc *LazyCollection[T]) Where(fn func(T, int) bool) *LazyCollection[T] {
	return lc.Filter(fn)
}

// WhereNot is an alias for [LazyCollection.Reject].
func (lc *LazyCollection[T]) WhereNot(fn func(T, int) bool) *LazyCollection[T] {
	return lc.Reject(fn)
}

// Map transforms each item with fn(item, index) into a LazyCollection[any].
// For type-safe transformation use the package-level [LazyMap].
func (lc *LazyCollection[T]) Map(fn func(T, int) any) *LazyCollection[any] {
	return LazyMap(lc, fn)
}

// TapEach calls fn(item, index) on every item as it flows through, without
// altering the pipeline. fn only runs for items that are actually pulled.
func (lc *LazyCollection[T]) TapEach(fn func(T, int)) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			i := 0
			for item := range lc.seq() {
				fn(item, i)
				i++
				if !yield(item) {
					return
				}
			}
		}
	}}
}

// Tap calls fn(lc) for side-effects and returns lc unchanged.
func (lc *LazyCollection[T]) Tap(fn func(*LazyCollection[T])) *LazyCollection[T] {
	fn(lc)
	return lc
}

// Take limits the pipeline to the first n items.
//
// A negative n yields the *last* |n| items in original order. The suffix is
// tracked in a fixed-size ring buffer of capacity |n|, so the upstream is
// fully consumed but never buffered beyond |n| items.
func (lc *LazyCollection[T]) Take(n int) *LazyCollection[T] {
	if n < 0 {
		return lc.takeLast(-n)
	}
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			if n == 0 {
				return
			}
			taken := 0
			for item := range lc.seq() {
				if !yield(item) {
					return
				}
				taken++
				if taken >= n {
					return
				}
			}
		}
	}}
}

func (lc *LazyCollection[T]) takeLast(n int) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			ring := make([]T, n)
			total := 0
			for item := range lc.seq() {
				ring[total%n] = item
				total++
			}
			count := n
			if total < count {
				count = total
			}
			for i := total - count; i < total; i++ {
				if !yield(ring[i%n]) {
					return
				}
			}
		}
	}}
}

// TakeUntil yields items until fn returns true (exclusive).
func (lc *LazyCollection[T]) TakeUntil(fn func(T) bool) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for item := range lc.seq() {
				if fn(item) {
					return
				}
				if !yield(item) {
					return
				}
			}
		}
	}}
}

// TakeWhile yields items while fn returns true.
func (lc *LazyCollection[T]) TakeWhile(fn func(T) bool) *LazyCollection[T] {
	return lc.TakeUntil(func(item T) bool { return !fn(item) })
}

// Skip drops the first n items. A negative n drops items counted from the
// end: the pipeline is delayed through a |n|-item buffer so the upstream is
// never fully materialized.
func (lc *LazyCollection[T]) Skip(n int) *LazyCollection[T] {
	if n < 0 {
		return lc.skipLast(-n)
	}
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			i := 0
			for item := range lc.seq() {
				if i >= n && !yield(item) {
					return
				}
				i++
			}
		}
	}}
}

func (lc *LazyCollection[T]) skipLast(n int) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			ring := make([]T, n)
			total := 0
			for item := range lc.seq() {
				if total >= n {
					if !yield(ring[total%n]) {
						return
					}
				}
				ring[total%n] = item
				total++
			}
		}
	}}
}

// SkipUntil drops items until fn returns true, then yields the rest.
func (lc *LazyCollection[T]) SkipUntil(fn func(T) bool) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			skipping := true
			for item := range lc.seq() {
				if skipping {
					if !fn(item) {
						continue
					}
					skipping = false
				}
				if !yield(item) {
					return
				}
			}
		}
	}}
}

// SkipWhile drops items while fn returns true, then yields the rest.
func (lc *LazyCollection[T]) SkipWhile(fn func(T) bool) *LazyCollection[T] {
	return lc.SkipUntil(func(item T) bool { return !fn(item) })
}

// Slice yields at most length items starting at offset. Negative arguments
// fall back to the eager implementation.
func (lc *LazyCollection[T]) Slice(offset, length int) *LazyCollection[T] {
	if offset < 0 || length < 0 {
		return lc.passthru(func(c *Collection[T]) *Collection[T] {
			return c.Slice(offset, length)
		})
	}
	return lc.Skip(offset).Take(length)
}

// Pad pads the pipeline with value until it reaches the given absolute size.
// Right padding (positive size) stays lazy; left padding needs the total
// count first and falls back to the eager implementation.
func (lc *LazyCollection[T]) Pad(size int, value T) *LazyCollection[T] {
	if size < 0 {
		return lc.passthru(func(c *Collection[T]) *Collection[T] {
			return c.Pad(size, value)
		})
	}
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			n := 0
			for item := range lc.seq() {
				if !yield(item) {
					return
				}
				n++
			}
			for ; n < size; n++ {
				if !yield(value) {
					return
				}
			}
		}
	}}
}

// Concat yields all items of lc followed by all items of other.
func (lc *LazyCollection[T]) Concat(other *LazyCollection[T]) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for item := range lc.seq() {
				if !yield(item) {
					return
				}
			}
			for item := range other.seq() {
				if !yield(item) {
					return
				}
			}
		}
	}}
}

// Merge appends all items of other, like [Collection.Merge] on list
// collections. It is an alias for [LazyCollection.Concat].
func (lc *LazyCollection[T]) Merge(other *LazyCollection[T]) *LazyCollection[T] {
	return lc.Concat(other)
}

// Push appends items to the end of the pipeline.
func (lc *LazyCollection[T]) Push(items ...T) *LazyCollection[T] {
	return lc.Concat(LazyFrom(items))
}

// Prepend yields the given items before the pipeline.
func (lc *LazyCollection[T]) Prepend(items ...T) *LazyCollection[T] {
	return LazyFrom(items).Concat(lc)
}

// When calls fn(lc) if condition is true and returns the result; otherwise
// returns lc unchanged.
func (lc *LazyCollection[T]) When(condition bool, fn func(*LazyCollection[T]) *LazyCollection[T]) *LazyCollection[T] {
	if condition {
		return fn(lc)
	}
	return lc
}

// Unless calls fn(lc) if condition is false; otherwise returns lc.
func (lc *LazyCollection[T]) Unless(condition bool, fn func(*LazyCollection[T]) *LazyCollection[T]) *LazyCollection[T] {
	return lc.When(!condition, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Caching, pacing and deadlines
// ─────────────────────────────────────────────────────────────────────────────

type rememberState[T any] struct {
	source func() iter.Seq[T]
	cache  []T
	next   func() (T, bool)
	stop   func()
	done   bool
}

// fetch returns the item at position i, pulling from the shared upstream
// iterator and growing the cache when i is past the cached prefix.
func (s *rememberState[T]) fetch(i int) (T, bool) {
	if i < len(s.cache) {
		return s.cache[i], true
	}
	var zero T
	if s.done {
		return zero, false
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull(s.source())
	}
	for len(s.cache) <= i {
		item, ok := s.next()
		if !ok {
			s.done = true
			s.stop()
			return zero, false
		}
		s.cache = append(s.cache, item)
	}
	return s.cache[i], true
}

// Remember returns a LazyCollection that caches every value pulled through
// it at its position, so repeated iteration never re-runs upstream work for
// an already-seen prefix. The cache grows incrementally as consumers advance
// past it and is shared by every iteration of the returned collection.
//
// The shared cache is not synchronized; like the rest of the pipeline
// machinery it expects a single consuming goroutine.
func (lc *LazyCollection[T]) Remember() *LazyCollection[T] {
	state := &rememberState[T]{source: lc.seq}
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for i := 0; ; i++ {
				item, ok := state.fetch(i)
				if !ok || !yield(item) {
					return
				}
			}
		}
	}}
}

// Throttle paces the pipeline to at most one item per interval. After each
// item is yielded it sleeps for the *remainder* of the interval — time spent
// producing and consuming the item counts toward it — so slow consumers are
// never slowed down further.
func (lc *LazyCollection[T]) Throttle(interval time.Duration) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for item := range lc.seq() {
				fetchedAt := time.Now()
				if !yield(item) {
					return
				}
				if sleep := interval - time.Since(fetchedAt); sleep > 0 {
					time.Sleep(sleep)
				}
			}
		}
	}}
}

// WithHeartbeat invokes fn when iteration begins and again whenever interval
// has elapsed since the last beat, checked as each item is pulled. Useful
// for renewing locks or leases while a long pipeline is being consumed.
func (lc *LazyCollection[T]) WithHeartbeat(interval time.Duration, fn func()) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			fn()
			last := time.Now()
			for item := range lc.seq() {
				if time.Since(last) >= interval {
					fn()
					last = time.Now()
				}
				if !yield(item) {
					return
				}
			}
		}
	}}
}

// TakeUntilTimeout yields items until the wall clock reaches deadline.
//
// The check happens as each item is pulled, so the item observed at or after
// the deadline is still yielded (the pipeline never cuts an in-flight item).
// When the deadline passes, cb is invoked with the last yielded item and its
// index. If the deadline has already passed before the first pull, nothing
// is yielded and cb receives the zero value, index -1 and ok=false. cb is
// not invoked when the upstream ends before the deadline; a nil cb is
// ignored.
func (lc *LazyCollection[T]) TakeUntilTimeout(deadline time.Time, cb func(last T, index int, ok bool)) *LazyCollection[T] {
	return &LazyCollection[T]{seq: func() iter.Seq[T] {
		return func(yield func(T) bool) {
			var zero T
			if !time.Now().Before(deadline) {
				if cb != nil {
					cb(zero, -1, false)
				}
				return
			}
			i := 0
			for item := range lc.seq() {
				expired := !time.Now().Before(deadline)
				if !yield(item) {
					return
				}
				if expired {
					if cb != nil {
						cb(item, i, true)
					}
					return
				}
				i++
			}
		}
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Eager fallbacks
// ─────────────────────────────────────────────────────────────────────────────

// Sort orders the pipeline by less. Requires the whole sequence; delegates
// to [Collection.Sort] and re-wraps the result lazily.
func (lc *LazyCollection[T]) Sort(less func(a, b T) bool) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.Sort(less) })
}

// SortBy orders the pipeline ascending by the value extracted by fn.
func (lc *LazyCollection[T]) SortBy(fn func(T) float64) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.SortBy(fn) })
}

// SortByDesc orders the pipeline descending by the value extracted by fn.
func (lc *LazyCollection[T]) SortByDesc(fn func(T) float64) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.SortByDesc(fn) })
}

// SortByMany orders the pipeline by an ordered list of criteria.
// See [Collection.SortByMany].
func (lc *LazyCollection[T]) SortByMany(criteria ...SortCriterion[T]) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.SortByMany(criteria...) })
}

// Shuffle yields the items in a randomly shuffled order.
func (lc *LazyCollection[T]) Shuffle() *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.Shuffle() })
}

// Reverse yields the items in reverse order.
func (lc *LazyCollection[T]) Reverse() *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.Reverse() })
}

// Unique drops duplicates, keeping first occurrences. See [Collection.Unique].
func (lc *LazyCollection[T]) Unique(fn func(T) any) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.Unique(fn) })
}

// Duplicates yields the items flagged by [Collection.Duplicates].
func (lc *LazyCollection[T]) Duplicates(fn func(T) any) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] { return c.Duplicates(fn) })
}

// Diff yields items of lc not present in other. See [Collection.Diff].
func (lc *LazyCollection[T]) Diff(other *LazyCollection[T], fn func(T) any) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] {
		return c.Diff(other.Collect(), fn)
	})
}

// Intersect yields items of lc also present in other. See [Collection.Intersect].
func (lc *LazyCollection[T]) Intersect(other *LazyCollection[T], fn func(T) any) *LazyCollection[T] {
	return lc.passthru(func(c *Collection[T]) *Collection[T] {
		return c.Intersect(other.Collect(), fn)
	})
}

// Split materializes the pipeline and divides it into n front-loaded groups.
// See [Collection.Split].
func (lc *LazyCollection[T]) Split(n int) []*Collection[T] {
	return lc.Collect().Split(n)
}

// Dump materializes and prints the pipeline, returning lc for chaining.
func (lc *LazyCollection[T]) Dump() *LazyCollection[T] {
	fmt.Println(lc.String())
	return lc
}
