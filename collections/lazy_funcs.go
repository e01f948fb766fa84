package collections

import "iter"

// This file contains package-level generic functions for LazyCollection
// operations that transform the element type (T ≠ U). As with the eager
// [Map] / [FlatMap] / [GroupBy] helpers, Go methods cannot introduce new
// type parameters, so these live as stand-alone functions.

// LazyMap applies fn to every item, lazily, returning a LazyCollection[U].
//
//	names := collections.LazyMap(users, func(u User, _ int) string {
//	    return u.Name
//	})
func LazyMap[T, U any](lc *LazyCollection[T], fn func(T, int) U) *LazyCollection[U] {
	return &LazyCollection[U]{seq: func() iter.Seq[U] {
		return func(yield func(U) bool) {
			i := 0
			for item := range lc.seq() {
				if !yield(fn(item, i)) {
					return
				}
				i++
			}
		}
	}}
}

// LazyFlatMap applies fn to every item (producing a []U per item) and
// flattens the results one level, lazily.
func LazyFlatMap[T, U any](lc *LazyCollection[T], fn func(T, int) []U) *LazyCollection[U] {
	return &LazyCollection[U]{seq: func() iter.Seq[U] {
		return func(yield func(U) bool) {
			i := 0
			for item := range lc.seq() {
				for _, out := range fn(item, i) {
					if !yield(out) {
						return
					}
				}
				i++
			}
		}
	}}
}

// LazyChunk groups consecutive items into slices of the given size, yielding
// each chunk as soon as it fills. The final chunk may be smaller. Yields
// nothing when size <= 0. Like [LazyMap], the element type changes (T to
// []T), so this lives as a stand-alone function.
func LazyChunk[T any](lc *LazyCollection[T], size int) *LazyCollection[[]T] {
	return &LazyCollection[[]T]{seq: func() iter.Seq[[]T] {
		return func(yield func([]T) bool) {
			if size <= 0 {
				return
			}
			chunk := make([]T, 0, size)
			for item := range lc.seq() {
				chunk = append(chunk, item)
				if len(chunk) == size {
					if !yield(chunk) {
						return
					}
					chunk = make([]T, 0, size)
				}
			}
			if len(chunk) > 0 {
				yield(chunk)
			}
		}
	}}
}

// LazyPluck extracts a single field U from every item, lazily.
func LazyPluck[T, U any](lc *LazyCollection[T], fn func(T) U) *LazyCollection[U] {
	return LazyMap(lc, func(item T, _ int) U { return fn(item) })
}

// LazyReduce drains the pipeline into a single value of type U.
func LazyReduce[T, U any](lc *LazyCollection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	i := 0
	for item := range lc.seq() {
		result = fn(result, item, i)
		i++
	}
	return result
}

// LazyZip combines two lazy pipelines element-by-element into Pairs,
// stopping at the shorter of the two. Both sides are pulled in lock-step,
// one item at a time.
func LazyZip[A, B any](a *LazyCollection[A], b *LazyCollection[B]) *LazyCollection[Pair[A, B]] {
	return &LazyCollection[Pair[A, B]]{seq: func() iter.Seq[Pair[A, B]] {
		return func(yield func(Pair[A, B]) bool) {
			nextA, stopA := iter.Pull(a.seq())
			defer stopA()
			nextB, stopB := iter.Pull(b.seq())
			defer stopB()
			for {
				va, okA := nextA()
				if !okA {
					return
				}
				vb, okB := nextB()
				if !okB {
					return
				}
				if !yield(Pair[A, B]{First: va, Second: vb}) {
					return
				}
			}
		}
	}}
}

// LazyGroupBy groups items by the key extracted by fn. Grouping needs the
// whole sequence, so the pipeline is materialized. See [GroupBy].
func LazyGroupBy[T any, K comparable](lc *LazyCollection[T], fn func(T) K) map[K]*Collection[T] {
	return GroupBy(lc.Collect(), fn)
}

// LazyGroupByMany fan-out groups items by every key returned by fn,
// materializing the pipeline. See [GroupByMany].
func LazyGroupByMany[T any, K comparable](lc *LazyCollection[T], fn func(T) []K) map[K]*Collection[T] {
	return GroupByMany(lc.Collect(), fn)
}

// LazyKeyBy builds a map keyed by fn, materializing the pipeline.
// When multiple items share the same key, the last one wins.
func LazyKeyBy[T any, K comparable](lc *LazyCollection[T], fn func(T) K) map[K]T {
	return KeyBy(lc.Collect(), fn)
}

// LazyCountBy counts occurrences of each key extracted by fn, draining the
// pipeline once.
func LazyCountBy[T any, K comparable](lc *LazyCollection[T], fn func(T) K) map[K]int {
	out := make(map[K]int)
	for item := range lc.seq() {
		out[fn(item)]++
	}
	return out
}

// LazyMapWithKeys builds a map from (key, value) pairs produced by fn,
// draining the pipeline once. When multiple items produce the same key, the
// last one wins. See [MapWithKeys].
func LazyMapWithKeys[T any, K comparable, V any](lc *LazyCollection[T], fn func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	for item := range lc.seq() {
		k, v := fn(item)
		out[k] = v
	}
	return out
}
