// Package sliceutil provides generic helpers for slices that the standard
// slices and maps packages do not cover.
//
// The helpers never modify their input. Nil and empty slices are accepted
// everywhere and produce empty results.
//
//	sliceutil.Every([]int{1, 2, 3, 4, 5}, 2)                  // [1 3 5]
//	sliceutil.TakeUntil([]int{1, 2, 3, 4}, func(i int) bool { return i > 2 }) // [1 2]
//	sliceutil.Summarize([]string{"a", "b", "c"}, 2)          // "(3 {a} {b})"
//	lo, hi := sliceutil.Range([]int{7, 9, -999})              // -999, 9
package sliceutil
