// Package interval normalizes closed uint64 ID ranges into a minimal sorted
// set and answers membership queries on it with a binary search.
//
// A Set is immutable once built and may be shared between goroutines.
package interval
