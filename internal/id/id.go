// Package id provides sequential identifier allocation for dataset entities.
//
// Daylio backups reference moods and tags from day entries by plain integer
// ids, so merging two backups means moving every entity through a private id
// range before deduplication and then back into a dense 1-based range. The
// Allocator is the single source of those ids.
package id

// Allocator hands out strictly increasing identifiers.
//
// Each call to Next advances the counter by the configured step and returns
// the new value, so the start value itself is never produced. A step of 1
// starting at 0 yields 1, 2, 3, ... which is the final dense numbering; a
// large step yields a sparse private namespace.
type Allocator struct {
	step    int64
	current int64
}

// NewAllocator returns an Allocator that yields start+step, start+2*step, ...
func NewAllocator(step, start int64) *Allocator {
	return &Allocator{step: step, current: start}
}

// Next returns the next identifier in the sequence.
func (a *Allocator) Next() int64 {
	a.current += a.step
	return a.current
}
