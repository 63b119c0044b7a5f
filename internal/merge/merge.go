// Package merge implements pairwise merging of two Daylio backups.
//
// The pipeline is: push both inputs' mood and tag ids into a private
// namespace so nothing collides, concatenate the collections, collapse
// semantically duplicate moods and tags, drop day entries with colliding
// timestamps, then renumber everything densely from 1 in canonical order.
// Entry references (the mood field and the tag id set) are rewritten at every
// step, so the result always satisfies referential integrity for well-formed
// inputs. Dangling references in a corrupt input are carried through
// untouched rather than repaired.
package merge

import (
	"fmt"

	"github.com/edelvane/moodctl/internal/daylio"
	"github.com/edelvane/moodctl/internal/id"
)

// DefaultNamespaceOffset is the id spacing used for namespace separation when
// the caller does not provide one. It comfortably exceeds the id ranges of
// personal-scale backups.
const DefaultNamespaceOffset = 1000

// Options configures a merge.
type Options struct {
	// NamespaceOffset is the id spacing used to separate the two inputs'
	// mood and tag ids before deduplication. It must exceed the largest
	// mood or tag id of either input; zero selects DefaultNamespaceOffset.
	NamespaceOffset int64
}

// Merge combines two backups into one. Every entry from both inputs survives
// unless its timestamp exactly duplicates another's; moods and tags that are
// semantically the same entity are collapsed, with the primary input winning
// ties. Neither input is mutated.
func Merge(primary, secondary *daylio.Daylio, opts Options) (*daylio.Daylio, error) {
	offset := opts.NamespaceOffset
	if offset == 0 {
		offset = DefaultNamespaceOffset
	}

	// The first allocated id is 2*offset, so as long as every existing id
	// stays below the offset nothing already present can collide with a
	// freshly allocated id mid-rewrite. Counting entities is not enough:
	// sparse ids can sit far above the count.
	for _, d := range []*daylio.Daylio{primary, secondary} {
		if max := maxEntityID(d); max >= offset {
			return nil, fmt.Errorf("namespace offset %d does not exceed largest entity id %d", offset, max)
		}
	}

	merged := primary.Clone()
	other := secondary.Clone()

	// One allocator across both inputs and both entity kinds: every mood
	// and tag ends up with a unique id before the collections meet.
	alloc := id.NewAllocator(offset, offset)
	for _, d := range []*daylio.Daylio{merged, other} {
		separateNamespace(d, alloc)
	}

	merged.CustomMoods = append(merged.CustomMoods, other.CustomMoods...)
	merged.Tags = append(merged.Tags, other.Tags...)
	merged.DayEntries = append(merged.DayEntries, other.DayEntries...)

	dedupeMoods(merged)
	dedupeTags(merged)
	dedupeEntries(merged)

	canonicalize(merged)

	merged.Metadata.NumberOfEntries = int64(len(merged.DayEntries))
	merged.Metadata.NumberOfPhotos = primary.Metadata.NumberOfPhotos + secondary.Metadata.NumberOfPhotos
	merged.Metadata.PhotosSize = primary.Metadata.PhotosSize + secondary.Metadata.PhotosSize

	return merged, nil
}

func maxEntityID(d *daylio.Daylio) int64 {
	var max int64
	for i := range d.CustomMoods {
		if d.CustomMoods[i].ID > max {
			max = d.CustomMoods[i].ID
		}
	}
	for i := range d.Tags {
		if d.Tags[i].ID > max {
			max = d.Tags[i].ID
		}
	}
	return max
}

func separateNamespace(d *daylio.Daylio, alloc *id.Allocator) {
	for i := range d.CustomMoods {
		newID := alloc.Next()
		RewriteMoodID(d.DayEntries, d.CustomMoods[i].ID, newID)
		d.CustomMoods[i].ID = newID
	}
	for i := range d.Tags {
		newID := alloc.Next()
		RewriteTagID(d.DayEntries, d.Tags[i].ID, newID)
		d.Tags[i].ID = newID
	}
}
