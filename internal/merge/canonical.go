package merge

import (
	"sort"

	"github.com/edelvane/moodctl/internal/daylio"
	"github.com/edelvane/moodctl/internal/id"
)

// renumberOffset is the shift applied to tag ids before final renumbering.
// It only has to clear the dense range about to be assigned, so anything
// far above a plausible tag count works.
const renumberOffset = 100_000

// canonicalize re-sorts every collection into its long-term order and assigns
// dense ids starting at 1, keeping entry references consistent throughout.
func canonicalize(d *daylio.Daylio) {
	canonicalizeMoods(d)
	canonicalizeTags(d)
	canonicalizeEntries(d)
}

func canonicalizeMoods(d *daylio.Daylio) {
	sort.SliceStable(d.CustomMoods, func(i, j int) bool {
		if d.CustomMoods[i].CreatedAt != d.CustomMoods[j].CreatedAt {
			return d.CustomMoods[i].CreatedAt < d.CustomMoods[j].CreatedAt
		}
		return d.CustomMoods[i].MoodGroupID < d.CustomMoods[j].MoodGroupID
	})

	alloc := id.NewAllocator(1, 0)
	for i := range d.CustomMoods {
		newID := alloc.Next()
		RewriteMoodID(d.DayEntries, d.CustomMoods[i].ID, newID)
		d.CustomMoods[i].ID = newID
	}

	// Display order within each mood group follows canonical order.
	groupOrder := make(map[int64]int64)
	for i := range d.CustomMoods {
		group := d.CustomMoods[i].MoodGroupID
		d.CustomMoods[i].MoodGroupOrder = groupOrder[group]
		groupOrder[group]++
	}
}

func canonicalizeTags(d *daylio.Daylio) {
	sort.SliceStable(d.Tags, func(i, j int) bool {
		return d.Tags[i].CreatedAt < d.Tags[j].CreatedAt
	})

	// A freshly assigned id may equal the current id of a tag later in the
	// list, and the rewrite for that tag would then capture entry references
	// it does not own. Shift everything out of the way first.
	for i := range d.Tags {
		shifted := d.Tags[i].ID + renumberOffset
		RewriteTagID(d.DayEntries, d.Tags[i].ID, shifted)
		d.Tags[i].ID = shifted
	}

	alloc := id.NewAllocator(1, 0)
	for i := range d.Tags {
		newID := alloc.Next()
		RewriteTagID(d.DayEntries, d.Tags[i].ID, newID)
		d.Tags[i].ID = newID
		d.Tags[i].Order = int64(i)
	}
}

func canonicalizeEntries(d *daylio.Daylio) {
	sortEntries(d.DayEntries)

	alloc := id.NewAllocator(1, 0)
	for i := range d.DayEntries {
		d.DayEntries[i].ID = alloc.Next()
	}
}
