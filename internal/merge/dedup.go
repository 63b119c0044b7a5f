package merge

import (
	"sort"
	"strings"

	"github.com/edelvane/moodctl/internal/daylio"
)

// removedID marks an entity for removal during a dedup pass. Identity keys
// never involve the id, so marking cannot perturb comparisons.
const removedID = -1

type moodKey struct {
	name    string
	iconID  int64
	groupID int64
}

func keyOfMood(m *daylio.CustomMood) moodKey {
	return moodKey{
		name:    strings.ToLower(m.CustomName),
		iconID:  m.IconID,
		groupID: m.MoodGroupID,
	}
}

type tagKey struct {
	name string
	icon int64
}

func keyOfTag(t *daylio.Tag) tagKey {
	return tagKey{
		name: strings.ToLower(t.Name),
		icon: t.Icon,
	}
}

// dedupeMoods collapses moods sharing an identity key onto the earliest
// occurrence in identity-sort order. The stable sort keeps the primary
// dataset's entity ahead of an equally-keyed secondary one, so the primary's
// casing and created-at survive. References to a collapsed mood are rewritten
// onto the surviving id before the duplicate is dropped.
func dedupeMoods(d *daylio.Daylio) {
	sort.SliceStable(d.CustomMoods, func(i, j int) bool {
		lhs, rhs := keyOfMood(&d.CustomMoods[i]), keyOfMood(&d.CustomMoods[j])
		if lhs.name != rhs.name {
			return lhs.name < rhs.name
		}
		if lhs.iconID != rhs.iconID {
			return lhs.iconID < rhs.iconID
		}
		return lhs.groupID < rhs.groupID
	})

	// canon tracks the latest surviving mood; comparing against it (rather
	// than the immediate neighbour) resolves chains of 3+ duplicates onto
	// the one canonical id.
	canon := 0
	for i := 1; i < len(d.CustomMoods); i++ {
		if keyOfMood(&d.CustomMoods[i]) == keyOfMood(&d.CustomMoods[canon]) {
			RewriteMoodID(d.DayEntries, d.CustomMoods[i].ID, d.CustomMoods[canon].ID)
			d.CustomMoods[i].ID = removedID
		} else {
			canon = i
		}
	}

	d.CustomMoods = compactMoods(d.CustomMoods)
}

// dedupeTags collapses tags sharing an identity key, same scheme as
// dedupeMoods.
func dedupeTags(d *daylio.Daylio) {
	sort.SliceStable(d.Tags, func(i, j int) bool {
		lhs, rhs := keyOfTag(&d.Tags[i]), keyOfTag(&d.Tags[j])
		if lhs.name != rhs.name {
			return lhs.name < rhs.name
		}
		return lhs.icon < rhs.icon
	})

	canon := 0
	for i := 1; i < len(d.Tags); i++ {
		if keyOfTag(&d.Tags[i]) == keyOfTag(&d.Tags[canon]) {
			RewriteTagID(d.DayEntries, d.Tags[i].ID, d.Tags[canon].ID)
			d.Tags[i].ID = removedID
		} else {
			canon = i
		}
	}

	d.Tags = compactTags(d.Tags)
}

// dedupeEntries drops entries whose timestamp exactly matches an earlier
// entry's. A true collision is taken to be the same logical entry exported
// twice, so the later copy's content is discarded.
func dedupeEntries(d *daylio.Daylio) {
	sortEntries(d.DayEntries)

	for i := 1; i < len(d.DayEntries); i++ {
		if d.DayEntries[i].Datetime == d.DayEntries[i-1].Datetime {
			d.DayEntries[i].ID = removedID
		}
	}

	kept := d.DayEntries[:0]
	for _, entry := range d.DayEntries {
		if entry.ID != removedID {
			kept = append(kept, entry)
		}
	}
	d.DayEntries = kept
}

func sortEntries(entries []daylio.DayEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Datetime != entries[j].Datetime {
			return entries[i].Datetime < entries[j].Datetime
		}
		if entries[i].Year != entries[j].Year {
			return entries[i].Year < entries[j].Year
		}
		return entries[i].Month < entries[j].Month
	})
}

func compactMoods(moods []daylio.CustomMood) []daylio.CustomMood {
	kept := moods[:0]
	for _, mood := range moods {
		if mood.ID != removedID {
			kept = append(kept, mood)
		}
	}
	return kept
}

func compactTags(tags []daylio.Tag) []daylio.Tag {
	kept := tags[:0]
	for _, tag := range tags {
		if tag.ID != removedID {
			kept = append(kept, tag)
		}
	}
	return kept
}
