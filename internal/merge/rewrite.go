package merge

import (
	"github.com/edelvane/moodctl/internal/daylio"
)

// RewriteMoodID updates every entry whose mood field references oldID to
// reference newID instead. Entries already pointing at newID are untouched.
func RewriteMoodID(entries []daylio.DayEntry, oldID, newID int64) {
	for i := range entries {
		if entries[i].Mood == oldID {
			entries[i].Mood = newID
		}
	}
}

// RewriteTagID replaces oldID with newID in every entry's tag list. The list
// is a set: if an entry already references newID, the rewritten occurrence is
// dropped rather than duplicated.
func RewriteTagID(entries []daylio.DayEntry, oldID, newID int64) {
	for i := range entries {
		entry := &entries[i]

		changed := false
		for _, tagID := range entry.Tags {
			if tagID == oldID {
				changed = true
				break
			}
		}
		if !changed {
			continue
		}

		rewritten := entry.Tags[:0]
		seen := make(map[int64]bool, len(entry.Tags))
		for _, tagID := range entry.Tags {
			if tagID == oldID {
				tagID = newID
			}
			if seen[tagID] {
				continue
			}
			seen[tagID] = true
			rewritten = append(rewritten, tagID)
		}
		entry.Tags = rewritten
	}
}
