package daylio

import "fmt"

// Validate checks referential integrity: every entry's mood id must name an
// existing mood and every entry tag id an existing tag. A failing backup is
// not necessarily unusable (the merge pipeline tolerates dangling references
// and leaves them as-is), but it indicates a corrupt export and callers
// should surface it.
func (d *Daylio) Validate() error {
	moodIDs := make(map[int64]bool, len(d.CustomMoods))
	for _, mood := range d.CustomMoods {
		if moodIDs[mood.ID] {
			return fmt.Errorf("duplicate mood id %d (%q)", mood.ID, mood.CustomName)
		}
		moodIDs[mood.ID] = true
	}

	tagIDs := make(map[int64]bool, len(d.Tags))
	for _, tag := range d.Tags {
		if tagIDs[tag.ID] {
			return fmt.Errorf("duplicate tag id %d (%q)", tag.ID, tag.Name)
		}
		tagIDs[tag.ID] = true
	}

	entryIDs := make(map[int64]bool, len(d.DayEntries))
	for _, entry := range d.DayEntries {
		if entryIDs[entry.ID] {
			return fmt.Errorf("duplicate entry id %d", entry.ID)
		}
		entryIDs[entry.ID] = true

		if !moodIDs[entry.Mood] {
			return fmt.Errorf("entry %d references unknown mood id %d", entry.ID, entry.Mood)
		}
		for _, tagID := range entry.Tags {
			if !tagIDs[tagID] {
				return fmt.Errorf("entry %d references unknown tag id %d", entry.ID, tagID)
			}
		}
	}

	return nil
}
