// Package anonymize strips personal text from a backup while keeping its
// structure, so datasets can be shared for debugging.
package anonymize

import (
	"fmt"

	"github.com/edelvane/moodctl/internal/daylio"
)

// Scrub replaces every user-written string with a placeholder derived from
// the element's position or id and zeroes time zone offsets. Ids, timestamps,
// moods, and tag links are left intact.
func Scrub(d *daylio.Daylio) {
	for i := range d.CustomMoods {
		d.CustomMoods[i].CustomName = fmt.Sprintf("Mood %d", i)
	}

	for i := range d.Tags {
		d.Tags[i].Name = fmt.Sprintf("Tag %d", i)
	}

	for i := range d.DayEntries {
		entry := &d.DayEntries[i]
		entry.Note = fmt.Sprintf("Note %d", entry.ID)
		entry.NoteTitle = fmt.Sprintf("Note title %d", entry.ID)
		entry.TimeZoneOffset = 0
	}

	for i := range d.TagGroups {
		d.TagGroups[i].Name = fmt.Sprintf("Group %d", d.TagGroups[i].ID)
	}

	for i := range d.WritingTemplates {
		template := &d.WritingTemplates[i]
		template.Title = fmt.Sprintf("Template title %d", template.ID)
		template.Body = fmt.Sprintf("Template %d", template.ID)
	}
}
