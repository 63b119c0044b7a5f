package anonymize

import (
	"testing"

	"github.com/edelvane/moodctl/internal/daylio"
)

func TestScrub(t *testing.T) {
	d := &daylio.Daylio{
		CustomMoods: []daylio.CustomMood{
			{ID: 1, CustomName: "my secret mood", IconID: 3, MoodGroupID: 1},
		},
		Tags: []daylio.Tag{
			{ID: 1, Name: "therapy", Icon: 10},
		},
		DayEntries: []daylio.DayEntry{
			{ID: 7, Datetime: 1000, Mood: 1, Note: "private text", NoteTitle: "private title", TimeZoneOffset: 3600, Tags: []int64{1}},
		},
		TagGroups: []daylio.TagGroup{
			{ID: 2, Name: "health"},
		},
		WritingTemplates: []daylio.WritingTemplate{
			{ID: 4, Title: "evening check-in", Body: "how was your day?"},
		},
	}

	Scrub(d)

	if d.CustomMoods[0].CustomName != "Mood 0" {
		t.Errorf("mood name = %q, want placeholder", d.CustomMoods[0].CustomName)
	}
	if d.Tags[0].Name != "Tag 0" {
		t.Errorf("tag name = %q, want placeholder", d.Tags[0].Name)
	}

	entry := d.DayEntries[0]
	if entry.Note != "Note 7" || entry.NoteTitle != "Note title 7" {
		t.Errorf("entry text = (%q, %q), want placeholders keyed by id", entry.Note, entry.NoteTitle)
	}
	if entry.TimeZoneOffset != 0 {
		t.Errorf("time zone offset = %d, want 0", entry.TimeZoneOffset)
	}

	// Structure is untouched: ids, timestamps, references.
	if entry.ID != 7 || entry.Datetime != 1000 || entry.Mood != 1 || len(entry.Tags) != 1 {
		t.Error("scrub changed entry structure")
	}
	if d.CustomMoods[0].IconID != 3 {
		t.Error("scrub changed mood icon")
	}

	if d.TagGroups[0].Name != "Group 2" {
		t.Errorf("tag group name = %q, want placeholder keyed by id", d.TagGroups[0].Name)
	}
	if d.WritingTemplates[0].Title != "Template title 4" || d.WritingTemplates[0].Body != "Template 4" {
		t.Errorf("template = (%q, %q), want placeholders", d.WritingTemplates[0].Title, d.WritingTemplates[0].Body)
	}
}
