package merge

import (
	"testing"

	"github.com/edelvane/moodctl/internal/daylio"
	"github.com/edelvane/moodctl/internal/testutil"
)

func TestDedupeEntriesChain(t *testing.T) {
	d := testutil.Dataset(nil, nil, []daylio.DayEntry{
		testutil.Entry(1, 1000, 1),
		testutil.Entry(2, 1000, 2),
		testutil.Entry(3, 1000, 3),
		testutil.Entry(4, 2000, 1),
	})

	dedupeEntries(d)

	if len(d.DayEntries) != 2 {
		t.Fatalf("got %d entries, want 2", len(d.DayEntries))
	}
	if d.DayEntries[0].Mood != 1 {
		t.Errorf("survivor of the collision chain has mood %d, want the first entry's mood 1", d.DayEntries[0].Mood)
	}
	if d.DayEntries[1].Datetime != 2000 {
		t.Errorf("second entry datetime = %d, want 2000", d.DayEntries[1].Datetime)
	}
}

func TestDedupeMoodsMarkDoesNotAffectKey(t *testing.T) {
	// The removal mark only touches the id; the identity key stays intact so
	// later comparisons in the same pass still see the duplicate's key.
	d := testutil.Dataset(
		[]daylio.CustomMood{
			testutil.Mood(10, "calm", 1, 1),
			testutil.Mood(20, "Calm", 1, 1),
			testutil.Mood(30, "CALM", 1, 1),
			testutil.Mood(40, "other", 2, 2),
		},
		nil,
		[]daylio.DayEntry{
			{ID: 1, Datetime: 1000, Mood: 20},
			{ID: 2, Datetime: 2000, Mood: 30},
			{ID: 3, Datetime: 3000, Mood: 40},
		},
	)

	dedupeMoods(d)

	if len(d.CustomMoods) != 2 {
		t.Fatalf("got %d moods, want 2", len(d.CustomMoods))
	}

	var calmID int64
	for _, mood := range d.CustomMoods {
		if mood.CustomName == "calm" {
			calmID = mood.ID
		}
		if mood.ID == removedID {
			t.Errorf("marked mood %q leaked into the result", mood.CustomName)
		}
	}
	if calmID == 0 {
		t.Fatal("canonical mood (first occurrence, original casing) did not survive")
	}

	for _, entry := range d.DayEntries[:2] {
		if entry.Mood != calmID {
			t.Errorf("entry %d mood = %d, want canonical %d", entry.ID, entry.Mood, calmID)
		}
	}
}

func TestDedupeTagsDistinctIconsSurvive(t *testing.T) {
	// Same name but different icon is a different entity.
	d := testutil.Dataset(
		nil,
		[]daylio.Tag{
			testutil.Tag(1, "work", 10),
			testutil.Tag(2, "work", 11),
		},
		nil,
	)

	dedupeTags(d)

	if len(d.Tags) != 2 {
		t.Fatalf("got %d tags, want both to survive", len(d.Tags))
	}
}
