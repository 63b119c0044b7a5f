package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/edelvane/moodctl/internal/daylio"
)

func TestWrite(t *testing.T) {
	d := &daylio.Daylio{
		CustomMoods: []daylio.CustomMood{
			{ID: 1, CustomName: "Good", MoodGroupID: 1, IconID: 1},
			{ID: 2, CustomName: "Bad", MoodGroupID: 4, IconID: 4},
		},
		Tags: []daylio.Tag{
			{ID: 1, Name: "work", Icon: 10},
		},
		DayEntries: []daylio.DayEntry{
			{ID: 1, Datetime: 1000, Year: 2023, Month: 1, Day: 1, Mood: 1, Note: "fine", Tags: []int64{1}},
			{ID: 2, Datetime: 2000, Year: 2023, Month: 1, Day: 2, Mood: 2},
		},
	}

	path := filepath.Join(t.TempDir(), "diary.db")
	if err := Write(d, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open exported database: %v", err)
	}
	defer db.Close()

	counts := map[string]int{
		"moods":      2,
		"tags":       1,
		"entries":    2,
		"entry_tags": 1,
	}
	for table, want := range counts {
		var got int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("%s rows = %d, want %d", table, got, want)
		}
	}

	var note string
	err = db.QueryRow(`
		SELECT e.note FROM entries e
		JOIN moods m ON m.id = e.mood_id
		WHERE m.name = 'Good'
	`).Scan(&note)
	if err != nil {
		t.Fatalf("Join query failed: %v", err)
	}
	if note != "fine" {
		t.Errorf("note = %q, want %q", note, "fine")
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	d := &daylio.Daylio{
		CustomMoods: []daylio.CustomMood{{ID: 1, CustomName: "Good"}},
		DayEntries:  []daylio.DayEntry{{ID: 1, Datetime: 1000, Mood: 1}},
	}

	path := filepath.Join(t.TempDir(), "diary.db")
	if err := Write(d, path); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := Write(d, path); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open exported database: %v", err)
	}
	defer db.Close()

	var got int
	if err := db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&got); err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if got != 1 {
		t.Errorf("entries = %d, want 1 after re-export", got)
	}
}
