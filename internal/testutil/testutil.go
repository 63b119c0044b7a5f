// Package testutil provides dataset builders and file helpers for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/edelvane/moodctl/internal/archive"
	"github.com/edelvane/moodctl/internal/daylio"
)

// Mood builds a custom mood with the identity fields tests care about.
func Mood(id int64, name string, iconID, groupID int64) daylio.CustomMood {
	return daylio.CustomMood{
		ID:          id,
		CustomName:  name,
		IconID:      iconID,
		MoodGroupID: groupID,
		CreatedAt:   id * 1000,
	}
}

// Tag builds a tag with the identity fields tests care about.
func Tag(id int64, name string, icon int64) daylio.Tag {
	return daylio.Tag{
		ID:        id,
		Name:      name,
		Icon:      icon,
		CreatedAt: id * 1000,
	}
}

// Entry builds a day entry at the given unix-milli timestamp referencing a
// mood and optional tags. Calendar fields are fixed to January 2023; tests
// that exercise calendar logic set them explicitly.
func Entry(id, datetime, mood int64, tags ...int64) daylio.DayEntry {
	return daylio.DayEntry{
		ID:       id,
		Datetime: datetime,
		Year:     2023,
		Month:    1,
		Day:      1,
		Mood:     mood,
		Tags:     tags,
	}
}

// Dataset assembles a version-15 backup from parts.
func Dataset(moods []daylio.CustomMood, tags []daylio.Tag, entries []daylio.DayEntry) *daylio.Daylio {
	return &daylio.Daylio{
		Version:     daylio.SupportedVersion,
		CustomMoods: moods,
		Tags:        tags,
		DayEntries:  entries,
		Metadata: daylio.Metadata{
			NumberOfEntries: int64(len(entries)),
		},
	}
}

// WriteBackup stores a dataset as a .daylio container in a temp dir and
// returns its path.
func WriteBackup(t *testing.T, d *daylio.Daylio, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := archive.StoreBackup(d, path); err != nil {
		t.Fatalf("Failed to write backup %s: %v", path, err)
	}
	return path
}
