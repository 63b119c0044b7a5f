package stats

import (
	"testing"

	"github.com/edelvane/moodctl/internal/daylio"
)

func entryOn(id int64, year, month, day int, mood int64, note string, tags ...int64) daylio.DayEntry {
	return daylio.DayEntry{
		ID:       id,
		Year:     int64(year),
		Month:    int64(month),
		Day:      int64(day),
		Datetime: id * 86_400_000,
		Mood:     mood,
		Note:     note,
		Tags:     tags,
	}
}

func TestComputeCounts(t *testing.T) {
	d := &daylio.Daylio{
		CustomMoods: []daylio.CustomMood{
			{ID: 1, CustomName: "Good"},
			{ID: 2, CustomName: "Bad"},
			{ID: 3, CustomName: "Unused"},
		},
		Tags: []daylio.Tag{
			{ID: 1, Name: "work"},
			{ID: 2, Name: "gym"},
		},
		DayEntries: []daylio.DayEntry{
			entryOn(1, 2023, 1, 1, 1, "went for a run", 1, 2),
			entryOn(2, 2023, 1, 2, 1, "two words", 1),
			entryOn(3, 2023, 1, 4, 2, ""),
		},
	}

	report := Compute(d)

	if report.Entries != 3 {
		t.Errorf("entries = %d, want 3", report.Entries)
	}
	if report.Words != 6 {
		t.Errorf("words = %d, want 6", report.Words)
	}

	if len(report.Moods) != 2 {
		t.Fatalf("got %d mood rows, want 2 (unused mood skipped)", len(report.Moods))
	}
	if report.Moods[0].Name != "Good" || report.Moods[0].Entries != 2 {
		t.Errorf("mood row = %+v, want Good with 2 entries", report.Moods[0])
	}

	if len(report.Tags) != 2 {
		t.Fatalf("got %d tag rows, want 2", len(report.Tags))
	}
	// Sorted by descending use.
	if report.Tags[0].Name != "work" || report.Tags[0].Entries != 2 {
		t.Errorf("tag row = %+v, want work with 2 entries", report.Tags[0])
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		days [][3]int
		want int
	}{
		{
			name: "no entries",
			days: nil,
			want: 0,
		},
		{
			name: "single day",
			days: [][3]int{{2023, 1, 1}},
			want: 1,
		},
		{
			name: "gap resets the streak",
			days: [][3]int{{2023, 1, 1}, {2023, 1, 2}, {2023, 1, 4}, {2023, 1, 5}, {2023, 1, 6}},
			want: 3,
		},
		{
			name: "two entries on one day count once",
			days: [][3]int{{2023, 1, 1}, {2023, 1, 1}, {2023, 1, 2}},
			want: 2,
		},
		{
			name: "streak across a month boundary",
			days: [][3]int{{2023, 1, 31}, {2023, 2, 1}, {2023, 2, 2}},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]daylio.DayEntry, 0, len(tt.days))
			for i, day := range tt.days {
				entries = append(entries, entryOn(int64(i+1), day[0], day[1], day[2], 1, ""))
			}
			if got := longestStreak(entries); got != tt.want {
				t.Errorf("longestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}
