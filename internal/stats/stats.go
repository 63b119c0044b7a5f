// Package stats computes summary statistics over a single backup. All
// functions are pure and operate on in-memory data.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/edelvane/moodctl/internal/daylio"
)

// Report is the summary for one backup.
type Report struct {
	Entries       int         `json:"entries"`
	FirstEntry    string      `json:"first_entry,omitempty"`
	LastEntry     string      `json:"last_entry,omitempty"`
	Words         int         `json:"words"`
	LongestStreak int         `json:"longest_streak_days"`
	Moods         []MoodUsage `json:"moods,omitempty"`
	Tags          []TagUsage  `json:"tags,omitempty"`
}

// MoodUsage counts how often a mood was logged.
type MoodUsage struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
}

// TagUsage counts how often a tag was applied, with its first and last use.
type TagUsage struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
}

// Compute builds a Report for the given backup. Moods are listed in the
// backup's own order, tags by descending use. Entries referencing unknown moods or tags are
// counted under the entry totals but skipped in the per-entity breakdowns.
func Compute(d *daylio.Daylio) *Report {
	report := &Report{Entries: len(d.DayEntries)}

	if len(d.DayEntries) > 0 {
		first, last := d.DayEntries[0].Datetime, d.DayEntries[0].Datetime
		for _, entry := range d.DayEntries {
			if entry.Datetime < first {
				first = entry.Datetime
			}
			if entry.Datetime > last {
				last = entry.Datetime
			}
		}
		report.FirstEntry = formatDay(first)
		report.LastEntry = formatDay(last)
	}

	for _, entry := range d.DayEntries {
		report.Words += len(strings.Fields(entry.NoteTitle)) + len(strings.Fields(entry.Note))
	}

	report.LongestStreak = longestStreak(d.DayEntries)

	moodCounts := make(map[int64]int)
	tagCounts := make(map[int64]int)
	tagFirst := make(map[int64]int64)
	tagLast := make(map[int64]int64)
	for _, entry := range d.DayEntries {
		moodCounts[entry.Mood]++
		for _, tagID := range entry.Tags {
			tagCounts[tagID]++
			if first, ok := tagFirst[tagID]; !ok || entry.Datetime < first {
				tagFirst[tagID] = entry.Datetime
			}
			if entry.Datetime > tagLast[tagID] {
				tagLast[tagID] = entry.Datetime
			}
		}
	}

	for _, mood := range d.CustomMoods {
		if count := moodCounts[mood.ID]; count > 0 {
			report.Moods = append(report.Moods, MoodUsage{
				Name:    mood.CustomName,
				Entries: count,
			})
		}
	}

	for _, tag := range d.Tags {
		count := tagCounts[tag.ID]
		if count == 0 {
			continue
		}
		report.Tags = append(report.Tags, TagUsage{
			Name:    tag.Name,
			Entries: count,
			First:   formatDay(tagFirst[tag.ID]),
			Last:    formatDay(tagLast[tag.ID]),
		})
	}
	sort.SliceStable(report.Tags, func(i, j int) bool {
		return report.Tags[i].Entries > report.Tags[j].Entries
	})

	return report
}

// longestStreak returns the length of the longest run of consecutive days
// with at least one entry, counting each calendar day once.
func longestStreak(entries []daylio.DayEntry) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(entries))
	for _, entry := range entries {
		day := time.Date(int(entry.Year), time.Month(entry.Month), int(entry.Day), 0, 0, 0, 0, time.UTC)
		days[day] = true
	}

	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

func formatDay(millis int64) string {
	return time.UnixMilli(millis).UTC().Format("2006-01-02")
}
