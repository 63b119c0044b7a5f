// Package diffio renders the entry-level difference between two backups as a
// unified diff. Entries are flattened to canonical one-line records so ids,
// which are renumbered on every merge, never show up as noise.
package diffio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/edelvane/moodctl/internal/daylio"
)

// maxNoteWidth truncates note previews so one entry stays on one line.
const maxNoteWidth = 60

// Unified returns a unified diff between two backups, or the empty string
// when their entries are identical.
func Unified(a, b *daylio.Daylio, fromFile, toFile string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        canonicalLines(a),
		B:        canonicalLines(b),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to compute diff: %w", err)
	}
	return text, nil
}

// canonicalLines renders each entry as one sorted line of stable fields:
// timestamp, mood name, tag names, note preview.
func canonicalLines(d *daylio.Daylio) []string {
	moodNames := make(map[int64]string, len(d.CustomMoods))
	for _, mood := range d.CustomMoods {
		moodNames[mood.ID] = mood.CustomName
	}
	tagNames := make(map[int64]string, len(d.Tags))
	for _, tag := range d.Tags {
		tagNames[tag.ID] = tag.Name
	}

	lines := make([]string, 0, len(d.DayEntries))
	for _, entry := range d.DayEntries {
		mood, ok := moodNames[entry.Mood]
		if !ok || mood == "" {
			mood = fmt.Sprintf("mood#%d", entry.Mood)
		}

		tags := make([]string, 0, len(entry.Tags))
		for _, tagID := range entry.Tags {
			if name, ok := tagNames[tagID]; ok {
				tags = append(tags, name)
			} else {
				tags = append(tags, fmt.Sprintf("tag#%d", tagID))
			}
		}
		sort.Strings(tags)

		when := time.UnixMilli(entry.Datetime).UTC().Format("2006-01-02 15:04")
		lines = append(lines, fmt.Sprintf("%s | %s | [%s] | %s\n",
			when, mood, strings.Join(tags, " "), notePreview(entry)))
	}

	sort.Strings(lines)
	return lines
}

func notePreview(entry daylio.DayEntry) string {
	note := strings.TrimSpace(entry.NoteTitle + " " + entry.Note)
	note = strings.Join(strings.Fields(note), " ")
	if len(note) > maxNoteWidth {
		note = note[:maxNoteWidth] + "..."
	}
	return note
}
