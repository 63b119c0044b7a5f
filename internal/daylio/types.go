// Package daylio defines the in-memory model of a Daylio backup.
//
// Field names follow the JSON produced by the app's export: mostly camelCase
// with a handful of legacy snake_case keys (custom_name, tag_groups, ...).
// Sections the tool never interprets are kept as raw JSON so a load/store
// round trip preserves them byte-for-byte, and unset fields are omitted
// rather than emitted as nulls.
package daylio

import (
	"encoding/json"
)

// SupportedVersion is the backup schema version this tool is written against.
// Other versions are merged on a best-effort basis with a warning.
const SupportedVersion = 15

// Daylio is one complete backup: reference entities (moods, tags), the day
// entries pointing at them by id, and everything else the app exports.
type Daylio struct {
	Version               int64             `json:"version"`
	IsReminderOn          bool              `json:"isReminderOn"`
	CustomMoods           []CustomMood      `json:"customMoods"`
	Tags                  []Tag             `json:"tags"`
	DayEntries            []DayEntry        `json:"dayEntries"`
	Achievements          []json.RawMessage `json:"achievements,omitempty"`
	DaysInRowLongestChain int64             `json:"daysInRowLongestChain"`
	Goals                 []json.RawMessage `json:"goals,omitempty"`
	Prefs                 []Pref            `json:"prefs,omitempty"`
	TagGroups             []TagGroup        `json:"tag_groups,omitempty"`
	Metadata              Metadata          `json:"metadata"`
	MoodIconsPackID       int64             `json:"moodIconsPackId"`
	PreferredMoodIcons    json.RawMessage   `json:"preferredMoodIconsIdsForMoodIdsForIconsPack,omitempty"`
	Assets                []json.RawMessage `json:"assets,omitempty"`
	GoalEntries           []json.RawMessage `json:"goalEntries,omitempty"`
	GoalSuccessWeeks      []json.RawMessage `json:"goalSuccessWeeks,omitempty"`
	Reminders             []Reminder        `json:"reminders,omitempty"`
	WritingTemplates      []WritingTemplate `json:"writingTemplates,omitempty"`
	MoodIconsFreePackID   int64             `json:"moodIconsDefaultFreePackId"`
}

// CustomMood is a user-defined mood label. Two moods are the same entity when
// they share (lowercased CustomName, IconID, MoodGroupID).
type CustomMood struct {
	ID               int64  `json:"id"`
	CustomName       string `json:"custom_name"`
	MoodGroupID      int64  `json:"mood_group_id"`
	MoodGroupOrder   int64  `json:"mood_group_order"`
	IconID           int64  `json:"icon_id"`
	PredefinedNameID int64  `json:"predefined_name_id"`
	State            int64  `json:"state"`
	CreatedAt        int64  `json:"createdAt"`
}

// Tag is a user-defined label attachable to day entries. Two tags are the
// same entity when they share (lowercased Name, Icon).
type Tag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"createdAt"`
	Icon       int64  `json:"icon"`
	Order      int64  `json:"order"`
	State      int64  `json:"state"`
	IDTagGroup int64  `json:"id_tag_group"`
}

// DayEntry is one logged record. Mood holds a CustomMood id and Tags holds
// Tag ids; Datetime is unix milliseconds and doubles as the entry's identity
// during deduplication.
type DayEntry struct {
	ID             int64             `json:"id"`
	Minute         int64             `json:"minute"`
	Hour           int64             `json:"hour"`
	Day            int64             `json:"day"`
	Month          int64             `json:"month"`
	Year           int64             `json:"year"`
	Datetime       int64             `json:"datetime"`
	TimeZoneOffset int64             `json:"timeZoneOffset"`
	Mood           int64             `json:"mood"`
	Note           string            `json:"note"`
	NoteTitle      string            `json:"note_title"`
	Tags           []int64           `json:"tags"`
	Assets         []json.RawMessage `json:"assets,omitempty"`
}

// Metadata carries derived counters. NumberOfEntries tracks len(DayEntries);
// the photo counters are maintained by the app and merged additively since
// photo payloads are not part of the backup JSON.
type Metadata struct {
	NumberOfEntries int64  `json:"number_of_entries"`
	CreatedAt       int64  `json:"created_at"`
	IsAutoBackup    bool   `json:"is_auto_backup"`
	Platform        string `json:"platform,omitempty"`
	AndroidVersion  int64  `json:"android_version"`
	NumberOfPhotos  int64  `json:"number_of_photos"`
	PhotosSize      int64  `json:"photos_size"`
}

// Pref is an app preference entry. The value is opaque to this tool.
type Pref struct {
	Key      string          `json:"key"`
	PrefName string          `json:"pref_name"`
	Value    json.RawMessage `json:"value"`
}

// TagGroup is a display grouping for tags.
type TagGroup struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsExpanded bool   `json:"is_expanded"`
	Order      int64  `json:"order"`
}

// Reminder is a daily notification slot.
type Reminder struct {
	ID                int64 `json:"id"`
	Hour              int64 `json:"hour"`
	Minute            int64 `json:"minute"`
	State             int64 `json:"state"`
	CustomTextEnabled bool  `json:"custom_text_enabled"`
}

// WritingTemplate is a note template.
type WritingTemplate struct {
	ID                   int64  `json:"id"`
	Order                int64  `json:"order"`
	PredefinedTemplateID int64  `json:"predefined_template_id"`
	Title                string `json:"title"`
	Body                 string `json:"body"`
}

// Clone returns a deep copy. The merge pipeline mutates ids and orderings in
// place, so callers that must not see their input change hand it a clone.
func (d *Daylio) Clone() *Daylio {
	out := *d

	out.CustomMoods = append([]CustomMood(nil), d.CustomMoods...)
	out.Tags = append([]Tag(nil), d.Tags...)
	out.Prefs = append([]Pref(nil), d.Prefs...)
	out.TagGroups = append([]TagGroup(nil), d.TagGroups...)
	out.Reminders = append([]Reminder(nil), d.Reminders...)
	out.WritingTemplates = append([]WritingTemplate(nil), d.WritingTemplates...)
	out.Achievements = cloneRawSlice(d.Achievements)
	out.Goals = cloneRawSlice(d.Goals)
	out.Assets = cloneRawSlice(d.Assets)
	out.GoalEntries = cloneRawSlice(d.GoalEntries)
	out.GoalSuccessWeeks = cloneRawSlice(d.GoalSuccessWeeks)
	out.PreferredMoodIcons = append(json.RawMessage(nil), d.PreferredMoodIcons...)

	out.DayEntries = make([]DayEntry, len(d.DayEntries))
	for i, entry := range d.DayEntries {
		entry.Tags = append([]int64(nil), entry.Tags...)
		entry.Assets = cloneRawSlice(entry.Assets)
		out.DayEntries[i] = entry
	}

	return &out
}

func cloneRawSlice(in []json.RawMessage) []json.RawMessage {
	if in == nil {
		return nil
	}
	out := make([]json.RawMessage, len(in))
	for i, raw := range in {
		out[i] = append(json.RawMessage(nil), raw...)
	}
	return out
}
