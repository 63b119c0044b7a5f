package daylio

import "encoding/json"

// NumberOfPredefinedMoods is how many built-in moods the app ships with.
const NumberOfPredefinedMoods = 5

// Default returns a fresh, empty version-15 backup: the five predefined
// moods, the default tag group, and the preference entries the app writes on
// first launch. Used as the skeleton for pack and for tests.
func Default() *Daylio {
	moods := make([]CustomMood, 0, NumberOfPredefinedMoods)
	for i := int64(1); i <= NumberOfPredefinedMoods; i++ {
		moods = append(moods, CustomMood{
			ID:               i,
			IconID:           i,
			PredefinedNameID: i,
			MoodGroupID:      i,
		})
	}

	return &Daylio{
		Version:     SupportedVersion,
		CustomMoods: moods,
		Prefs:       defaultPrefs(),
		TagGroups: []TagGroup{
			{ID: 1, Name: "Default", IsExpanded: true, Order: 1},
		},
		MoodIconsPackID:     1,
		MoodIconsFreePackID: 1,
	}
}

func defaultPrefs() []Pref {
	entries := []struct {
		key   string
		value string
	}{
		{"BACKUP_REMINDER_DONT_SHOW_AGAIN", "0"},
		{"LAST_DAYS_IN_ROWS_NUMBER", "0"},
		{"DAYS_IN_ROW_LONGEST_CHAIN", "0"},
		{"LAST_ENTRY_CREATION_TIME", "0"},
		{"COLOR_PALETTE_DEFAULT_CODE", "1"},
		{"PREDEFINED_MOODS_VARIANT", "1"},
		{"ONBOARDING_USER_PROPERTY", `"finished"`},
		{"WAS_EMOJI_SCREEN_VISITED", "0"},
		{"PIN_LOCK_STATE", "2"},
		{"ARE_MEMORIES_VISIBLE_TO_USER", "1"},
	}

	prefs := make([]Pref, 0, len(entries))
	for _, e := range entries {
		prefs = append(prefs, Pref{
			Key:      e.key,
			PrefName: "default",
			Value:    json.RawMessage(e.value),
		})
	}
	return prefs
}
