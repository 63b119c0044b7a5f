// Package export writes a backup into a SQLite database so entries can be
// queried with ordinary SQL.
package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/edelvane/moodctl/internal/daylio"
)

const schema = `
CREATE TABLE IF NOT EXISTS moods (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	mood_group_id INTEGER NOT NULL,
	icon_id INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	icon INTEGER NOT NULL,
	display_order INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY,
	datetime INTEGER NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL,
	day INTEGER NOT NULL,
	mood_id INTEGER NOT NULL REFERENCES moods(id),
	note_title TEXT NOT NULL,
	note TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entry_tags (
	entry_id INTEGER NOT NULL REFERENCES entries(id),
	tag_id INTEGER NOT NULL REFERENCES tags(id),
	PRIMARY KEY (entry_id, tag_id)
);
`

// Write creates (or replaces) a SQLite database at path holding the backup's
// moods, tags, and entries. The whole export runs in one transaction.
func Write(d *daylio.Daylio, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to apply pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, mood := range d.CustomMoods {
		_, err := tx.Exec(
			"INSERT INTO moods (id, name, mood_group_id, icon_id, created_at) VALUES (?, ?, ?, ?, ?)",
			mood.ID, mood.CustomName, mood.MoodGroupID, mood.IconID, mood.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert mood %d: %w", mood.ID, err)
		}
	}

	for _, tag := range d.Tags {
		_, err := tx.Exec(
			"INSERT INTO tags (id, name, icon, display_order, created_at) VALUES (?, ?, ?, ?, ?)",
			tag.ID, tag.Name, tag.Icon, tag.Order, tag.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tag %d: %w", tag.ID, err)
		}
	}

	for _, entry := range d.DayEntries {
		_, err := tx.Exec(
			"INSERT INTO entries (id, datetime, year, month, day, mood_id, note_title, note) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			entry.ID, entry.Datetime, entry.Year, entry.Month, entry.Day, entry.Mood, entry.NoteTitle, entry.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", entry.ID, err)
		}
		for _, tagID := range entry.Tags {
			_, err := tx.Exec(
				"INSERT INTO entry_tags (entry_id, tag_id) VALUES (?, ?)",
				entry.ID, tagID,
			)
			if err != nil {
				return fmt.Errorf("failed to link entry %d to tag %d: %w", entry.ID, tagID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}
