// Package archive reads and writes Daylio backup containers.
//
// A .daylio export is a zip archive holding a single entry named
// "backup.daylio" whose content is the base64-encoded backup JSON. The
// package also handles the raw JSON form used by the extract and pack
// commands.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/edelvane/moodctl/internal/daylio"
)

// BackupEntryName is the single entry inside a backup container.
const BackupEntryName = "backup.daylio"

// LoadBackup reads a .daylio container from disk.
func LoadBackup(path string) (*daylio.Daylio, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup %s: %w", path, err)
	}
	defer reader.Close()

	entry, err := reader.Open(BackupEntryName)
	if err != nil {
		return nil, fmt.Errorf("backup %s has no %s entry: %w", path, BackupEntryName, err)
	}
	defer entry.Close()

	encoded, err := io.ReadAll(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup entry: %w", err)
	}

	// Some exports wrap the base64 payload across lines.
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(string(encoded))

	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to decode backup payload: %w", err)
	}

	var d daylio.Daylio
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse backup JSON: %w", err)
	}

	return &d, nil
}

// StoreBackup writes a .daylio container. The write is atomic: content goes
// to a uniquely named temp file in the target directory first and is renamed
// into place.
func StoreBackup(d *daylio.Daylio, path string) error {
	data, err := MarshalJSON(d)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	// The payload is base64 text; stored uncompressed like the app's own
	// exports.
	entry, err := writer.CreateHeader(&zip.FileHeader{
		Name:   BackupEntryName,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("failed to create backup entry: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	if _, err := entry.Write([]byte(encoded)); err != nil {
		return fmt.Errorf("failed to write backup entry: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize backup archive: %w", err)
	}

	return writeAtomic(path, buf.Bytes())
}

// LoadJSON reads a backup stored as raw JSON (the extract output format).
func LoadJSON(path string) (*daylio.Daylio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var d daylio.Daylio
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse backup JSON: %w", err)
	}

	return &d, nil
}

// StoreJSON writes a backup as indented raw JSON.
func StoreJSON(d *daylio.Daylio, path string) error {
	data, err := MarshalJSON(d)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// MarshalJSON renders a backup as indented JSON without HTML escaping, so
// note text round-trips unmangled.
func MarshalJSON(d *daylio.Daylio) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode backup JSON: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", tmp, err)
	}
	return nil
}
