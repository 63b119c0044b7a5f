package archive

import (
	"archive/zip"
	"encoding/base64"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/edelvane/moodctl/internal/daylio"
)

func sampleBackup() *daylio.Daylio {
	d := daylio.Default()
	d.Tags = []daylio.Tag{{ID: 1, Name: "work", Icon: 10, IDTagGroup: 1}}
	d.DayEntries = []daylio.DayEntry{
		{ID: 1, Datetime: 1000, Year: 2023, Month: 1, Day: 1, Mood: 2, Note: "a <note> & more", Tags: []int64{1}},
	}
	d.Metadata.NumberOfEntries = 1
	return d
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.daylio")
	want := sampleBackup()

	if err := StoreBackup(want, path); err != nil {
		t.Fatalf("StoreBackup failed: %v", err)
	}

	got, err := LoadBackup(path)
	if err != nil {
		t.Fatalf("LoadBackup failed: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the backup:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestBackupContainerLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.daylio")
	if err := StoreBackup(sampleBackup(), path); err != nil {
		t.Fatalf("StoreBackup failed: %v", err)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 1 || reader.File[0].Name != BackupEntryName {
		t.Fatalf("archive entries = %v, want single %s", reader.File, BackupEntryName)
	}
	if reader.File[0].Method != zip.Store {
		t.Errorf("entry method = %d, want stored (uncompressed)", reader.File[0].Method)
	}
}

func TestLoadBackupToleratesWrappedBase64(t *testing.T) {
	// Some exports hard-wrap the base64 payload; newlines must be ignored.
	data, err := MarshalJSON(sampleBackup())
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)

	var wrapped strings.Builder
	for i := 0; i < len(encoded); i += 76 {
		end := i + 76
		if end > len(encoded) {
			end = len(encoded)
		}
		wrapped.WriteString(encoded[i:end])
		wrapped.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "wrapped.daylio")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	writer := zip.NewWriter(out)
	entry, err := writer.Create(BackupEntryName)
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if _, err := entry.Write([]byte(wrapped.String())); err != nil {
		t.Fatalf("Failed to write entry: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Failed to close file: %v", err)
	}

	got, err := LoadBackup(path)
	if err != nil {
		t.Fatalf("LoadBackup failed on wrapped payload: %v", err)
	}
	if len(got.DayEntries) != 1 {
		t.Errorf("got %d entries, want 1", len(got.DayEntries))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	want := sampleBackup()

	if err := StoreJSON(want, path); err != nil {
		t.Fatalf("StoreJSON failed: %v", err)
	}

	// HTML characters in notes must not be escaped.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read JSON: %v", err)
	}
	if !strings.Contains(string(raw), "a <note> & more") {
		t.Error("note text was escaped in JSON output")
	}

	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the backup:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestStoreBackupLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.daylio")
	if err := StoreBackup(sampleBackup(), path); err != nil {
		t.Fatalf("StoreBackup failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.daylio" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only out.daylio", names)
	}
}
