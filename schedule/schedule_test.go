package schedule

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gardenpip/dosing"
)

func sampleEntry(date string) Entry {
	sel := dosing.Selection{
		Manufacturer:  "General Hydroponics",
		Series:        "Flora Series",
		Stage:         "Seedling",
		PlantCategory: "Tomatoes",
		Unit:          "metric",
		Volume:        100,
		CalMag:        "CALiMAGic",
	}
	result := &dosing.Result{Lines: []string{"Micro: 200.00 ml", "Grow: 100.00 ml"}}
	parsed, _ := time.Parse(time.RFC3339, date)
	return NewEntry(sel, result, parsed)
}

func TestNewEntry(t *testing.T) {
	e := sampleEntry("2026-08-28T10:00:00Z")
	if e.ID == "" {
		t.Error("entry has no ID")
	}
	if e.Date != "2026-08-28T10:00:00Z" {
		t.Errorf("Date = %q, want RFC3339 timestamp", e.Date)
	}
	if e.CalMag != "CALiMAGic" {
		t.Errorf("CalMag = %q, want CALiMAGic", e.CalMag)
	}
	if len(e.Lines) != 2 {
		t.Errorf("len(Lines) = %d, want 2", len(e.Lines))
	}

	e2 := sampleEntry("2026-08-28T10:00:00Z")
	if e2.ID == e.ID {
		t.Error("two entries share an ID")
	}
}

func TestNewEntry_NoneSentinelDropped(t *testing.T) {
	sel := dosing.Selection{Manufacturer: "M", Series: "S", CalMag: dosing.NoSupplement}
	e := NewEntry(sel, &dosing.Result{}, time.Now())
	if e.CalMag != "" {
		t.Errorf("CalMag = %q, want empty for the None sentinel", e.CalMag)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if _, present := m["cal_mag"]; present {
		t.Error("cal_mag field serialized despite being absent")
	}
}

func TestFileStore_AppendAndAll(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "data"))

	first := sampleEntry("2026-08-27T08:00:00Z")
	second := sampleEntry("2026-08-28T08:00:00Z")
	if err := store.Append(first); err != nil {
		t.Fatalf("Append(first) returned error: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("Append(second) returned error: %v", err)
	}

	entries, err := store.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Error("All() did not return entries newest first")
	}
	if entries[0].Lines[0] != "Micro: 200.00 ml" {
		t.Errorf("Lines[0] = %q, want the verbatim dosing line", entries[0].Lines[0])
	}

	// The on-disk shape is a plain JSON array of entry objects.
	raw, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var onDisk []map[string]any
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("log file is not a JSON array: %v", err)
	}
	if onDisk[0]["manufacturer"] != "General Hydroponics" {
		t.Errorf("on-disk manufacturer = %v, want General Hydroponics", onDisk[0]["manufacturer"])
	}
}

func TestFileStore_CorruptFileRestartsLog(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seeding corrupt log: %v", err)
	}

	e := sampleEntry("2026-08-28T08:00:00Z")
	if err := store.Append(e); err != nil {
		t.Fatalf("Append over corrupt log returned error: %v", err)
	}
	entries, err := store.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != e.ID {
		t.Errorf("entries = %+v, want just the fresh entry", entries)
	}
}

func TestFileStore_AllOnMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-created"))
	entries, err := store.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	defer store.Close()

	first := sampleEntry("2026-08-27T08:00:00Z")
	second := sampleEntry("2026-08-28T08:00:00Z")
	if err := store.Append(first); err != nil {
		t.Fatalf("Append(first) returned error: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("Append(second) returned error: %v", err)
	}

	entries, err := store.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Error("All() did not order newest first")
	}
	got := entries[1]
	if got.Manufacturer != first.Manufacturer || got.Stage != first.Stage || got.Volume != first.Volume || got.CalMag != first.CalMag {
		t.Errorf("round-tripped entry = %+v, want %+v", got, first)
	}
	if len(got.Lines) != 2 || got.Lines[0] != first.Lines[0] {
		t.Errorf("round-tripped lines = %v, want %v", got.Lines, first.Lines)
	}
}

func TestSQLiteStore_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	e := sampleEntry("2026-08-28T08:00:00Z")
	if err := store.Append(e); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer reopened.Close()
	entries, err := reopened.All()
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != e.ID {
		t.Errorf("entries after reopen = %+v, want the one appended entry", entries)
	}
}
