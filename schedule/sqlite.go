package schedule

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the schedule log in a single SQLite table whose columns
// mirror the Entry payload, with the dosing lines stored as a JSON array
// string. Alternative to FileStore for installs that already keep a garden
// database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a schedule log at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule db %s: %w", path, err)
	}
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schedule_log (
		id TEXT PRIMARY KEY,
		date TEXT,
		manufacturer TEXT,
		series TEXT,
		stage TEXT,
		plant_category TEXT,
		unit TEXT,
		volume REAL,
		cal_mag TEXT,
		lines TEXT
	);`)
	if err != nil {
		return fmt.Errorf("initializing schedule schema: %w", err)
	}
	return nil
}

// Append inserts one entry.
func (s *SQLiteStore) Append(e Entry) error {
	lines, err := json.Marshal(e.Lines)
	if err != nil {
		return fmt.Errorf("encoding dosing lines: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO schedule_log (id, date, manufacturer, series, stage, plant_category, unit, volume, cal_mag, lines)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.Manufacturer, e.Series, e.Stage, e.PlantCategory, e.Unit, e.Volume, e.CalMag, string(lines),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

// All returns the logged entries, newest first.
func (s *SQLiteStore) All() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, date, manufacturer, series, stage, plant_category, unit, volume, cal_mag, lines
		 FROM schedule_log ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying schedule log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var lines string
		if err := rows.Scan(&e.ID, &e.Date, &e.Manufacturer, &e.Series, &e.Stage, &e.PlantCategory, &e.Unit, &e.Volume, &e.CalMag, &lines); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		if err := json.Unmarshal([]byte(lines), &e.Lines); err != nil {
			return nil, fmt.Errorf("decoding dosing lines for entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
