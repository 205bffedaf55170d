package calibration

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS calibration_events (
	event_id                      TEXT PRIMARY KEY,
	timestamp                     TEXT NOT NULL,
	sector_id                     TEXT NOT NULL,
	sequence_label                TEXT NOT NULL,
	system_confidence             REAL NOT NULL,
	actual_performance_percentile REAL,
	trigger_id                    TEXT,
	adjustment_delta              REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_calibration_sector ON calibration_events(sector_id);
CREATE INDEX IF NOT EXISTS idx_calibration_sequence ON calibration_events(sequence_label);
CREATE INDEX IF NOT EXISTS idx_calibration_timestamp ON calibration_events(timestamp);
`

// #endregion schema

// #region sql-store

// SQLStore persists calibration events in SQLite.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore opens a SQLite database and runs migrations.
func NewSQLStore(dbPath string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// Append inserts a new event row.
func (s *SQLStore) Append(event Event) error {
	_, err := s.db.Exec(
		`INSERT INTO calibration_events
		 (event_id, timestamp, sector_id, sequence_label, system_confidence,
		  actual_performance_percentile, trigger_id, adjustment_delta)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.EventID,
		event.Timestamp.Format(time.RFC3339Nano),
		event.SectorID,
		event.SequenceLabel,
		event.SystemConfidence,
		nullFloat(event.ActualPerformancePercentile),
		nullIfEmpty(event.TriggerID),
		event.AdjustmentDelta,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Find retrieves an event by id; a miss is not an error.
func (s *SQLStore) Find(eventID string) (Event, bool, error) {
	row := s.db.QueryRow(
		`SELECT event_id, timestamp, sector_id, sequence_label, system_confidence,
		        actual_performance_percentile, trigger_id, adjustment_delta
		 FROM calibration_events WHERE event_id = ?`, eventID,
	)
	event, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return Event{}, false, nil
	}
	if err != nil {
		return Event{}, false, fmt.Errorf("find event %s: %w", eventID, err)
	}
	return event, true, nil
}

// Update writes the outcome fields of an existing event.
func (s *SQLStore) Update(event Event) error {
	res, err := s.db.Exec(
		`UPDATE calibration_events
		 SET actual_performance_percentile = ?, trigger_id = ?, adjustment_delta = ?
		 WHERE event_id = ?`,
		nullFloat(event.ActualPerformancePercentile),
		nullIfEmpty(event.TriggerID),
		event.AdjustmentDelta,
		event.EventID,
	)
	if err != nil {
		return fmt.Errorf("update event %s: %w", event.EventID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event %s: %w", event.EventID, err)
	}
	if n == 0 {
		return fmt.Errorf("event %s not found", event.EventID)
	}
	return nil
}

// List returns the most recent events, newest first.
func (s *SQLStore) List(limit int) ([]Event, error) {
	if limit <= 0 {
		// SQLite treats a negative limit as unlimited.
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT event_id, timestamp, sector_id, sequence_label, system_confidence,
		        actual_performance_percentile, trigger_id, adjustment_delta
		 FROM calibration_events ORDER BY timestamp DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// #endregion sql-store

// #region helpers

func scanEvent(scan func(dest ...any) error) (Event, error) {
	var event Event
	var timestampStr string
	var percentile sql.NullFloat64
	var triggerID sql.NullString

	err := scan(
		&event.EventID, &timestampStr, &event.SectorID, &event.SequenceLabel,
		&event.SystemConfidence, &percentile, &triggerID, &event.AdjustmentDelta,
	)
	if err != nil {
		return Event{}, err
	}

	event.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
	if percentile.Valid {
		v := percentile.Float64
		event.ActualPerformancePercentile = &v
	}
	if triggerID.Valid {
		event.TriggerID = triggerID.String
	}
	return event, nil
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
