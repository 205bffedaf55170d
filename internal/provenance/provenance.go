package provenance

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS decision_log (
	brand_id               TEXT NOT NULL,
	sector_id              TEXT NOT NULL,
	sequence_label         TEXT NOT NULL,
	decision               TEXT NOT NULL,
	system_fit             REAL NOT NULL,
	system_confidence      REAL NOT NULL,
	transition_penalty_sum REAL NOT NULL,
	triggered_penalties    TEXT,
	rationale              TEXT,
	calibration_event_id   TEXT,
	created_at             TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decision_log_brand ON decision_log(brand_id);
CREATE INDEX IF NOT EXISTS idx_decision_log_created ON decision_log(created_at);
`

// EnsureSchema creates the decision_log table if missing.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate decision log: %w", err)
	}
	return nil
}

// #endregion schema

// #region log-decision

// LogDecision writes one row to the decision_log table. The log is
// append-only: rows are never updated or deleted, so a dispute about a
// past launch decision can always be traced to the exact scores and
// rationale it was made on.
func LogDecision(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log
		 (brand_id, sector_id, sequence_label, decision, system_fit, system_confidence,
		  transition_penalty_sum, triggered_penalties, rationale, calibration_event_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.BrandID,
		entry.SectorID,
		entry.SequenceLabel,
		entry.Decision,
		entry.SystemFit,
		entry.SystemConfidence,
		entry.TransitionPenaltySum,
		nullIfEmpty(entry.TriggeredPenalties),
		nullIfEmpty(entry.Rationale),
		nullIfEmpty(entry.CalibrationEventID),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
