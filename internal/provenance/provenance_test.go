package provenance

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-decision-tests

func TestLogDecision_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := Entry{
		BrandID:              "brand-1",
		SectorID:             "BEAUTY_SKINCARE",
		SequenceLabel:        "image_video_landing_page",
		Decision:             "AUTO_LAUNCH",
		SystemFit:            0.9,
		SystemConfidence:     0.88,
		TransitionPenaltySum: 0,
		TriggeredPenalties:   "",
		Rationale:            "All AUTO_LAUNCH conditions satisfied",
		CalibrationEventID:   "ev-1",
		CreatedAt:            time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogDecision(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM decision_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var brandID, decision string
	var fit float64
	db.QueryRow("SELECT brand_id, decision, system_fit FROM decision_log").Scan(&brandID, &decision, &fit)
	if brandID != "brand-1" {
		t.Errorf("expected brand_id 'brand-1', got %q", brandID)
	}
	if decision != "AUTO_LAUNCH" {
		t.Errorf("expected decision 'AUTO_LAUNCH', got %q", decision)
	}
	if fit != 0.9 {
		t.Errorf("expected system_fit 0.9, got %v", fit)
	}
}

func TestLogDecision_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := Entry{
		BrandID:       "brand-2",
		SectorID:      "BEAUTY_SKINCARE",
		SequenceLabel: "image_video_landing_page",
		Decision:      "HUMAN_REVIEW",
	}

	before := time.Now().UTC()
	if err := LogDecision(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM decision_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogDecision_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := Entry{
		BrandID:       "brand-3",
		SectorID:      "BEAUTY_SKINCARE",
		SequenceLabel: "image_video_landing_page",
		Decision:      "NO_LAUNCH",
		CreatedAt:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogDecision(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var penalties, rationale, eventID sql.NullString
	db.QueryRow("SELECT triggered_penalties, rationale, calibration_event_id FROM decision_log").Scan(
		&penalties, &rationale, &eventID,
	)
	if penalties.Valid {
		t.Error("expected NULL triggered_penalties for empty string")
	}
	if rationale.Valid {
		t.Error("expected NULL rationale for empty string")
	}
	if eventID.Valid {
		t.Error("expected NULL calibration_event_id for empty string")
	}
}

func TestLogDecision_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	entry := Entry{
		BrandID:       "brand-4",
		SectorID:      "BEAUTY_SKINCARE",
		SequenceLabel: "image_video_landing_page",
		Decision:      "NO_LAUNCH",
	}

	if err := LogDecision(db, entry); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-decision-tests
