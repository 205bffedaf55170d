package provenance

import "time"

// #region entry

// Entry is a single row in the decision_log table. TriggeredPenalties
// and Rationale are pre-joined strings so the row is readable with plain
// SQL, without unpacking JSON.
type Entry struct {
	BrandID              string
	SectorID             string
	SequenceLabel        string
	Decision             string
	SystemFit            float64
	SystemConfidence     float64
	TransitionPenaltySum float64
	TriggeredPenalties   string
	Rationale            string
	CalibrationEventID   string
	CreatedAt            time.Time
}

// #endregion entry
