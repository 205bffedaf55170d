package calibration

import "time"

// #region event

// Event records one underwriting decision's confidence for later
// outcome-based trigger evaluation. Outcome fields start null and are
// written exactly once when ground-truth performance arrives; events are
// never deleted.
type Event struct {
	EventID                     string    `json:"event_id"`
	Timestamp                   time.Time `json:"timestamp"`
	SectorID                    string    `json:"sector_id"`
	SequenceLabel               string    `json:"sequence_label"`
	SystemConfidence            float64   `json:"system_confidence"`
	ActualPerformancePercentile *float64  `json:"actual_performance_percentile"`
	TriggerID                   string    `json:"trigger_id,omitempty"`
	AdjustmentDelta             float64   `json:"adjustment_delta"`
}

// #endregion event

// #region triggers

// Trigger is one calibration miscalibration detector. Adjustments are
// recorded on the event; feeding them back into future scoring is an
// external consumer's concern.
type Trigger struct {
	ID      string
	Matches func(systemConfidence, actualPercentile float64) bool
	Delta   float64
}

// Triggers is the fixed detector set, evaluated in order; the first match
// wins.
var Triggers = []Trigger{
	{
		ID: "FALSE_POSITIVE_CLUSTER",
		Matches: func(conf, perf float64) bool {
			return conf > 0.75 && perf < 0.40
		},
		Delta: -0.05,
	},
	{
		ID: "FALSE_NEGATIVE_CLUSTER",
		Matches: func(conf, perf float64) bool {
			return conf < 0.55 && perf > 0.65
		},
		Delta: 0.05,
	},
}

// #endregion triggers

// #region store

// Store is the append-only event log. Backings: memory for tests and
// single-shot runs, SQLite for durable tracking.
type Store interface {
	Append(event Event) error
	Find(eventID string) (Event, bool, error)
	Update(event Event) error
	List(limit int) ([]Event, error)
}

// #endregion store
