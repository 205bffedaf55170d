package calibration

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// #region tracker

// Tracker is the passive feedback accumulator: it records one event per
// decision and evaluates miscalibration triggers when outcomes arrive.
type Tracker struct {
	store Store
}

// NewTracker creates a tracker backed by the given store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// TrackEvaluation appends a fresh event with nulled outcome fields.
// Called once per decision, after the decision is fully computed.
func (t *Tracker) TrackEvaluation(sectorID, sequenceLabel string, systemConfidence float64) (Event, error) {
	event := Event{
		EventID:          uuid.New().String(),
		Timestamp:        time.Now().UTC(),
		SectorID:         sectorID,
		SequenceLabel:    sequenceLabel,
		SystemConfidence: systemConfidence,
	}
	if err := t.store.Append(event); err != nil {
		return Event{}, fmt.Errorf("track evaluation: %w", err)
	}
	return event, nil
}

// UpdatePerformance records the actual performance percentile for an
// event and evaluates calibration triggers synchronously. An unknown id
// is a non-fatal miss (found=false): performance updates are best-effort
// and may race ahead of tracking.
func (t *Tracker) UpdatePerformance(eventID string, actualPercentile float64) (Event, bool, error) {
	event, found, err := t.store.Find(eventID)
	if err != nil {
		return Event{}, false, fmt.Errorf("update performance: %w", err)
	}
	if !found {
		return Event{}, false, nil
	}

	event.ActualPerformancePercentile = &actualPercentile
	for _, trigger := range Triggers {
		if trigger.Matches(event.SystemConfidence, actualPercentile) {
			event.TriggerID = trigger.ID
			event.AdjustmentDelta = trigger.Delta
			log.Printf("[CAL] trigger %s fired for event %s: confidence=%.4f percentile=%.4f delta=%+.2f",
				trigger.ID, event.EventID, event.SystemConfidence, actualPercentile, trigger.Delta)
			break
		}
	}

	if err := t.store.Update(event); err != nil {
		return Event{}, false, fmt.Errorf("update performance: %w", err)
	}
	return event, true, nil
}

// #endregion tracker
