package calibration

import "testing"

func TestTrackEvaluationAppendsEvent(t *testing.T) {
	store := NewMemoryStore()
	tracker := NewTracker(store)

	event, err := tracker.TrackEvaluation("BEAUTY_SKINCARE", "image_video_landing_page", 0.71)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if event.EventID == "" {
		t.Fatal("expected generated event id")
	}
	if event.ActualPerformancePercentile != nil {
		t.Error("outcome fields must start null")
	}

	stored, found, err := store.Find(event.EventID)
	if err != nil || !found {
		t.Fatalf("stored event not found: found=%v err=%v", found, err)
	}
	if stored.SystemConfidence != 0.71 {
		t.Errorf("stored confidence = %.4f, want 0.71", stored.SystemConfidence)
	}
	if stored.SectorID != "BEAUTY_SKINCARE" {
		t.Errorf("stored sector = %q, want BEAUTY_SKINCARE", stored.SectorID)
	}
}

func TestFalsePositiveClusterFires(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	event, err := tracker.TrackEvaluation("BEAUTY_SKINCARE", "image_video_landing_page", 0.80)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}

	updated, found, err := tracker.UpdatePerformance(event.EventID, 0.30)
	if err != nil || !found {
		t.Fatalf("update failed: found=%v err=%v", found, err)
	}
	if updated.TriggerID != "FALSE_POSITIVE_CLUSTER" {
		t.Errorf("trigger = %q, want FALSE_POSITIVE_CLUSTER", updated.TriggerID)
	}
	if updated.AdjustmentDelta != -0.05 {
		t.Errorf("delta = %v, want -0.05", updated.AdjustmentDelta)
	}
	if updated.ActualPerformancePercentile == nil || *updated.ActualPerformancePercentile != 0.30 {
		t.Error("performance percentile not recorded")
	}
}

func TestFalseNegativeClusterFires(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	event, err := tracker.TrackEvaluation("BEAUTY_SKINCARE", "image_video_landing_page", 0.50)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}

	updated, found, err := tracker.UpdatePerformance(event.EventID, 0.70)
	if err != nil || !found {
		t.Fatalf("update failed: found=%v err=%v", found, err)
	}
	if updated.TriggerID != "FALSE_NEGATIVE_CLUSTER" {
		t.Errorf("trigger = %q, want FALSE_NEGATIVE_CLUSTER", updated.TriggerID)
	}
	if updated.AdjustmentDelta != 0.05 {
		t.Errorf("delta = %v, want 0.05", updated.AdjustmentDelta)
	}
}

func TestWellCalibratedOutcomeFiresNothing(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	event, err := tracker.TrackEvaluation("BEAUTY_SKINCARE", "image_video_landing_page", 0.60)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}

	updated, found, err := tracker.UpdatePerformance(event.EventID, 0.55)
	if err != nil || !found {
		t.Fatalf("update failed: found=%v err=%v", found, err)
	}
	if updated.TriggerID != "" {
		t.Errorf("trigger = %q, want none", updated.TriggerID)
	}
	if updated.AdjustmentDelta != 0 {
		t.Errorf("delta = %v, want 0", updated.AdjustmentDelta)
	}
}

func TestUnknownEventIsNonFatalMiss(t *testing.T) {
	tracker := NewTracker(NewMemoryStore())

	_, found, err := tracker.UpdatePerformance("no-such-event", 0.50)
	if err != nil {
		t.Fatalf("unknown event must not error: %v", err)
	}
	if found {
		t.Error("expected found=false for unknown event")
	}
}

func TestTriggerBoundariesAreStrict(t *testing.T) {
	cases := []struct {
		name        string
		confidence  float64
		performance float64
		wantTrigger string
	}{
		{"confidence exactly at false positive bound", 0.75, 0.30, ""},
		{"performance exactly at false positive bound", 0.80, 0.40, ""},
		{"confidence exactly at false negative bound", 0.55, 0.70, ""},
		{"performance exactly at false negative bound", 0.50, 0.65, ""},
		{"just inside false positive", 0.76, 0.39, "FALSE_POSITIVE_CLUSTER"},
		{"just inside false negative", 0.54, 0.66, "FALSE_NEGATIVE_CLUSTER"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := NewTracker(NewMemoryStore())
			event, err := tracker.TrackEvaluation("BEAUTY_SKINCARE", "image_video_landing_page", tc.confidence)
			if err != nil {
				t.Fatalf("track failed: %v", err)
			}
			updated, _, err := tracker.UpdatePerformance(event.EventID, tc.performance)
			if err != nil {
				t.Fatalf("update failed: %v", err)
			}
			if updated.TriggerID != tc.wantTrigger {
				t.Errorf("trigger = %q, want %q", updated.TriggerID, tc.wantTrigger)
			}
		})
	}
}
