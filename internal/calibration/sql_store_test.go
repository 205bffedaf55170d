package calibration

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := NewSQLStore(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func makeEvent(id string, ts time.Time) Event {
	return Event{
		EventID:          id,
		Timestamp:        ts,
		SectorID:         "BEAUTY_SKINCARE",
		SequenceLabel:    "image_video_landing_page",
		SystemConfidence: 0.7,
	}
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.Append(makeEvent("ev-1", ts)); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, found, err := store.Find("ev-1")
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if !got.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, ts)
	}
	if got.ActualPerformancePercentile != nil {
		t.Error("expected null performance percentile")
	}
	if got.TriggerID != "" {
		t.Errorf("trigger id = %q, want empty", got.TriggerID)
	}
}

func TestSQLStoreUpdateOutcome(t *testing.T) {
	store := openTestStore(t)
	event := makeEvent("ev-1", time.Now().UTC())
	if err := store.Append(event); err != nil {
		t.Fatalf("append: %v", err)
	}

	perf := 0.35
	event.ActualPerformancePercentile = &perf
	event.TriggerID = "FALSE_POSITIVE_CLUSTER"
	event.AdjustmentDelta = -0.05
	if err := store.Update(event); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, found, err := store.Find("ev-1")
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if got.ActualPerformancePercentile == nil || *got.ActualPerformancePercentile != 0.35 {
		t.Error("performance percentile not persisted")
	}
	if got.TriggerID != "FALSE_POSITIVE_CLUSTER" || got.AdjustmentDelta != -0.05 {
		t.Errorf("trigger fields not persisted: %+v", got)
	}
}

func TestSQLStoreFindMissReturnsNoError(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Find("absent")
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if found {
		t.Error("expected found=false")
	}
}

func TestSQLStoreUpdateUnknownEventErrors(t *testing.T) {
	store := openTestStore(t)

	if err := store.Update(makeEvent("absent", time.Now().UTC())); err == nil {
		t.Error("expected error updating unknown event")
	}
}

func TestSQLStoreDuplicateAppendErrors(t *testing.T) {
	store := openTestStore(t)
	event := makeEvent("ev-1", time.Now().UTC())

	if err := store.Append(event); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(event); err == nil {
		t.Error("expected primary key violation on duplicate append")
	}
}

func TestSQLStoreListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"ev-1", "ev-2", "ev-3"} {
		if err := store.Append(makeEvent(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	events, err := store.List(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].EventID != "ev-3" || events[1].EventID != "ev-2" {
		t.Errorf("order = [%s %s], want [ev-3 ev-2]", events[0].EventID, events[1].EventID)
	}
}
