// Command outcome records an observed performance percentile against a
// tracked calibration event and reports any trigger that fired.
//
// Usage:
//
//	outcome --db events.db --event <uuid> --performance 0.42
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/STDC26/launchgate/internal/calibration"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("LAUNCHGATE_DB", ""), "path to calibration sqlite database (required)")
	eventID := flag.String("event", "", "calibration event id to update (required)")
	performance := flag.Float64("performance", -1, "actual performance percentile in [0,1] (required)")
	flag.Parse()

	if *dbPath == "" || *eventID == "" {
		fmt.Fprintln(os.Stderr, "outcome: --db and --event are required")
		flag.Usage()
		os.Exit(2)
	}
	if *performance < 0 || *performance > 1 {
		fmt.Fprintln(os.Stderr, "outcome: --performance must be in [0,1]")
		flag.Usage()
		os.Exit(2)
	}

	store, err := calibration.NewSQLStore(*dbPath)
	if err != nil {
		log.Fatalf("[CAL] open store: %v", err)
	}
	defer store.Close()

	tracker := calibration.NewTracker(store)
	event, found, err := tracker.UpdatePerformance(*eventID, *performance)
	if err != nil {
		log.Fatalf("[CAL] update performance: %v", err)
	}
	if !found {
		fmt.Printf("event %s not found, nothing recorded\n", *eventID)
		return
	}

	fmt.Printf("event %s updated: confidence=%.4f performance=%.4f\n",
		event.EventID, event.SystemConfidence, *performance)
	if event.TriggerID != "" {
		fmt.Printf("trigger %s fired, adjustment delta %+.2f\n", event.TriggerID, event.AdjustmentDelta)
	} else {
		fmt.Println("no calibration trigger fired")
	}
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
