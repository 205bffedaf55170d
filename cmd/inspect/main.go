// Command inspect dumps recent calibration events from a sqlite event
// database, newest first.
//
// Usage:
//
//	inspect --db events.db [--last 20] [--json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/STDC26/launchgate/internal/calibration"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("LAUNCHGATE_DB", ""), "path to calibration sqlite database (required)")
	last := flag.Int("last", 20, "number of most recent events to show")
	asJSON := flag.Bool("json", false, "emit events as a JSON array instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "inspect: --db is required")
		flag.Usage()
		os.Exit(2)
	}

	store, err := calibration.NewSQLStore(*dbPath)
	if err != nil {
		log.Fatalf("[INSPECT] open store: %v", err)
	}
	defer store.Close()

	events, err := store.List(*last)
	if err != nil {
		log.Fatalf("[INSPECT] list events: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			log.Fatalf("[INSPECT] encode events: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if len(events) == 0 {
		fmt.Println("no calibration events recorded")
		return
	}
	fmt.Printf("%-36s  %-20s  %-18s  %-10s  %-10s  %-24s  %s\n",
		"EVENT", "TIMESTAMP", "SECTOR", "CONF", "PERF", "TRIGGER", "DELTA")
	for _, e := range events {
		perf := "-"
		if e.ActualPerformancePercentile != nil {
			perf = fmt.Sprintf("%.4f", *e.ActualPerformancePercentile)
		}
		trigger := e.TriggerID
		if trigger == "" {
			trigger = "-"
		}
		fmt.Printf("%-36s  %-20s  %-18s  %-10.4f  %-10s  %-24s  %+.2f\n",
			e.EventID, e.Timestamp.Format("2006-01-02T15:04:05Z"),
			e.SectorID, e.SystemConfidence, perf, trigger, e.AdjustmentDelta)
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
