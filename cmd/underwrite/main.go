// Command underwrite evaluates one launch underwriting request and prints
// the full decision result as JSON.
//
// Usage:
//
//	underwrite --input request.json [--policy policy.yaml] [--db events.db]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/STDC26/launchgate/internal/calibration"
	"github.com/STDC26/launchgate/internal/decision"
	"github.com/STDC26/launchgate/internal/provenance"
	"github.com/STDC26/launchgate/internal/underwriter"
)

// #region main

func main() {
	input := flag.String("input", "", "path to underwriting request JSON (required)")
	policyPath := flag.String("policy", envOr("LAUNCHGATE_POLICY", ""), "path to decision policy YAML (optional)")
	dbPath := flag.String("db", envOr("LAUNCHGATE_DB", ""), "path to calibration sqlite database (optional, in-memory if unset)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "underwrite: --input is required")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("[UW] read request: %v", err)
	}
	var req underwriter.Request
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatalf("[UW] parse request: %v", err)
	}

	thresholds := decision.DefaultThresholds()
	if *policyPath != "" {
		thresholds, err = decision.LoadThresholds(*policyPath)
		if err != nil {
			log.Fatalf("[UW] load policy: %v", err)
		}
		log.Printf("[UW] policy loaded from %s (id=%s)", *policyPath, thresholds.PolicyID)
	}

	store, sqlStore, closeStore, err := openStore(*dbPath)
	if err != nil {
		log.Fatalf("[UW] open store: %v", err)
	}
	defer closeStore()

	uw := underwriter.New(thresholds, store)
	result, err := uw.Evaluate(req)
	if err != nil {
		log.Fatalf("[UW] evaluate: %v", err)
	}

	if sqlStore != nil {
		if err := logProvenance(sqlStore, req, result); err != nil {
			log.Printf("[UW] provenance logging failed: %v", err)
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("[UW] encode result: %v", err)
	}
	fmt.Println(string(out))
}

// #endregion main

// #region helpers

func openStore(dbPath string) (calibration.Store, *calibration.SQLStore, func(), error) {
	if dbPath == "" {
		return calibration.NewMemoryStore(), nil, func() {}, nil
	}
	sqlStore, err := calibration.NewSQLStore(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := provenance.EnsureSchema(sqlStore.DB()); err != nil {
		sqlStore.Close()
		return nil, nil, nil, err
	}
	return sqlStore, sqlStore, func() { sqlStore.Close() }, nil
}

func logProvenance(store *calibration.SQLStore, req underwriter.Request, result underwriter.Result) error {
	sector := req.Sector
	if sector == "" {
		sector = underwriter.DefaultSector
	}
	return provenance.LogDecision(store.DB(), provenance.Entry{
		BrandID:              result.BrandID,
		SectorID:             sector,
		SequenceLabel:        underwriter.SequenceLabel,
		Decision:             string(result.Decision),
		SystemFit:            result.SystemFit,
		SystemConfidence:     result.SystemConfidence,
		TransitionPenaltySum: result.TransitionPenaltySum,
		TriggeredPenalties:   strings.Join(result.TriggeredPenalties, ","),
		Rationale:            strings.Join(result.DecisionRationale, "; "),
		CalibrationEventID:   result.CalibrationEventID,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
