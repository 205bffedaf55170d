// Command score-asset scores a single creative asset and prints the
// nine-dimension psychological profile as JSON.
//
// Usage:
//
//	score-asset --asset asset.json [--trace]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/STDC26/launchgate/internal/scoring"
)

// #region main

func main() {
	assetPath := flag.String("asset", "", "path to asset properties JSON (required)")
	trace := flag.Bool("trace", false, "include per-rule scoring trace in the output")
	flag.Parse()

	if *assetPath == "" {
		fmt.Fprintln(os.Stderr, "score-asset: --asset is required")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*assetPath)
	if err != nil {
		log.Fatalf("[SCORE] read asset: %v", err)
	}
	var asset scoring.AssetProperties
	if err := json.Unmarshal(data, &asset); err != nil {
		log.Fatalf("[SCORE] parse asset: %v", err)
	}

	scorer := scoring.NewScorer()
	result, err := scorer.Score(asset, *trace)
	if err != nil {
		log.Fatalf("[SCORE] score asset %s: %v", asset.AssetID, err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("[SCORE] encode result: %v", err)
	}
	fmt.Println(string(out))
}

// #endregion main
