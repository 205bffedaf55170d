// Command replay re-evaluates a golden fixture of underwriting requests
// and compares the outputs against the recorded expectations. Exits
// non-zero on any divergence, which makes it suitable as a regression
// gate before policy or rulebook changes ship.
//
// Usage:
//
//	replay --fixture golden.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/STDC26/launchgate/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to replay fixture JSON (required)")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "replay: --fixture is required")
		flag.Usage()
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("[REPLAY] %v", err)
	}
	if fixture.Description != "" {
		log.Printf("[REPLAY] fixture: %s (%d cases)", fixture.Description, len(fixture.Cases))
	}

	results := replay.Replay(fixture)
	comparisons := replay.Compare(results, fixture.Expected)

	divergent := 0
	for _, c := range comparisons {
		status := "ok"
		if !c.Match {
			status = "DIVERGED"
			divergent++
		}
		fmt.Printf("%-40s  %s\n", c.Name, status)
		for _, d := range c.Diffs {
			fmt.Printf("    %s\n", d)
		}
	}

	fmt.Printf("\n%d/%d cases matched\n", len(comparisons)-divergent, len(comparisons))
	if divergent > 0 {
		os.Exit(1)
	}
}

// #endregion main
