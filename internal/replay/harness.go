package replay

import (
	"fmt"
	"math"

	"github.com/STDC26/launchgate/internal/calibration"
	"github.com/STDC26/launchgate/internal/decision"
	"github.com/STDC26/launchgate/internal/underwriter"
)

// #region results

// CaseResult is the replayed outcome for one fixture case.
type CaseResult struct {
	Name                 string
	Decision             decision.Band
	SystemFit            float64
	SystemConfidence     float64
	TransitionPenaltySum float64
	Err                  error
}

// Comparison pairs a replayed case with its expectation.
type Comparison struct {
	Name  string
	Match bool
	Diffs []string
}

// #endregion results

// #region replay

// Replay evaluates every fixture case through a fresh pipeline backed by
// an in-memory calibration store. Determinism means replayed outputs must
// equal the recorded ones.
func Replay(f *Fixture) []CaseResult {
	thresholds := decision.DefaultThresholds()
	if f.Policy != nil {
		thresholds = *f.Policy
	}
	uw := underwriter.New(thresholds, calibration.NewMemoryStore())

	results := make([]CaseResult, 0, len(f.Cases))
	for _, c := range f.Cases {
		res, err := uw.Evaluate(c.Request)
		if err != nil {
			results = append(results, CaseResult{Name: c.Name, Err: err})
			continue
		}
		results = append(results, CaseResult{
			Name:                 c.Name,
			Decision:             res.Decision,
			SystemFit:            res.SystemFit,
			SystemConfidence:     res.SystemConfidence,
			TransitionPenaltySum: res.TransitionPenaltySum,
		})
	}
	return results
}

// Compare checks replayed results against fixture expectations, matched
// by case name.
func Compare(results []CaseResult, expected []FixtureExpectation) []Comparison {
	byName := make(map[string]FixtureExpectation, len(expected))
	for _, e := range expected {
		byName[e.Name] = e
	}

	comparisons := make([]Comparison, 0, len(results))
	for _, r := range results {
		c := Comparison{Name: r.Name, Match: true}
		if r.Err != nil {
			c.Match = false
			c.Diffs = append(c.Diffs, fmt.Sprintf("evaluation error: %v", r.Err))
			comparisons = append(comparisons, c)
			continue
		}

		e, ok := byName[r.Name]
		if !ok {
			c.Match = false
			c.Diffs = append(c.Diffs, "no expectation recorded for case")
			comparisons = append(comparisons, c)
			continue
		}

		if r.Decision != e.Decision {
			c.Match = false
			c.Diffs = append(c.Diffs, fmt.Sprintf("decision: expected %s, got %s", e.Decision, r.Decision))
		}
		for _, field := range []struct {
			name     string
			expected float64
			got      float64
		}{
			{"system_fit", e.SystemFit, r.SystemFit},
			{"system_confidence", e.SystemConfidence, r.SystemConfidence},
			{"transition_penalty_sum", e.TransitionPenaltySum, r.TransitionPenaltySum},
		} {
			if !scoresEqual(field.expected, field.got) {
				c.Match = false
				c.Diffs = append(c.Diffs, fmt.Sprintf("%s: expected %.4f, got %.4f", field.name, field.expected, field.got))
			}
		}
		comparisons = append(comparisons, c)
	}
	return comparisons
}

// scoresEqual compares two 4-decimal scores with half-ulp slack.
func scoresEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.00005
}

// #endregion replay
