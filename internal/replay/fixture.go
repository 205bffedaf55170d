package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/STDC26/launchgate/internal/decision"
	"github.com/STDC26/launchgate/internal/underwriter"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a golden replay fixture:
// a batch of underwriting requests with their expected outputs, used to
// audit that the pipeline reproduces past decisions exactly.
type Fixture struct {
	Description string               `json:"description"`
	Policy      *decision.Thresholds `json:"policy,omitempty"`
	Cases       []FixtureCase        `json:"cases"`
	Expected    []FixtureExpectation `json:"expected_results"`
}

// FixtureCase is one named underwriting request.
type FixtureCase struct {
	Name    string              `json:"name"`
	Request underwriter.Request `json:"request"`
}

// FixtureExpectation captures the expected outputs per case.
type FixtureExpectation struct {
	Name                 string        `json:"name"`
	Decision             decision.Band `json:"decision"`
	SystemFit            float64       `json:"system_fit"`
	SystemConfidence     float64       `json:"system_confidence"`
	TransitionPenaltySum float64       `json:"transition_penalty_sum"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("fixture %s has no cases", path)
	}
	return &f, nil
}

// #endregion fixture-loader
