package underwriter

import (
	"fmt"

	"github.com/STDC26/launchgate/internal/confidence"
	"github.com/STDC26/launchgate/internal/decision"
	"github.com/STDC26/launchgate/internal/fit"
	"github.com/STDC26/launchgate/internal/profile"
	"github.com/STDC26/launchgate/internal/scoring"
	"github.com/STDC26/launchgate/internal/transition"
)

// #region request

// StageProfiles holds the nine-dimension profile per funnel stage.
type StageProfiles struct {
	Image       profile.Profile `json:"image"`
	Video       profile.Profile `json:"video"`
	LandingPage profile.Profile `json:"landing_page"`
}

// Request is one full underwriting evaluation input. Assets are optional:
// their scores are attached best-effort and never influence the decision.
type Request struct {
	BrandID            string                      `json:"brand_id"`
	Sector             string                      `json:"sector"`
	StageProfiles      StageProfiles               `json:"stage_profiles"`
	StageFits          map[string]float64          `json:"stage_fits"`
	StageConfidences   confidence.StageConfidences `json:"stage_confidences"`
	StageGatesPassed   map[string]bool             `json:"stage_gates_passed"`
	DataSupport        *confidence.DataSupport     `json:"data_support,omitempty"`
	MeasurementQuality *float64                    `json:"measurement_quality,omitempty"`
	Assets             []scoring.AssetProperties   `json:"assets,omitempty"`
}

// Validate rejects malformed inputs before any scoring runs.
func (r Request) Validate() error {
	if r.BrandID == "" {
		return fmt.Errorf("brand_id must not be empty")
	}
	for _, sp := range []struct {
		name string
		p    profile.Profile
	}{{"image", r.StageProfiles.Image}, {"video", r.StageProfiles.Video}, {"landing_page", r.StageProfiles.LandingPage}} {
		for d, v := range sp.p {
			if v < 0.0 || v > 1.0 {
				return fmt.Errorf("%s profile %s must be in [0,1], got %v", sp.name, d, v)
			}
		}
	}
	for stage, v := range r.StageConfidences {
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("stage confidence %s must be in [0,1], got %v", stage, v)
		}
	}
	if r.DataSupport != nil {
		if r.DataSupport.Similarity < 0 || r.DataSupport.Similarity > 1 {
			return fmt.Errorf("data_support similarity must be in [0,1], got %v", r.DataSupport.Similarity)
		}
		if r.DataSupport.SampleQuality < 0 || r.DataSupport.SampleQuality > 1 {
			return fmt.Errorf("data_support sample_count must be in [0,1], got %v", r.DataSupport.SampleQuality)
		}
	}
	if r.MeasurementQuality != nil && (*r.MeasurementQuality < 0 || *r.MeasurementQuality > 1) {
		return fmt.Errorf("measurement_quality must be in [0,1], got %v", *r.MeasurementQuality)
	}
	return nil
}

// #endregion request

// #region result

// Result is the full evaluation output: decision, scores, breakdowns and
// every audit artifact the pipeline produced.
type Result struct {
	BrandID              string                     `json:"brand_id"`
	Decision             decision.Band              `json:"decision"`
	SystemFit            float64                    `json:"system_fit"`
	SystemFitRaw         float64                    `json:"system_fit_raw"`
	SystemConfidence     float64                    `json:"system_confidence"`
	Fit                  fit.Result                 `json:"fit"`
	Confidence           confidence.Result          `json:"confidence"`
	TransitionPenaltySum float64                    `json:"transition_penalty_sum"`
	TriggeredPenalties   []string                   `json:"triggered_penalties"`
	PenaltyChecks        []transition.PenaltyResult `json:"penalty_checks"`
	DecisionRationale    []string                   `json:"decision_rationale"`
	CalibrationEventID   string                     `json:"calibration_event_id,omitempty"`
	AssetScores          []scoring.ScoreResult      `json:"asset_scores,omitempty"`
}

// #endregion result
