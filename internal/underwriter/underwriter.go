package underwriter

import (
	"fmt"
	"log"

	"github.com/STDC26/launchgate/internal/calibration"
	"github.com/STDC26/launchgate/internal/confidence"
	"github.com/STDC26/launchgate/internal/decision"
	"github.com/STDC26/launchgate/internal/fit"
	"github.com/STDC26/launchgate/internal/profile"
	"github.com/STDC26/launchgate/internal/scoring"
	"github.com/STDC26/launchgate/internal/transition"
)

// #region constants

// SequenceLabel names the funnel sequence underwritten by this pipeline.
const SequenceLabel = "image_video_landing_page"

// DefaultSector is used when the caller supplies none.
const DefaultSector = "BEAUTY_SKINCARE"

// Request-level data-support defaults (looser than the calculator's own
// fallback: an explicit request implies some evidence was gathered).
const (
	requestDefaultSimilarity    = 0.80
	requestDefaultSampleQuality = 0.70
)

// #endregion constants

// #region underwriter

// Underwriter coordinates the full scoring and decision pipeline:
// transition penalties, fit aggregation, confidence calculation, the
// launch decision, and calibration tracking.
type Underwriter struct {
	engine  *decision.Engine
	tracker *calibration.Tracker
	scorer  *scoring.Scorer
}

// New creates a fully wired underwriter.
func New(thresholds decision.Thresholds, store calibration.Store) *Underwriter {
	return &Underwriter{
		engine:  decision.NewEngine(thresholds),
		tracker: calibration.NewTracker(store),
		scorer:  scoring.NewScorer(),
	}
}

// Evaluate runs one underwriting evaluation. The scoring components are
// pure; the only side effect is the calibration event appended after the
// decision is fully computed. Asset scoring is best-effort and additive
// only: its failure or absence never changes the decision, fit, or
// confidence values.
func (u *Underwriter) Evaluate(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, fmt.Errorf("underwrite %s: %w", req.BrandID, err)
	}

	penalties := transition.CheckPenalties(
		req.StageProfiles.Image, req.StageProfiles.Video, req.StageProfiles.LandingPage)

	fitResult, err := fit.Aggregate(
		req.StageFits["image"],
		req.StageFits["video"],
		req.StageFits["landing_page"],
		penalties.PenaltySum,
	)
	if err != nil {
		return Result{}, fmt.Errorf("underwrite %s: %w", req.BrandID, err)
	}

	aggregated := profile.Average(
		req.StageProfiles.Image, req.StageProfiles.Video, req.StageProfiles.LandingPage)

	dataSupport := confidence.DataSupport{
		Similarity:    requestDefaultSimilarity,
		SampleQuality: requestDefaultSampleQuality,
	}
	if req.DataSupport != nil {
		dataSupport = *req.DataSupport
	}
	measurementQuality := confidence.DefaultMeasurementQuality
	if req.MeasurementQuality != nil {
		measurementQuality = *req.MeasurementQuality
	}

	confResult := confidence.Calculate(
		req.StageConfidences, dataSupport, aggregated, penalties.PenaltySum, measurementQuality)

	decResult := u.engine.Decide(
		fitResult.SystemFit, confResult.SystemConfidence, penalties.PenaltySum, req.StageGatesPassed)

	log.Printf("[UW] brand=%s decision=%s fit=%.4f confidence=%.4f penalty=%.4f",
		req.BrandID, decResult.Decision, fitResult.SystemFit,
		confResult.SystemConfidence, penalties.PenaltySum)

	result := Result{
		BrandID:              req.BrandID,
		Decision:             decResult.Decision,
		SystemFit:            fitResult.SystemFit,
		SystemFitRaw:         fitResult.SystemFitRaw,
		SystemConfidence:     confResult.SystemConfidence,
		Fit:                  fitResult,
		Confidence:           confResult,
		TransitionPenaltySum: penalties.PenaltySum,
		TriggeredPenalties:   penalties.TriggeredIDs(),
		PenaltyChecks:        penalties.AllChecks,
		DecisionRationale:    decResult.Rationale,
	}

	result.AssetScores = u.scoreAssets(req.Assets)

	sector := req.Sector
	if sector == "" {
		sector = DefaultSector
	}
	event, err := u.tracker.TrackEvaluation(sector, SequenceLabel, confResult.SystemConfidence)
	if err != nil {
		// Tracking is best-effort: the decision stands without an event id.
		log.Printf("[UW] calibration tracking failed for brand=%s: %v", req.BrandID, err)
	} else {
		result.CalibrationEventID = event.EventID
	}

	return result, nil
}

// scoreAssets scores any attached assets. Per-asset failures degrade to a
// missing score, never an evaluation failure.
func (u *Underwriter) scoreAssets(assets []scoring.AssetProperties) []scoring.ScoreResult {
	var scores []scoring.ScoreResult
	for _, asset := range assets {
		score, err := u.scorer.Score(asset, false)
		if err != nil {
			log.Printf("[UW] asset scoring skipped for %s: %v", asset.AssetID, err)
			continue
		}
		scores = append(scores, score)
	}
	return scores
}

// #endregion underwriter
