package fit

import (
	"fmt"

	"github.com/STDC26/launchgate/internal/profile"
)

// #region weights

// Stage weights for system fit. Later funnel stages carry more weight.
const (
	ImageWeight       = 0.30
	VideoWeight       = 0.35
	LandingPageWeight = 0.35
)

// PenaltyCap bounds how much cumulative transition penalties can subtract.
// Penalties degrade an otherwise-strong system but never dominate it.
const PenaltyCap = 0.25

// #endregion weights

// #region result

// StageContributions are the weighted per-stage terms of the raw fit.
type StageContributions struct {
	Image       float64 `json:"image"`
	Video       float64 `json:"video"`
	LandingPage float64 `json:"landing_page"`
}

// Result reports raw, penalty-adjusted and applied-penalty values for
// transparency.
type Result struct {
	SystemFitRaw       float64            `json:"system_fit_raw"`
	SystemFit          float64            `json:"system_fit"`
	PenaltyApplied     float64            `json:"penalty_applied"`
	StageContributions StageContributions `json:"stage_contributions"`
}

// #endregion result

// #region aggregate

// Aggregate combines per-stage fit scores into a single system fit.
// Out-of-range fits and negative penalty sums are caller contract
// violations and fail fast; they are never clamped at the input boundary.
func Aggregate(imageFit, videoFit, landingPageFit, transitionPenaltySum float64) (Result, error) {
	if err := validateFit("image_fit", imageFit); err != nil {
		return Result{}, err
	}
	if err := validateFit("video_fit", videoFit); err != nil {
		return Result{}, err
	}
	if err := validateFit("landing_page_fit", landingPageFit); err != nil {
		return Result{}, err
	}
	if transitionPenaltySum < 0 {
		return Result{}, fmt.Errorf("transition penalty sum must be >= 0, got %v", transitionPenaltySum)
	}

	raw := ImageWeight*imageFit + VideoWeight*videoFit + LandingPageWeight*landingPageFit

	cappedPenalty := transitionPenaltySum
	if cappedPenalty > PenaltyCap {
		cappedPenalty = PenaltyCap
	}

	return Result{
		SystemFitRaw:   profile.Round4(raw),
		SystemFit:      profile.Round4(profile.Clamp01(raw - cappedPenalty)),
		PenaltyApplied: profile.Round4(cappedPenalty),
		StageContributions: StageContributions{
			Image:       profile.Round4(ImageWeight * imageFit),
			Video:       profile.Round4(VideoWeight * videoFit),
			LandingPage: profile.Round4(LandingPageWeight * landingPageFit),
		},
	}, nil
}

func validateFit(name string, score float64) error {
	if score < 0.0 || score > 1.0 {
		return fmt.Errorf("%s must be in [0,1], got %v", name, score)
	}
	return nil
}

// #endregion aggregate
