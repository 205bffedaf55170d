package fit

import (
	"math"
	"testing"
)

func TestAggregateWeightedFormula(t *testing.T) {
	result, err := Aggregate(0.8, 0.7, 0.9, 0.05)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	if result.SystemFitRaw != 0.8 {
		t.Errorf("raw fit = %.4f, want 0.8000", result.SystemFitRaw)
	}
	if result.SystemFit != 0.75 {
		t.Errorf("system fit = %.4f, want 0.7500", result.SystemFit)
	}
	if result.PenaltyApplied != 0.05 {
		t.Errorf("penalty applied = %.4f, want 0.0500", result.PenaltyApplied)
	}
	if result.StageContributions.Image != 0.24 {
		t.Errorf("image contribution = %.4f, want 0.2400", result.StageContributions.Image)
	}
	if result.StageContributions.Video != 0.245 {
		t.Errorf("video contribution = %.4f, want 0.2450", result.StageContributions.Video)
	}
	if result.StageContributions.LandingPage != 0.315 {
		t.Errorf("landing page contribution = %.4f, want 0.3150", result.StageContributions.LandingPage)
	}
}

func TestZeroPenaltyLeavesRawFit(t *testing.T) {
	result, err := Aggregate(0.9, 0.9, 0.9, 0)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if result.SystemFit != result.SystemFitRaw {
		t.Errorf("fit %.4f != raw %.4f with zero penalty", result.SystemFit, result.SystemFitRaw)
	}
	if result.SystemFit != 0.9 {
		t.Errorf("fit = %.4f, want 0.9000", result.SystemFit)
	}
}

func TestPenaltyCapped(t *testing.T) {
	result, err := Aggregate(0.9, 0.9, 0.9, 0.37)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if result.PenaltyApplied != PenaltyCap {
		t.Errorf("penalty applied = %.4f, want cap %.2f", result.PenaltyApplied, PenaltyCap)
	}
	if result.SystemFit != 0.65 {
		t.Errorf("fit = %.4f, want 0.6500", result.SystemFit)
	}
}

func TestFitClampedAtZero(t *testing.T) {
	result, err := Aggregate(0.05, 0.05, 0.05, 0.25)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if result.SystemFit != 0 {
		t.Errorf("fit = %.4f, want 0", result.SystemFit)
	}
	if result.SystemFitRaw <= 0 {
		t.Errorf("raw fit = %.4f, want positive", result.SystemFitRaw)
	}
}

func TestFitMonotonicInStageScores(t *testing.T) {
	low, err := Aggregate(0.5, 0.5, 0.5, 0.02)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	high, err := Aggregate(0.5, 0.5, 0.6, 0.02)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if high.SystemFit <= low.SystemFit {
		t.Errorf("raising a stage fit must raise system fit: %.4f vs %.4f",
			high.SystemFit, low.SystemFit)
	}
	// Landing page carries more weight than image.
	if math.Abs((high.SystemFit-low.SystemFit)-LandingPageWeight*0.1) > 1e-4 {
		t.Errorf("landing page gain = %.4f, want %.4f",
			high.SystemFit-low.SystemFit, LandingPageWeight*0.1)
	}
}

func TestAggregateRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name                         string
		image, video, lp, penaltySum float64
	}{
		{"image fit above range", 1.2, 0.5, 0.5, 0},
		{"video fit below range", 0.5, -0.1, 0.5, 0},
		{"landing page fit above range", 0.5, 0.5, 1.01, 0},
		{"negative penalty sum", 0.5, 0.5, 0.5, -0.01},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Aggregate(tc.image, tc.video, tc.lp, tc.penaltySum); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
