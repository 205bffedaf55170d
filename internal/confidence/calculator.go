package confidence

import "github.com/STDC26/launchgate/internal/profile"

// #region weights

// Component weights; they sum to 1.0.
const (
	StageWeight          = 0.40
	DataSupportWeight    = 0.20
	RiskWeight           = 0.20
	TransitionRiskWeight = 0.12
	MeasurementWeight    = 0.08
)

// Per-stage confidence weights. The stage closest to conversion counts most.
const (
	imageConfWeight       = 0.25
	videoConfWeight       = 0.35
	landingPageConfWeight = 0.40
)

// Defaults for externally supplied inputs the caller did not measure.
const (
	defaultStageConfidence    = 0.5
	defaultSimilarity         = 0.7
	defaultSampleQuality      = 0.7
	DefaultMeasurementQuality = 0.85
)

// #endregion weights

// #region inputs

// StageConfidences carries per-stage confidence scores; absent stages
// read as the neutral 0.5.
type StageConfidences map[string]float64

func (s StageConfidences) get(stage string) float64 {
	if v, ok := s[stage]; ok {
		return v
	}
	return defaultStageConfidence
}

// DataSupport is the externally supplied evidence-quality pair.
type DataSupport struct {
	Similarity    float64 `json:"similarity"`
	SampleQuality float64 `json:"sample_count"`
}

// DefaultDataSupport is used when no evidence quality was supplied.
func DefaultDataSupport() DataSupport {
	return DataSupport{Similarity: defaultSimilarity, SampleQuality: defaultSampleQuality}
}

// #endregion inputs

// #region result

// Components are the five intermediate scores, each in [0,1].
type Components struct {
	StageComponent float64 `json:"stage_component"`
	DataSupport    float64 `json:"data_support"`
	RiskComponent  float64 `json:"risk_component"`
	TransitionRisk float64 `json:"transition_risk"`
	Measurement    float64 `json:"measurement"`
}

// Result is the calibrated system confidence with its full breakdown.
type Result struct {
	SystemConfidence      float64    `json:"system_confidence"`
	Components            Components `json:"components"`
	WeightedContributions Components `json:"weighted_contributions"`
}

// #endregion result

// #region calculate

// Calculate combines the five weighted components into a system
// confidence score. Pure and deterministic.
//
// The transition penalty sum is used uncapped here, unlike the fit
// aggregator: confidence degrades faster from penalties than raw fit does.
func Calculate(
	stageConfidences StageConfidences,
	dataSupport DataSupport,
	psychologicalProfile profile.Profile,
	transitionPenaltySum float64,
	measurementQuality float64,
) Result {
	stageComponent := imageConfWeight*stageConfidences.get("image") +
		videoConfWeight*stageConfidences.get("video") +
		landingPageConfWeight*stageConfidences.get("landing_page")

	dataSupportScore := 0.6*dataSupport.Similarity + 0.4*dataSupport.SampleQuality

	// A psychologically incoherent profile (high dimension spread) is
	// treated as higher risk regardless of individual magnitudes. An empty
	// profile is neutral, not coherent.
	riskComponent := 0.5
	if len(psychologicalProfile) > 0 {
		riskComponent = 0.0
		if v := 1.0 - psychologicalProfile.Variance()*2; v > 0 {
			riskComponent = v
		}
	}

	transitionRisk := 0.0
	if v := 1.0 - transitionPenaltySum*2; v > 0 {
		transitionRisk = v
	}

	components := Components{
		StageComponent: stageComponent,
		DataSupport:    dataSupportScore,
		RiskComponent:  riskComponent,
		TransitionRisk: transitionRisk,
		Measurement:    measurementQuality,
	}

	systemConfidence := StageWeight*components.StageComponent +
		DataSupportWeight*components.DataSupport +
		RiskWeight*components.RiskComponent +
		TransitionRiskWeight*components.TransitionRisk +
		MeasurementWeight*components.Measurement

	return Result{
		SystemConfidence: profile.Round4(profile.Clamp01(systemConfidence)),
		Components: Components{
			StageComponent: profile.Round4(components.StageComponent),
			DataSupport:    profile.Round4(components.DataSupport),
			RiskComponent:  profile.Round4(components.RiskComponent),
			TransitionRisk: profile.Round4(components.TransitionRisk),
			Measurement:    profile.Round4(components.Measurement),
		},
		WeightedContributions: Components{
			StageComponent: profile.Round4(StageWeight * components.StageComponent),
			DataSupport:    profile.Round4(DataSupportWeight * components.DataSupport),
			RiskComponent:  profile.Round4(RiskWeight * components.RiskComponent),
			TransitionRisk: profile.Round4(TransitionRiskWeight * components.TransitionRisk),
			Measurement:    profile.Round4(MeasurementWeight * components.Measurement),
		},
	}
}

// #endregion calculate
