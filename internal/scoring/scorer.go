package scoring

import "github.com/STDC26/launchgate/internal/profile"

// #region versions

// Version identifiers carried on every score so downstream consumers can
// detect rule-set drift between evaluations.
const (
	ScorerVersion       = "2.5A-v1"
	RulebookVersion     = "2026-02-14.1"
	NinePDSchemaVersion = "A2.NinePDProfile.v1"
)

// #endregion versions

// #region result-types

// AggressionEffects reports the per-dimension delta the shared aggression
// penalty applied.
type AggressionEffects struct {
	AutonomyDelta float64 `json:"autonomy_delta"`
	EthicsDelta   float64 `json:"ethics_delta"`
	TrustDelta    float64 `json:"trust_delta"`
}

// TraceInputs snapshots the triggering inputs so audit review of a scoring
// dispute sees exactly what the rulebook saw.
type TraceInputs struct {
	ColorTemperature ColorTemperature `json:"color_temperature"`
	Saturation       float64          `json:"saturation"`
	CTAPresent       bool             `json:"cta_present"`
	FacePresent      bool             `json:"face_present"`
	BackgroundStyle  BackgroundStyle  `json:"background_style"`
	TextDensity      float64          `json:"text_density"`
	VisualComplexity float64          `json:"visual_complexity"`
}

// Trace is the optional audit trail for a score.
type Trace struct {
	AggressionPenalty float64           `json:"aggression_penalty"`
	AggressionEffects AggressionEffects `json:"aggression_effects"`
	Inputs            TraceInputs       `json:"inputs"`
}

// ScoreResult is a NinePDProfile plus governance metadata.
type ScoreResult struct {
	AssetID             string          `json:"asset_id"`
	AssetType           AssetType       `json:"asset_type"`
	NinePDProfile       profile.Profile `json:"nine_pd_profile"`
	NinePDSchemaVersion string          `json:"nine_pd_schema_version"`
	ScorerVersion       string          `json:"scorer_version"`
	RulebookVersion     string          `json:"rulebook_version"`
	TraceEnabled        bool            `json:"trace_enabled"`
	Trace               *Trace          `json:"trace,omitempty"`
}

// #endregion result-types

// #region scorer

// Scorer converts observable creative properties into nine-dimension
// psychological conversion scores. Deterministic: identical input yields
// identical output on every call.
type Scorer struct{}

// NewScorer returns the rule-based scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score runs the full rulebook against one asset. trace adds the
// aggression breakdown and input snapshot for audit without polluting the
// asset schema itself.
func (s *Scorer) Score(asset AssetProperties, trace bool) (ScoreResult, error) {
	if err := asset.Validate(); err != nil {
		return ScoreResult{}, err
	}

	aggression := ComputeAggression(asset)

	scores := make(profile.Profile, len(profile.Dimensions))
	for _, d := range profile.Dimensions {
		scores[d] = baselineScore
	}
	for _, rule := range dimensionRules {
		if rule.Applies(asset) {
			scores[rule.Dimension] += rule.Points
		}
	}
	for d, mult := range aggressionMultipliers {
		scores[d] -= aggression * mult
	}
	for d, v := range scores {
		scores[d] = profile.Round4(profile.Clamp01(v))
	}

	result := ScoreResult{
		AssetID:             asset.AssetID,
		AssetType:           asset.AssetType,
		NinePDProfile:       scores,
		NinePDSchemaVersion: NinePDSchemaVersion,
		ScorerVersion:       ScorerVersion,
		RulebookVersion:     RulebookVersion,
		TraceEnabled:        trace,
	}
	if trace {
		result.Trace = buildTrace(asset, aggression)
	}
	return result, nil
}

func buildTrace(asset AssetProperties, aggression float64) *Trace {
	return &Trace{
		AggressionPenalty: profile.Round4(aggression),
		AggressionEffects: AggressionEffects{
			AutonomyDelta: profile.Round4(-aggression * aggressionMultipliers[profile.Autonomy]),
			EthicsDelta:   profile.Round4(-aggression * aggressionMultipliers[profile.Ethics]),
			TrustDelta:    profile.Round4(-aggression * aggressionMultipliers[profile.Trust]),
		},
		Inputs: TraceInputs{
			ColorTemperature: asset.ColorTemperature,
			Saturation:       asset.Saturation,
			CTAPresent:       asset.CTAPresent,
			FacePresent:      asset.FacePresent,
			BackgroundStyle:  asset.BackgroundStyle,
			TextDensity:      asset.TextDensity,
			VisualComplexity: asset.VisualComplexity,
		},
	}
}

// #endregion scorer
