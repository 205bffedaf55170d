package scoring

import "github.com/STDC26/launchgate/internal/profile"

// #region aggression

// Aggression signal contributions. The term is shared across autonomy,
// ethics and trust so no single surface signal can be gamed in isolation.
const (
	aggressionCTA        = 0.15
	aggressionSaturation = 0.10
	aggressionText       = 0.05
	aggressionCap        = 0.30
)

// aggressionMultipliers scale the shared penalty per dimension.
// Autonomy carries the strongest effect.
var aggressionMultipliers = map[profile.Dimension]float64{
	profile.Autonomy: 0.8,
	profile.Ethics:   0.6,
	profile.Trust:    0.3,
}

// ComputeAggression returns the shared penalty term for aggressive
// creative signals, capped at 0.30.
func ComputeAggression(a AssetProperties) float64 {
	aggression := 0.0
	if a.CTAPresent {
		aggression += aggressionCTA
	}
	if a.Saturation > 0.85 {
		aggression += aggressionSaturation
	}
	if a.TextDensity > 0.35 {
		aggression += aggressionText
	}
	if aggression > aggressionCap {
		aggression = aggressionCap
	}
	return aggression
}

// #endregion aggression

// #region rule-table

// DimensionRule is one named, independently auditable additive contribution.
// Rules only ever add; order is irrelevant because the sum is commutative.
type DimensionRule struct {
	Dimension profile.Dimension
	Name      string
	Points    float64
	Applies   func(AssetProperties) bool
}

const baselineScore = 0.5

// dimensionRules is the rulebook: every positive signal for every
// dimension, as data rather than branching.
var dimensionRules = []DimensionRule{
	// Presence: how commanding is this asset?
	{profile.Presence, "face_commands_attention", 0.20, func(a AssetProperties) bool { return a.FacePresent }},
	{profile.Presence, "high_saturation_arrests", 0.15, func(a AssetProperties) bool { return a.Saturation > 0.7 }},
	{profile.Presence, "low_complexity_reduces_load", 0.10, func(a AssetProperties) bool { return a.VisualComplexity < 0.4 }},
	{profile.Presence, "low_text_signals_confidence", 0.05, func(a AssetProperties) bool { return a.TextDensity < 0.2 }},

	// Trust: does this feel credible?
	{profile.Trust, "cool_temp_professionalism", 0.15, func(a AssetProperties) bool { return a.ColorTemperature == TempCool }},
	{profile.Trust, "clean_background_organization", 0.15, func(a AssetProperties) bool { return a.BackgroundStyle == BackgroundClean }},
	{profile.Trust, "moderate_text_transparency", 0.10, func(a AssetProperties) bool { return a.TextDensity > 0.2 }},
	{profile.Trust, "product_visibility_honesty", 0.10, func(a AssetProperties) bool { return a.ProductVisible }},

	// Authenticity: does this feel real, not staged?
	{profile.Authenticity, "lifestyle_background_real_context", 0.20, func(a AssetProperties) bool { return a.BackgroundStyle == BackgroundLifestyle }},
	{profile.Authenticity, "face_suggests_real_people", 0.15, func(a AssetProperties) bool { return a.FacePresent }},
	{profile.Authenticity, "low_saturation_unmanipulated", 0.10, func(a AssetProperties) bool { return a.Saturation < 0.6 }},
	{profile.Authenticity, "warmth_human_touch", 0.05, func(a AssetProperties) bool { return a.ColorTemperature == TempWarm }},

	// Momentum: does this feel urgent/energetic?
	{profile.Momentum, "cta_demands_action", 0.20, func(a AssetProperties) bool { return a.CTAPresent }},
	{profile.Momentum, "high_saturation_urgency", 0.15, func(a AssetProperties) bool { return a.Saturation > 0.75 }},
	{profile.Momentum, "complexity_suggests_movement", 0.10, func(a AssetProperties) bool { return a.VisualComplexity > 0.6 }},
	{profile.Momentum, "warm_colors_accelerate", 0.05, func(a AssetProperties) bool { return a.ColorTemperature == TempWarm }},
	{profile.Momentum, "fast_pacing", 0.10, func(a AssetProperties) bool { return a.Pacing != nil && *a.Pacing > 0.7 }},
	{profile.Momentum, "high_scene_count", 0.05, func(a AssetProperties) bool { return a.SceneCount != nil && *a.SceneCount > 8 }},

	// Taste: does this feel premium/considered?
	{profile.Taste, "clean_background_curation", 0.20, func(a AssetProperties) bool { return a.BackgroundStyle == BackgroundClean }},
	{profile.Taste, "low_complexity_restraint", 0.15, func(a AssetProperties) bool { return a.VisualComplexity < 0.35 }},
	{profile.Taste, "moderate_saturation_sophistication", 0.10, func(a AssetProperties) bool { return a.Saturation > 0.5 && a.Saturation < 0.75 }},
	{profile.Taste, "neutral_temp_timelessness", 0.05, func(a AssetProperties) bool { return a.ColorTemperature == TempNeutral }},

	// Empathy: does this connect emotionally?
	{profile.Empathy, "face_mirror_neurons", 0.25, func(a AssetProperties) bool { return a.FacePresent }},
	{profile.Empathy, "lifestyle_enables_narrative", 0.15, func(a AssetProperties) bool { return a.BackgroundStyle == BackgroundLifestyle }},
	{profile.Empathy, "warm_colors_emotional_warmth", 0.10, func(a AssetProperties) bool { return a.ColorTemperature == TempWarm }},
	{profile.Empathy, "narration_human_voice", 0.10, func(a AssetProperties) bool { return a.NarrationPresent != nil && *a.NarrationPresent }},

	// Autonomy: does this feel empowering, not pushy?
	{profile.Autonomy, "no_cta_preserves_agency", 0.15, func(a AssetProperties) bool { return !a.CTAPresent }},
	{profile.Autonomy, "low_text_reduces_pressure", 0.10, func(a AssetProperties) bool { return a.TextDensity < 0.15 }},
	{profile.Autonomy, "clean_background_no_tactics", 0.10, func(a AssetProperties) bool { return a.BackgroundStyle == BackgroundClean }},
	{profile.Autonomy, "simplicity_respects_intelligence", 0.05, func(a AssetProperties) bool { return a.VisualComplexity < 0.4 }},

	// Resonance: does this feel culturally/categorically right?
	{profile.Resonance, "product_visibility_relevance", 0.15, func(a AssetProperties) bool { return a.ProductVisible }},
	{profile.Resonance, "warm_face_human_connection", 0.15, func(a AssetProperties) bool { return a.ColorTemperature == TempWarm && a.FacePresent }},
	{profile.Resonance, "lifestyle_cultural_embedding", 0.10, func(a AssetProperties) bool { return a.BackgroundStyle == BackgroundLifestyle }},

	// Ethics: does this feel honest, not manipulative?
	{profile.Ethics, "low_text_no_fine_print", 0.10, func(a AssetProperties) bool { return a.TextDensity < 0.3 }},
	{profile.Ethics, "non_abstract_grounded_claims", 0.10, func(a AssetProperties) bool { return a.BackgroundStyle != BackgroundAbstract }},
}

// #endregion rule-table
