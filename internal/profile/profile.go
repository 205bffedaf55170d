package profile

import "math"

// #region dimensions

// Dimension names one of the nine psychological conversion dimensions.
type Dimension string

const (
	Presence     Dimension = "presence"
	Trust        Dimension = "trust"
	Authenticity Dimension = "authenticity"
	Momentum     Dimension = "momentum"
	Taste        Dimension = "taste"
	Empathy      Dimension = "empathy"
	Autonomy     Dimension = "autonomy"
	Resonance    Dimension = "resonance"
	Ethics       Dimension = "ethics"
)

// Dimensions is the canonical ordered 9-dimension set. The historical
// 10-field variant that included "vitality" is deprecated and not read.
var Dimensions = []Dimension{
	Presence, Trust, Authenticity, Momentum, Taste,
	Empathy, Autonomy, Resonance, Ethics,
}

// #endregion dimensions

// #region profile

// Profile maps each of the nine dimensions to a score in [0,1].
// Absent dimensions read as the neutral 0.5 rather than failing.
type Profile map[Dimension]float64

// Get returns the value for d, defaulting to 0.5 when absent.
func (p Profile) Get(d Dimension) float64 {
	if v, ok := p[d]; ok {
		return v
	}
	return 0.5
}

// Complete reports whether every canonical dimension is present.
func (p Profile) Complete() bool {
	for _, d := range Dimensions {
		if _, ok := p[d]; !ok {
			return false
		}
	}
	return true
}

// Average returns the per-dimension mean of the given profiles,
// reading absent dimensions as 0.5.
func Average(profiles ...Profile) Profile {
	out := make(Profile, len(Dimensions))
	if len(profiles) == 0 {
		return out
	}
	for _, d := range Dimensions {
		var sum float64
		for _, p := range profiles {
			sum += p.Get(d)
		}
		out[d] = Round4(sum / float64(len(profiles)))
	}
	return out
}

// Variance returns the population variance over the canonical dimensions.
func (p Profile) Variance() float64 {
	n := float64(len(Dimensions))
	var mean float64
	for _, d := range Dimensions {
		mean += p.Get(d)
	}
	mean /= n

	var variance float64
	for _, d := range Dimensions {
		diff := p.Get(d) - mean
		variance += diff * diff
	}
	return variance / n
}

// #endregion profile

// #region numeric-helpers

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round4 rounds v to 4 decimal places, the contract for all returned scores.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// #endregion numeric-helpers
