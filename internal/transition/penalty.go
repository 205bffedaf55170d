package transition

import "github.com/STDC26/launchgate/internal/profile"

// #region transitions

// Transition names a funnel stage boundary.
type Transition string

const (
	ImageToVideo       Transition = "image_to_video"
	VideoToLandingPage Transition = "video_to_landing_page"
)

// #endregion transitions

// #region rule-table

// PenaltyRule binds one transition and one dimension to a delta trigger.
// Each rule is evaluated independently; the report carries all of them.
type PenaltyRule struct {
	ID         string
	Transition Transition
	Dimension  profile.Dimension
	Trigger    func(delta float64) bool
	Penalty    float64
	Rationale  string
}

// PenaltyRules is the fixed rulebook for inter-stage violations.
var PenaltyRules = []PenaltyRule{
	{
		ID:         "IMG_VID_TRUST_DROP",
		Transition: ImageToVideo,
		Dimension:  profile.Trust,
		Trigger:    func(delta float64) bool { return delta < -0.10 },
		Penalty:    0.10,
		Rationale:  "Trust regression after attention capture predicts shallow engagement",
	},
	{
		ID:         "IMG_VID_MOMENTUM_SPIKE",
		Transition: ImageToVideo,
		Dimension:  profile.Momentum,
		Trigger:    func(delta float64) bool { return delta > 0.20 },
		Penalty:    0.06,
		Rationale:  "Early urgency escalation increases reactance before value formation",
	},
	{
		ID:         "VID_LP_TRUST_INSUFFICIENT_LIFT",
		Transition: VideoToLandingPage,
		Dimension:  profile.Trust,
		Trigger:    func(delta float64) bool { return delta < 0.10 },
		Penalty:    0.08,
		Rationale:  "LP must materially increase trust to resolve risk",
	},
	{
		ID:         "VID_LP_AUTONOMY_DROP",
		Transition: VideoToLandingPage,
		Dimension:  profile.Autonomy,
		Trigger:    func(delta float64) bool { return delta < -0.10 },
		Penalty:    0.07,
		Rationale:  "Coercive LP following persuasive video triggers reactance",
	},
	{
		ID:         "VID_LP_MOMENTUM_NO_TAPER",
		Transition: VideoToLandingPage,
		Dimension:  profile.Momentum,
		Trigger:    func(delta float64) bool { return delta > 0.00 },
		Penalty:    0.06,
		Rationale:  "Failure to taper urgency undermines decision confidence",
	},
}

// #endregion rule-table

// #region results

// PenaltyResult is one rule's evaluation, triggered or not.
type PenaltyResult struct {
	ID           string            `json:"id"`
	Transition   Transition        `json:"transition"`
	Dimension    profile.Dimension `json:"dimension"`
	Triggered    bool              `json:"triggered"`
	Delta        float64           `json:"delta"`
	PenaltyValue float64           `json:"penalty_value"`
	Rationale    string            `json:"rationale"`
}

// PenaltyReport carries the uncapped sum, the triggered subset, and every
// check for audit. Capping happens in the fit aggregator, not here.
type PenaltyReport struct {
	PenaltySum float64         `json:"transition_penalty_sum"`
	Triggered  []PenaltyResult `json:"triggered_penalties"`
	AllChecks  []PenaltyResult `json:"all_checks"`
}

// TriggeredIDs lists the ids of the triggered rules in rulebook order.
func (r PenaltyReport) TriggeredIDs() []string {
	ids := make([]string, 0, len(r.Triggered))
	for _, t := range r.Triggered {
		ids = append(ids, t.ID)
	}
	return ids
}

// #endregion results

// #region checker

// CheckPenalties evaluates every penalty rule against the three stage
// profiles. Pure and deterministic; absent dimensions read as 0.5.
func CheckPenalties(image, video, landingPage profile.Profile) PenaltyReport {
	report := PenaltyReport{
		AllChecks: make([]PenaltyResult, 0, len(PenaltyRules)),
	}

	total := 0.0
	for _, rule := range PenaltyRules {
		var from, to float64
		if rule.Transition == ImageToVideo {
			from = image.Get(rule.Dimension)
			to = video.Get(rule.Dimension)
		} else {
			from = video.Get(rule.Dimension)
			to = landingPage.Get(rule.Dimension)
		}

		delta := to - from
		triggered := rule.Trigger(delta)
		penalty := 0.0
		if triggered {
			penalty = rule.Penalty
		}

		result := PenaltyResult{
			ID:           rule.ID,
			Transition:   rule.Transition,
			Dimension:    rule.Dimension,
			Triggered:    triggered,
			Delta:        profile.Round4(delta),
			PenaltyValue: penalty,
			Rationale:    rule.Rationale,
		}
		report.AllChecks = append(report.AllChecks, result)
		if triggered {
			report.Triggered = append(report.Triggered, result)
		}
		total += penalty
	}

	report.PenaltySum = profile.Round4(total)
	return report
}

// #endregion checker
