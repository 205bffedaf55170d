package decision

import (
	"fmt"
	"sort"
	"strings"
)

// #region bands

// Band is one of the three terminal decision outcomes.
type Band string

const (
	AutoLaunch  Band = "AUTO_LAUNCH"
	HumanReview Band = "HUMAN_REVIEW"
	NoLaunch    Band = "NO_LAUNCH"
)

// #endregion bands

// #region result

// Result is a single launch decision with its full rationale. The
// rationale names every threshold checked, not just the failing ones.
type Result struct {
	Decision             Band     `json:"decision"`
	Rationale            []string `json:"decision_rationale"`
	FailedGates          []string `json:"failed_gates,omitempty"`
	SystemFit            float64  `json:"system_fit"`
	SystemConfidence     float64  `json:"system_confidence"`
	TransitionPenaltySum float64  `json:"transition_penalty_sum"`
}

// #endregion result

// #region engine

// Engine applies the three-band launch policy. No state persists between
// evaluations.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Decide evaluates NO_LAUNCH triggers first: any single trigger vetoes the
// launch regardless of other scores. AUTO_LAUNCH requires every condition;
// everything between the bands falls to the mandatory HUMAN_REVIEW zone.
func (e *Engine) Decide(systemFit, systemConfidence, transitionPenaltySum float64, stageGatesPassed map[string]bool) Result {
	result := Result{
		SystemFit:            systemFit,
		SystemConfidence:     systemConfidence,
		TransitionPenaltySum: transitionPenaltySum,
	}

	failedGates := failedGateNames(stageGatesPassed)
	result.FailedGates = failedGates

	noLaunch := e.checkNoLaunch(&result, failedGates)
	if noLaunch {
		result.Decision = NoLaunch
		return result
	}

	if e.checkAutoLaunch(&result, failedGates) {
		result.Decision = AutoLaunch
		return result
	}

	result.Decision = HumanReview
	result.Rationale = append(result.Rationale,
		"System does not meet AUTO_LAUNCH thresholds and does not trigger NO_LAUNCH")
	return result
}

func (e *Engine) checkNoLaunch(result *Result, failedGates []string) bool {
	t := e.thresholds.NoLaunch
	triggered := false

	if result.SystemFit < t.MinSystemFit {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"system_fit %.4f < %.2f (NO_LAUNCH threshold)", result.SystemFit, t.MinSystemFit))
		triggered = true
	} else {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"system_fit %.4f clears NO_LAUNCH floor %.2f", result.SystemFit, t.MinSystemFit))
	}

	if result.SystemConfidence < t.MinSystemConfidence {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"system_confidence %.4f < %.2f (NO_LAUNCH threshold)", result.SystemConfidence, t.MinSystemConfidence))
		triggered = true
	} else {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"system_confidence %.4f clears NO_LAUNCH floor %.2f", result.SystemConfidence, t.MinSystemConfidence))
	}

	if result.TransitionPenaltySum > t.MaxTransitionPenalty {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"transition_penalty_sum %.4f > %.2f (NO_LAUNCH threshold)", result.TransitionPenaltySum, t.MaxTransitionPenalty))
		triggered = true
	} else {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"transition_penalty_sum %.4f within NO_LAUNCH cap %.2f", result.TransitionPenaltySum, t.MaxTransitionPenalty))
	}

	if len(failedGates) > 0 {
		result.Rationale = append(result.Rationale, fmt.Sprintf(
			"Stage gates failed for: %v", failedGates))
		triggered = true
	} else {
		result.Rationale = append(result.Rationale, "All stage gates passed")
	}

	return triggered
}

func (e *Engine) checkAutoLaunch(result *Result, failedGates []string) bool {
	t := e.thresholds.AutoLaunch
	checks := []struct {
		passed bool
		label  string
	}{
		{result.SystemFit >= t.MinSystemFit,
			fmt.Sprintf("system_fit %.4f >= %.2f", result.SystemFit, t.MinSystemFit)},
		{result.SystemConfidence >= t.MinSystemConfidence,
			fmt.Sprintf("system_confidence %.4f >= %.2f", result.SystemConfidence, t.MinSystemConfidence)},
		{result.TransitionPenaltySum <= t.MaxTransitionPenalty,
			fmt.Sprintf("transition_penalty_sum %.4f <= %.2f", result.TransitionPenaltySum, t.MaxTransitionPenalty)},
		{len(failedGates) == 0, "All stage gates passed"},
	}

	allPassed := true
	var failed []string
	for _, c := range checks {
		if !c.passed {
			allPassed = false
			failed = append(failed, c.label)
		}
	}

	if allPassed {
		labels := make([]string, len(checks))
		for i, c := range checks {
			labels[i] = c.label
		}
		result.Rationale = append(result.Rationale,
			"All AUTO_LAUNCH conditions satisfied: "+strings.Join(labels, ", "))
	} else {
		result.Rationale = append(result.Rationale,
			fmt.Sprintf("AUTO_LAUNCH conditions not met: %v", failed))
	}
	return allPassed
}

// failedGateNames returns the names of failing gates in sorted order so
// rationale output is reproducible across runs.
func failedGateNames(gates map[string]bool) []string {
	var failed []string
	for name, passed := range gates {
		if !passed {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}

// #endregion engine
