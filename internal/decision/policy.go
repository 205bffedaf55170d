package decision

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region thresholds

// BandThresholds bound one decision band.
type BandThresholds struct {
	MinSystemFit         float64 `yaml:"min_system_fit"`
	MinSystemConfidence  float64 `yaml:"min_system_confidence"`
	MaxTransitionPenalty float64 `yaml:"max_transition_penalty"`
}

// Thresholds is the full launch policy. The gap between the NO_LAUNCH
// floors and the AUTO_LAUNCH minimums is intentional: it creates the
// mandatory human-reviewed middle zone.
type Thresholds struct {
	PolicyID   string         `yaml:"policy_id"`
	AutoLaunch BandThresholds `yaml:"auto_launch"`
	NoLaunch   BandThresholds `yaml:"no_launch"`
}

// DefaultThresholds returns the canonical launch policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PolicyID: "launch-policy-default",
		AutoLaunch: BandThresholds{
			MinSystemFit:         0.82,
			MinSystemConfidence:  0.72,
			MaxTransitionPenalty: 0.08,
		},
		NoLaunch: BandThresholds{
			MinSystemFit:         0.70,
			MinSystemConfidence:  0.50,
			MaxTransitionPenalty: 0.18,
		},
	}
}

// #endregion thresholds

// #region loader

// LoadThresholds reads a YAML policy file. Missing fields keep their
// defaults so a policy file can override just one band.
func LoadThresholds(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read policy %s: %w", path, err)
	}

	t := DefaultThresholds()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Thresholds{}, fmt.Errorf("parse policy %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Thresholds{}, fmt.Errorf("policy %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects a policy whose bands overlap or leave [0,1].
func (t Thresholds) Validate() error {
	for _, b := range []struct {
		name string
		bt   BandThresholds
	}{{"auto_launch", t.AutoLaunch}, {"no_launch", t.NoLaunch}} {
		if b.bt.MinSystemFit < 0 || b.bt.MinSystemFit > 1 {
			return fmt.Errorf("%s min_system_fit out of [0,1]: %v", b.name, b.bt.MinSystemFit)
		}
		if b.bt.MinSystemConfidence < 0 || b.bt.MinSystemConfidence > 1 {
			return fmt.Errorf("%s min_system_confidence out of [0,1]: %v", b.name, b.bt.MinSystemConfidence)
		}
		if b.bt.MaxTransitionPenalty < 0 {
			return fmt.Errorf("%s max_transition_penalty must be >= 0: %v", b.name, b.bt.MaxTransitionPenalty)
		}
	}
	if t.AutoLaunch.MinSystemFit < t.NoLaunch.MinSystemFit {
		return fmt.Errorf("auto_launch min_system_fit %v below no_launch floor %v",
			t.AutoLaunch.MinSystemFit, t.NoLaunch.MinSystemFit)
	}
	if t.AutoLaunch.MinSystemConfidence < t.NoLaunch.MinSystemConfidence {
		return fmt.Errorf("auto_launch min_system_confidence %v below no_launch floor %v",
			t.AutoLaunch.MinSystemConfidence, t.NoLaunch.MinSystemConfidence)
	}
	if t.AutoLaunch.MaxTransitionPenalty > t.NoLaunch.MaxTransitionPenalty {
		return fmt.Errorf("auto_launch max_transition_penalty %v above no_launch cap %v",
			t.AutoLaunch.MaxTransitionPenalty, t.NoLaunch.MaxTransitionPenalty)
	}
	return nil
}

// #endregion loader
