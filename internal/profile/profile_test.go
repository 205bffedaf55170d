package profile

import (
	"math"
	"testing"
)

func TestGetDefaultsToNeutral(t *testing.T) {
	p := Profile{Trust: 0.8}

	if got := p.Get(Trust); got != 0.8 {
		t.Errorf("Get(trust) = %v, want 0.8", got)
	}
	if got := p.Get(Momentum); got != 0.5 {
		t.Errorf("Get(momentum) = %v, want neutral 0.5", got)
	}
	if got := Profile(nil).Get(Ethics); got != 0.5 {
		t.Errorf("nil profile Get = %v, want 0.5", got)
	}
}

func TestComplete(t *testing.T) {
	p := make(Profile)
	for _, d := range Dimensions {
		p[d] = 0.5
	}
	if !p.Complete() {
		t.Error("expected complete profile")
	}
	delete(p, Resonance)
	if p.Complete() {
		t.Error("expected incomplete profile after deleting a dimension")
	}
}

func TestAverageFillsMissingDimensions(t *testing.T) {
	a := Profile{Trust: 0.8}
	b := Profile{Trust: 0.6}

	avg := Average(a, b)

	if got := avg[Trust]; got != 0.7 {
		t.Errorf("avg trust = %v, want 0.7", got)
	}
	// Dimensions absent from every input read as 0.5.
	if got := avg[Empathy]; got != 0.5 {
		t.Errorf("avg empathy = %v, want 0.5", got)
	}
	if !avg.Complete() {
		t.Error("average must produce a complete profile")
	}
}

func TestVariance(t *testing.T) {
	uniform := make(Profile)
	for _, d := range Dimensions {
		uniform[d] = 0.7
	}
	if got := uniform.Variance(); got != 0 {
		t.Errorf("uniform variance = %v, want 0", got)
	}

	spread := make(Profile)
	for i, d := range Dimensions {
		if i%2 == 0 {
			spread[d] = 1.0
		}
	}
	if got := spread.Variance(); got <= 0 {
		t.Errorf("spread variance = %v, want > 0", got)
	}
}

func TestRound4(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.123456, 0.1235},
		{0.12344, 0.1234},
		{1.0, 1.0},
		{0.00005, 0.0001},
	}
	for _, tc := range cases {
		if got := Round4(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Round4(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.2); got != 0 {
		t.Errorf("Clamp01(-0.2) = %v, want 0", got)
	}
	if got := Clamp01(1.3); got != 1 {
		t.Errorf("Clamp01(1.3) = %v, want 1", got)
	}
	if got := Clamp01(0.42); got != 0.42 {
		t.Errorf("Clamp01(0.42) = %v, want 0.42", got)
	}
}
