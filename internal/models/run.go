package models

import "time"

// RiskMode is the user-selected risk preference. It controls the sampling
// temperature of every agent call in a run.
type RiskMode string

const (
	RiskLow      RiskMode = "Low risk"
	RiskBalanced RiskMode = "Balanced"
	RiskHigh     RiskMode = "High conviction"
)

// RiskModes lists the accepted values in presentation order.
var RiskModes = []RiskMode{RiskLow, RiskBalanced, RiskHigh}

// Temperature maps the risk preference to a sampling temperature.
// Unknown values fall through to the high-conviction setting, matching the
// permissive handling of the radio input this knob originated from.
func (r RiskMode) Temperature() float64 {
	switch r {
	case RiskLow:
		return 0.2
	case RiskBalanced:
		return 0.35
	default:
		return 0.55
	}
}

// Valid reports whether r is one of the three accepted modes.
func (r RiskMode) Valid() bool {
	switch r {
	case RiskLow, RiskBalanced, RiskHigh:
		return true
	}
	return false
}

// Depth bounds for a run. Depth controls requested output length via the
// token budget.
const (
	MinDepth = 1
	MaxDepth = 5
)

// RunConfig carries the knobs for one arena run. Immutable for the run's
// duration.
type RunConfig struct {
	Problem string
	Risk    RiskMode
	Depth   int
}

// MaxTokens derives the per-call token budget, linear in depth.
func (c RunConfig) MaxTokens() int {
	return 650 + c.Depth*150
}

// Temperature derives the per-call sampling temperature from the risk mode.
func (c RunConfig) Temperature() float64 {
	return c.Risk.Temperature()
}

// CallResult is the outcome of one successful dispatch. Latency covers the
// whole dispatch, including time burned on failed fallback attempts.
type CallResult struct {
	Text    string
	Model   string
	Latency time.Duration
}
