// Package odds provides the numeric primitives shared by the belief and
// discovery models: clamping and conversions between probabilities and
// log-odds.
package odds

import "math"

// probabilityEpsilon keeps conversions away from infinite log-odds.
const probabilityEpsilon = 1e-6

// Clamp limits value to the inclusive [lower, upper] range.
func Clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

// LogOddsToProbability converts log-odds to probability using the logistic
// transform. Total over all reals.
func LogOddsToProbability(logOdds float64) float64 {
	return 1.0 / (1.0 + math.Exp(-logOdds))
}

// ProbabilityToLogOdds converts probability to log-odds. The probability is
// clamped to (epsilon, 1-epsilon) first so the result stays finite.
func ProbabilityToLogOdds(probability float64) float64 {
	p := Clamp(probability, probabilityEpsilon, 1.0-probabilityEpsilon)
	return math.Log(p / (1.0 - p))
}

// HypothesisProbabilities converts each hypothesis log-odds value into a
// probability.
func HypothesisProbabilities(logOdds map[string]float64) map[string]float64 {
	probabilities := make(map[string]float64, len(logOdds))
	for name, value := range logOdds {
		probabilities[name] = LogOddsToProbability(value)
	}
	return probabilities
}
