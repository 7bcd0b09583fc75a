// Package catalog holds the immutable, data-only configuration of the
// simulation: crime types with their evidence templates, the closed player
// action catalog, and the investigator action profiles. Loaded once, never
// mutated at runtime.
package catalog

import (
	"sort"
	"strings"

	"github.com/myrjola/alibi/internal/errors"
)

// Evidence categories legal anywhere in the simulation.
const (
	CategoryPhysical       = "physical"
	CategoryDigital        = "digital"
	CategoryTestimonial    = "testimonial"
	CategoryCircumstantial = "circumstantial"
)

// EvidenceCategories lists the fixed category set.
var EvidenceCategories = []string{
	CategoryPhysical,
	CategoryDigital,
	CategoryTestimonial,
	CategoryCircumstantial,
}

// ValidCategory reports whether category is one of the fixed evidence
// categories.
func ValidCategory(category string) bool {
	for _, known := range EvidenceCategories {
		if known == category {
			return true
		}
	}
	return false
}

// Investigator skill domains.
const (
	SkillForensic   = "forensic"
	SkillSocial     = "social"
	SkillAnalytical = "analytical"
)

// Numeric bounds shared across the engine.
const (
	MinLogOdds              = -4.0
	MaxLogOdds              = 4.0
	MaxPublicPressure       = 3.0
	MaxNoiseLevel           = 3.0
	LossConfidenceThreshold = 0.85
)

// EvidenceTemplate seeds one evidence item at case creation time.
type EvidenceTemplate struct {
	ID                 string             `json:"id"`
	Category           string             `json:"category"`
	BaseReliability    float64            `json:"base_reliability"`
	Detectability      float64            `json:"detectability"`
	Manipulability     float64            `json:"manipulability"`
	CurrentCredibility float64            `json:"current_credibility"`
	HypothesisImpacts  map[string]float64 `json:"hypothesis_impacts"`
}

// CrimeType defines crime-type specific systemic parameters. The JSON shape
// doubles as the scenario file format.
type CrimeType struct {
	Name                  string             `json:"name"`
	AllowedEvidenceTypes  []string           `json:"allowed_evidence_types"`
	BaselineHypotheses    map[string]float64 `json:"baseline_hypotheses"`
	DefaultPublicPressure float64            `json:"default_public_pressure"`
	TurnPressureCurve     []float64          `json:"turn_pressure_curve"`
	EvidenceTemplates     []EvidenceTemplate `json:"evidence_templates"`
}

// CrimeTypeByName returns one supported built-in crime type. Unknown names
// fail fast with an error naming the supported set; there is deliberately no
// default substitution. The result is a deep copy, so callers can mutate it
// without touching the catalog.
func CrimeTypeByName(name string) (CrimeType, error) {
	config, ok := crimeTypes[name]
	if !ok {
		return CrimeType{}, errors.New(
			"unsupported crime type '" + name + "'; supported: " + strings.Join(CrimeTypeNames(), ", "))
	}
	return config.clone(), nil
}

func (c CrimeType) clone() CrimeType {
	cloned := c
	cloned.AllowedEvidenceTypes = append([]string(nil), c.AllowedEvidenceTypes...)
	cloned.TurnPressureCurve = append([]float64(nil), c.TurnPressureCurve...)
	cloned.BaselineHypotheses = make(map[string]float64, len(c.BaselineHypotheses))
	for name, value := range c.BaselineHypotheses {
		cloned.BaselineHypotheses[name] = value
	}
	cloned.EvidenceTemplates = make([]EvidenceTemplate, len(c.EvidenceTemplates))
	for index, template := range c.EvidenceTemplates {
		impacts := make(map[string]float64, len(template.HypothesisImpacts))
		for name, value := range template.HypothesisImpacts {
			impacts[name] = value
		}
		template.HypothesisImpacts = impacts
		cloned.EvidenceTemplates[index] = template
	}
	return cloned
}

// CrimeTypeNames lists the supported built-in crime types in sorted order.
func CrimeTypeNames() []string {
	names := make([]string, 0, len(crimeTypes))
	for name := range crimeTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
