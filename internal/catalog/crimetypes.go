package catalog

// crimeTypes are the built-in scenarios. Scenario files loaded at runtime use
// the same CrimeType shape (see the scenario package).
var crimeTypes = map[string]CrimeType{
	"murder": {
		Name:                 "murder",
		AllowedEvidenceTypes: []string{CategoryPhysical, CategoryDigital, CategoryTestimonial, CategoryCircumstantial},
		BaselineHypotheses: map[string]float64{
			"player_committed_crime":   0.10,
			"alternative_actor":        -0.20,
			"non_criminal_explanation": -0.75,
		},
		DefaultPublicPressure: 0.90,
		TurnPressureCurve:     []float64{0.12, 0.10, 0.09, 0.10, 0.11, 0.12, 0.12, 0.14, 0.15, 0.15},
		EvidenceTemplates: []EvidenceTemplate{
			{
				ID:                 "ev_phys_1",
				Category:           CategoryPhysical,
				BaseReliability:    0.86,
				Detectability:      0.58,
				Manipulability:     0.30,
				CurrentCredibility: 0.86,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.92,
					"alternative_actor":      -0.35,
				},
			},
			{
				ID:                 "ev_dig_1",
				Category:           CategoryDigital,
				BaseReliability:    0.72,
				Detectability:      0.66,
				Manipulability:     0.56,
				CurrentCredibility: 0.72,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.55,
					"non_criminal_explanation": -0.25,
				},
			},
			{
				ID:                 "ev_test_1",
				Category:           CategoryTestimonial,
				BaseReliability:    0.61,
				Detectability:      0.74,
				Manipulability:     0.72,
				CurrentCredibility: 0.61,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.40,
					"alternative_actor":      0.16,
				},
			},
			{
				ID:                 "ev_circ_1",
				Category:           CategoryCircumstantial,
				BaseReliability:    0.49,
				Detectability:      0.81,
				Manipulability:     0.79,
				CurrentCredibility: 0.49,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.28,
					"non_criminal_explanation": 0.10,
				},
			},
		},
	},
	"fraud": {
		Name:                 "fraud",
		AllowedEvidenceTypes: []string{CategoryDigital, CategoryTestimonial, CategoryCircumstantial},
		BaselineHypotheses: map[string]float64{
			"player_committed_crime":   0.22,
			"alternative_actor":        -0.30,
			"non_criminal_explanation": -0.35,
		},
		DefaultPublicPressure: 0.68,
		TurnPressureCurve:     []float64{0.06, 0.06, 0.07, 0.08, 0.08, 0.09, 0.10, 0.10, 0.11, 0.12},
		EvidenceTemplates: []EvidenceTemplate{
			{
				ID:                 "ev_dig_1",
				Category:           CategoryDigital,
				BaseReliability:    0.89,
				Detectability:      0.62,
				Manipulability:     0.46,
				CurrentCredibility: 0.89,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.88,
					"alternative_actor":      -0.30,
				},
			},
			{
				ID:                 "ev_dig_2",
				Category:           CategoryDigital,
				BaseReliability:    0.74,
				Detectability:      0.70,
				Manipulability:     0.58,
				CurrentCredibility: 0.74,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.57,
					"non_criminal_explanation": -0.19,
				},
			},
			{
				ID:                 "ev_test_1",
				Category:           CategoryTestimonial,
				BaseReliability:    0.52,
				Detectability:      0.76,
				Manipulability:     0.80,
				CurrentCredibility: 0.52,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.26,
					"alternative_actor":      0.14,
				},
			},
			{
				ID:                 "ev_circ_1",
				Category:           CategoryCircumstantial,
				BaseReliability:    0.60,
				Detectability:      0.73,
				Manipulability:     0.66,
				CurrentCredibility: 0.60,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.33,
					"non_criminal_explanation": 0.08,
				},
			},
		},
	},
	"arson": {
		Name:                 "arson",
		AllowedEvidenceTypes: []string{CategoryPhysical, CategoryDigital, CategoryCircumstantial},
		BaselineHypotheses: map[string]float64{
			"player_committed_crime":   0.05,
			"alternative_actor":        -0.10,
			"non_criminal_explanation": -0.20,
		},
		DefaultPublicPressure: 0.82,
		TurnPressureCurve:     []float64{0.09, 0.09, 0.08, 0.09, 0.10, 0.11, 0.12, 0.12, 0.13, 0.14},
		EvidenceTemplates: []EvidenceTemplate{
			{
				ID:                 "ev_phys_1",
				Category:           CategoryPhysical,
				BaseReliability:    0.81,
				Detectability:      0.57,
				Manipulability:     0.34,
				CurrentCredibility: 0.81,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.83,
					"non_criminal_explanation": -0.26,
				},
			},
			{
				ID:                 "ev_phys_2",
				Category:           CategoryPhysical,
				BaseReliability:    0.69,
				Detectability:      0.63,
				Manipulability:     0.49,
				CurrentCredibility: 0.69,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.48,
					"alternative_actor":      0.12,
				},
			},
			{
				ID:                 "ev_dig_1",
				Category:           CategoryDigital,
				BaseReliability:    0.63,
				Detectability:      0.69,
				Manipulability:     0.61,
				CurrentCredibility: 0.63,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.42,
					"alternative_actor":      0.10,
				},
			},
			{
				ID:                 "ev_circ_1",
				Category:           CategoryCircumstantial,
				BaseReliability:    0.58,
				Detectability:      0.79,
				Manipulability:     0.75,
				CurrentCredibility: 0.58,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.25,
					"non_criminal_explanation": 0.14,
				},
			},
		},
	},
	"hit_and_run": {
		Name:                 "hit_and_run",
		AllowedEvidenceTypes: []string{CategoryPhysical, CategoryDigital, CategoryTestimonial, CategoryCircumstantial},
		BaselineHypotheses: map[string]float64{
			"player_committed_crime":   0.08,
			"alternative_actor":        -0.22,
			"non_criminal_explanation": -0.50,
		},
		DefaultPublicPressure: 0.76,
		TurnPressureCurve:     []float64{0.08, 0.08, 0.09, 0.10, 0.10, 0.11, 0.11, 0.12, 0.12, 0.13},
		EvidenceTemplates: []EvidenceTemplate{
			{
				ID:                 "ev_phys_1",
				Category:           CategoryPhysical,
				BaseReliability:    0.78,
				Detectability:      0.61,
				Manipulability:     0.42,
				CurrentCredibility: 0.78,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.76,
					"alternative_actor":      -0.24,
				},
			},
			{
				ID:                 "ev_dig_1",
				Category:           CategoryDigital,
				BaseReliability:    0.71,
				Detectability:      0.64,
				Manipulability:     0.53,
				CurrentCredibility: 0.71,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.52,
					"non_criminal_explanation": -0.16,
				},
			},
			{
				ID:                 "ev_test_1",
				Category:           CategoryTestimonial,
				BaseReliability:    0.56,
				Detectability:      0.80,
				Manipulability:     0.78,
				CurrentCredibility: 0.56,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime": 0.30,
					"alternative_actor":      0.18,
				},
			},
			{
				ID:                 "ev_circ_1",
				Category:           CategoryCircumstantial,
				BaseReliability:    0.45,
				Detectability:      0.84,
				Manipulability:     0.82,
				CurrentCredibility: 0.45,
				HypothesisImpacts: map[string]float64{
					"player_committed_crime":   0.21,
					"non_criminal_explanation": 0.16,
				},
			},
		},
	},
}
