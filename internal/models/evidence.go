// Package models holds the simulation state for one adversarial
// investigation: the evidence pool, the hidden investigator model, the player
// resources, and the aggregate game state.
package models

import (
	"encoding/json"

	"github.com/myrjola/alibi/internal/errors"
)

// Evidence is one discoverable artifact tracked by the simulation.
//
// HypothesisImpacts maps hypothesis names to signed log-odds deltas per unit
// of interpretation strength. The key set is closed: it is fixed by the
// scenario author when the evidence is defined and never grows at runtime
// beyond the names the case configuration introduces.
type Evidence struct {
	ID                 string             `json:"id"`
	Category           string             `json:"category"`
	BaseReliability    float64            `json:"base_reliability"`
	Detectability      float64            `json:"detectability"`
	Manipulability     float64            `json:"manipulability"`
	CurrentCredibility float64            `json:"current_credibility"`
	Discovered         bool               `json:"discovered"`
	Active             bool               `json:"active"`
	HypothesisImpacts  map[string]float64 `json:"hypothesis_impacts"`
}

// EvidenceRegistry holds all evidence for a session keyed by id while
// preserving insertion order. The order matters: discovery rolls iterate the
// registry, and the draw sequence must be reproducible from a seed.
type EvidenceRegistry struct {
	items map[string]*Evidence
	order []string
}

// NewEvidenceRegistry creates an empty registry.
func NewEvidenceRegistry() *EvidenceRegistry {
	return &EvidenceRegistry{items: make(map[string]*Evidence)}
}

// Add inserts evidence. Ids must be unique within the registry.
func (r *EvidenceRegistry) Add(evidence *Evidence) error {
	if _, ok := r.items[evidence.ID]; ok {
		return errors.New("duplicate evidence id: " + evidence.ID)
	}
	r.items[evidence.ID] = evidence
	r.order = append(r.order, evidence.ID)
	return nil
}

// Get returns the evidence with the given id.
func (r *EvidenceRegistry) Get(id string) (*Evidence, bool) {
	evidence, ok := r.items[id]
	return evidence, ok
}

// Has reports whether an evidence id is present.
func (r *EvidenceRegistry) Has(id string) bool {
	_, ok := r.items[id]
	return ok
}

// Len returns the number of evidence items, active or not.
func (r *EvidenceRegistry) Len() int {
	return len(r.order)
}

// All returns every evidence item in insertion order. The returned slice is
// fresh but the items are shared, so callers may mutate them.
func (r *EvidenceRegistry) All() []*Evidence {
	all := make([]*Evidence, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.items[id])
	}
	return all
}

// MarshalJSON serializes the registry as an ordered array so that insertion
// order survives a save/load round trip.
func (r *EvidenceRegistry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.All())
}

// UnmarshalJSON restores the registry from the ordered array form.
func (r *EvidenceRegistry) UnmarshalJSON(data []byte) error {
	var items []*Evidence
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "unmarshal evidence registry")
	}
	r.items = make(map[string]*Evidence, len(items))
	r.order = nil
	for _, item := range items {
		if err := r.Add(item); err != nil {
			return err
		}
	}
	return nil
}
