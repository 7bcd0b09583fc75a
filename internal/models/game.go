package models

import (
	"encoding/base64"
	"encoding/json"

	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/random"
)

// ErrInvalidRNGState is returned when a serialized game state carries a
// generator state that cannot be restored.
var ErrInvalidRNGState = errors.NewSentinel("invalid rng state")

// GameState is the single aggregate root of one simulation session. It is
// exclusively owned by the engine; callers observe it through read-only
// accessors such as VisibleEvidence.
type GameState struct {
	Turn           int                `json:"turn"`
	Day            int                `json:"day"`
	Case           CaseData           `json:"case_data"`
	Evidence       *EvidenceRegistry  `json:"evidence_registry"`
	Player         PlayerState        `json:"player_state"`
	Investigator   InvestigatorState  `json:"investigator_state"`
	PublicPressure float64            `json:"public_pressure"`
	NoiseLevel     float64            `json:"noise_level"`
	Seed           uint64             `json:"seed"`

	// Rand is the live generator. Its internal position is serialized
	// separately as rng_state; the Rand instance itself never participates in
	// state equality.
	Rand *random.Source `json:"-"`

	// RandReseeded is set when a loaded state was missing rng_state and the
	// generator had to be reseeded from Seed. Exact continuation of the
	// original draw sequence is broken in that case and callers must surface
	// it.
	RandReseeded bool `json:"-"`
}

// VisibleEvidence returns the evidence currently known to the investigator
// (discovered and active), in registry insertion order. Computed on demand,
// never stored.
func (g *GameState) VisibleEvidence() []*Evidence {
	var visible []*Evidence
	for _, item := range g.Evidence.All() {
		if item.Discovered && item.Active {
			visible = append(visible, item)
		}
	}
	return visible
}

// gameStateJSON is the serialized shape of GameState including the generator
// position.
type gameStateJSON struct {
	Turn           int               `json:"turn"`
	Day            int               `json:"day"`
	Case           CaseData          `json:"case_data"`
	Evidence       *EvidenceRegistry `json:"evidence_registry"`
	Player         PlayerState       `json:"player_state"`
	Investigator   InvestigatorState `json:"investigator_state"`
	PublicPressure float64           `json:"public_pressure"`
	NoiseLevel     float64           `json:"noise_level"`
	Seed           *uint64           `json:"seed"`
	RNGState       *string           `json:"rng_state"`
}

// MarshalJSON serializes the complete state including the exact generator
// position so a load can resume identical future draws.
func (g *GameState) MarshalJSON() ([]byte, error) {
	rngState, err := g.Rand.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "marshal rng state")
	}
	encoded := base64.StdEncoding.EncodeToString(rngState)
	seed := g.Seed
	return json.Marshal(gameStateJSON{
		Turn:           g.Turn,
		Day:            g.Day,
		Case:           g.Case,
		Evidence:       g.Evidence,
		Player:         g.Player,
		Investigator:   g.Investigator,
		PublicPressure: g.PublicPressure,
		NoiseLevel:     g.NoiseLevel,
		Seed:           &seed,
		RNGState:       &encoded,
	})
}

// UnmarshalJSON restores serialized state. A missing rng_state falls back to
// reseeding from the stored seed and flags RandReseeded so the caller can
// warn that exact continuation is broken. A structurally invalid rng_state is
// a hard failure wrapping ErrInvalidRNGState.
func (g *GameState) UnmarshalJSON(data []byte) error {
	var decoded gameStateJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Wrap(err, "unmarshal game state")
	}
	if decoded.Seed == nil {
		return errors.New("serialized game state is missing required seed")
	}
	if decoded.Evidence == nil {
		decoded.Evidence = NewEvidenceRegistry()
	}

	rand := random.NewSource(*decoded.Seed)
	reseeded := true
	if decoded.RNGState != nil {
		raw, err := base64.StdEncoding.DecodeString(*decoded.RNGState)
		if err != nil {
			return errors.Wrap(ErrInvalidRNGState, "decode rng state")
		}
		if err = rand.UnmarshalBinary(raw); err != nil {
			return errors.Wrap(ErrInvalidRNGState, "restore rng state")
		}
		reseeded = false
	}

	g.Turn = decoded.Turn
	g.Day = decoded.Day
	g.Case = decoded.Case
	g.Evidence = decoded.Evidence
	g.Player = decoded.Player
	g.Investigator = decoded.Investigator
	g.PublicPressure = decoded.PublicPressure
	g.NoiseLevel = decoded.NoiseLevel
	g.Seed = *decoded.Seed
	g.Rand = rand
	g.RandReseeded = reseeded
	return nil
}
