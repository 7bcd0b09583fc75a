// Package save persists game state as versioned JSON envelopes on disk.
package save

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/models"
)

// FormatVersion is the only envelope version this build reads and writes.
const FormatVersion = 1

var (
	// ErrNotObject is returned when the file's top level is not a JSON object.
	ErrNotObject = errors.NewSentinel("save file is not a JSON object")
	// ErrUnsupportedVersion is returned for any format_version other than
	// FormatVersion. There is no migration path between versions.
	ErrUnsupportedVersion = errors.NewSentinel("unsupported save format version")
	// ErrMissingState is returned when the envelope lacks a state object.
	ErrMissingState = errors.NewSentinel("save file is missing state object")
)

// Envelope is the on-disk save shape. State is kept raw during decode so
// envelope validation errors surface before state validation errors.
type Envelope struct {
	FormatVersion int             `json:"format_version"`
	SavedAt       time.Time       `json:"saved_at"`
	State         json.RawMessage `json:"state"`
}

// Result is a loaded game state plus load diagnostics.
type Result struct {
	State *models.GameState

	// ReseededFromSeed is set when the save predates rng_state tracking and
	// the generator was reconstructed from the seed. The restored session
	// stays playable but does not reproduce the original's future draws.
	ReseededFromSeed bool
}

// Save writes the state as an envelope at path, creating parent directories.
// The write goes through a temp file in the target directory followed by a
// rename so a crash cannot leave a truncated save behind.
func Save(path string, state *models.GameState) error {
	serialized, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "marshal game state", slog.String("path", path))
	}
	envelope := Envelope{
		FormatVersion: FormatVersion,
		SavedAt:       time.Now().UTC(),
		State:         serialized,
	}
	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal save envelope", slog.String("path", path))
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create save directory", slog.String("dir", dir))
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp save file", slog.String("dir", dir))
	}
	tmpPath := tmp.Name()
	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "write save file", slog.String("path", tmpPath))
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "close save file", slog.String("path", tmpPath))
	}
	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "finalize save file", slog.String("path", path))
	}
	return nil
}

// Load reads an envelope from path and restores the contained game state.
func Load(path string) (Result, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrap(err, "read save file", slog.String("path", path))
	}
	return Decode(payload)
}

// Decode restores a game state from raw envelope bytes.
func Decode(payload []byte) (Result, error) {
	var probe any
	if err := json.Unmarshal(payload, &probe); err != nil {
		return Result{}, errors.Wrap(err, "parse save file")
	}
	top, ok := probe.(map[string]any)
	if !ok {
		return Result{}, ErrNotObject
	}

	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Result{}, errors.Wrap(err, "parse save envelope")
	}
	if envelope.FormatVersion != FormatVersion {
		return Result{}, errors.Wrap(ErrUnsupportedVersion, "check save format",
			slog.Int("format_version", envelope.FormatVersion),
			slog.Int("supported", FormatVersion))
	}
	if _, ok = top["state"].(map[string]any); !ok {
		return Result{}, ErrMissingState
	}

	var state models.GameState
	if err := json.Unmarshal(envelope.State, &state); err != nil {
		return Result{}, errors.Wrap(err, "restore game state")
	}
	return Result{State: &state, ReseededFromSeed: state.RandReseeded}, nil
}

// Encode serializes the state into envelope bytes, the same shape Save writes.
func Encode(state *models.GameState) ([]byte, error) {
	serialized, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "marshal game state")
	}
	payload, err := json.Marshal(Envelope{
		FormatVersion: FormatVersion,
		SavedAt:       time.Now().UTC(),
		State:         serialized,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal save envelope")
	}
	return payload, nil
}
