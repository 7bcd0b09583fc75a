package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/myrjola/alibi/internal/engine"
	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/repositories"
	"github.com/myrjola/alibi/internal/save"
	"github.com/myrjola/alibi/internal/scenario"
	"github.com/myrjola/alibi/internal/view"
)

// healthy responds with a JSON object indicating that the server is healthy.
func (app *application) healthy(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (app *application) visibleState(w http.ResponseWriter, r *http.Request) {
	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session, err := app.games.acquire(id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	defer session.release()

	app.writeJSON(w, r, view.VisibleStateFrom(session.engine.State()))
}

func (app *application) actions(w http.ResponseWriter, r *http.Request) {
	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session, err := app.games.acquire(id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	defer session.release()

	app.writeJSON(w, r, map[string]any{
		"actions": view.ActionOptionsFrom(session.engine.State()),
	})
}

type applyActionRequest struct {
	ActionID string         `json:"action_id"`
	Params   map[string]any `json:"params"`
}

type actionResult struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

func (app *application) applyAction(w http.ResponseWriter, r *http.Request) {
	var req applyActionRequest
	if err := decodeJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ActionID == "" {
		app.clientError(w, r, http.StatusBadRequest, "action_id is required")
		return
	}

	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session, err := app.games.acquire(id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	defer session.release()

	report := session.engine.Step(req.ActionID)
	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "action applied",
		slog.Int("turn", report.Turn),
		slog.String("resolved", report.PlayerActionResolved),
		slog.Bool("success", report.PlayerActionSuccess))

	app.writeJSON(w, r, map[string]any{
		"visible_state": view.VisibleStateFrom(session.engine.State()),
		"action_result": actionResult{
			Success: report.PlayerActionSuccess,
			Summary: fmt.Sprintf("%s: %s. Investigator took action: %s.",
				report.PlayerActionResolved, report.PlayerActionDetails, report.InvestigatorAction),
		},
		"outcome": report.Outcome,
	})
}

type interpretRequest struct {
	Text string `json:"text"`
}

func (app *application) interpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := decodeJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	app.writeJSON(w, r, app.intentMapper.MapText(req.Text))
}

type resetRequest struct {
	Seed      uint64 `json:"seed"`
	CrimeType string `json:"crime_type"`
	MaxTurns  int    `json:"max_turns"`
}

const (
	maxSeed      = 1_000_000
	maxTurnLimit = 100
)

func (app *application) reset(w http.ResponseWriter, r *http.Request) {
	req := resetRequest{Seed: defaultSeed, CrimeType: defaultCrimeType, MaxTurns: defaultMaxTurns}
	if err := decodeJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Seed < 1 || req.Seed > maxSeed {
		app.clientError(w, r, http.StatusBadRequest, "seed must be between 1 and 1000000")
		return
	}
	if req.MaxTurns < 1 || req.MaxTurns > maxTurnLimit {
		app.clientError(w, r, http.StatusBadRequest, "max_turns must be between 1 and 100")
		return
	}

	eng, err := app.newEngine(req.CrimeType, req.Seed, req.MaxTurns)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.games.replace(id, eng)
	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "game reset",
		slog.String("crime_type", req.CrimeType), slog.Uint64("seed", req.Seed))

	app.writeJSON(w, r, map[string]any{
		"message":       "Game reset successfully",
		"visible_state": view.VisibleStateFrom(eng.State()),
	})
}

// newEngine builds an engine from a built-in crime type, falling back to the
// scenario library for authored cases.
func (app *application) newEngine(crimeType string, seed uint64, maxTurns int) (*engine.Engine, error) {
	eng, err := engine.New(crimeType, seed, engine.WithMaxTurns(maxTurns))
	if err == nil {
		return eng, nil
	}
	config, scenarioErr := scenario.Load(scenario.Path(crimeType, app.config.ScenarioDir))
	if scenarioErr != nil {
		return nil, err
	}
	return engine.NewFromConfig(config, seed, engine.WithMaxTurns(maxTurns)), nil
}

func (app *application) listSaves(w http.ResponseWriter, r *http.Request) {
	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	slots, err := app.saves.List(r.Context(), id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if slots == nil {
		slots = []repositories.SaveSlot{}
	}
	app.writeJSON(w, r, map[string]any{"saves": slots})
}

func (app *application) createSave(w http.ResponseWriter, r *http.Request) {
	slot := r.PathValue("slot")
	if slot == "" {
		app.clientError(w, r, http.StatusBadRequest, "slot is required")
		return
	}

	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session, err := app.games.acquire(id)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	payload, err := save.Encode(session.engine.State())
	session.release()
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err = app.saves.Put(r.Context(), id, slot, payload); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, map[string]string{"message": "Game saved", "slot": slot})
}

func (app *application) restoreSave(w http.ResponseWriter, r *http.Request) {
	slot := r.PathValue("slot")
	id, err := app.gameID(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	payload, err := app.saves.Get(r.Context(), id, slot)
	if err != nil {
		if errors.Is(err, repositories.ErrSaveNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no save in slot "+slot)
			return
		}
		app.serverError(w, r, err)
		return
	}

	result, err := save.Decode(payload)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if result.ReseededFromSeed {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn,
			"save predates generator state tracking, future turns will diverge",
			slog.String("slot", slot))
	}

	eng := engine.Restore(result.State)
	app.games.replace(id, eng)

	app.writeJSON(w, r, map[string]any{
		"message":            "Game restored",
		"slot":               slot,
		"reseeded_from_seed": result.ReseededFromSeed,
		"visible_state":      view.VisibleStateFrom(eng.State()),
	})
}
