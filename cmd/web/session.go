package main

import (
	"net/http"

	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/random"
)

const gameIDSessionKey = "gameID"

// gameID returns the stable per-session game identifier, minting one on
// first use. The id keys both the in-memory engine and the save archive.
func (app *application) gameID(r *http.Request) (string, error) {
	ctx := r.Context()
	if id := app.sessionManager.GetString(ctx, gameIDSessionKey); id != "" {
		return id, nil
	}
	var idLength uint = 20
	id, err := random.Letters(idLength)
	if err != nil {
		return "", errors.Wrap(err, "generate game id")
	}
	app.sessionManager.Put(ctx, gameIDSessionKey, id)
	return id, nil
}
