package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	session := alice.New(app.sessionManager.LoadAndSave)

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.Handle("GET /api/visible_state", session.ThenFunc(app.visibleState))
	mux.Handle("GET /api/actions", session.ThenFunc(app.actions))
	mux.Handle("POST /api/apply_action", session.ThenFunc(app.applyAction))
	mux.Handle("POST /api/interpret", session.ThenFunc(app.interpret))
	mux.Handle("POST /api/reset", session.ThenFunc(app.reset))
	mux.Handle("GET /api/saves", session.ThenFunc(app.listSaves))
	mux.Handle("POST /api/saves/{slot}", session.ThenFunc(app.createSave))
	mux.Handle("POST /api/saves/{slot}/restore", session.ThenFunc(app.restoreSave))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
