package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdem-stepper-server/internal/config"
	"holdem-stepper-server/pkg/history"
	"holdem-stepper-server/pkg/room"
)

const uuidPattern = "{id:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	defaults config.Game
	pitBoss  *room.PitBoss
	store    history.Store
}

// NewMux returns a new HTTP mux
// New hands fall back to defaults for anything the request leaves out.
func NewMux(version string, defaults config.Game, pitBoss *room.PitBoss, store history.Store) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		defaults: defaults,
		pitBoss:  pitBoss,
		store:    store,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())

	r.Methods(http.MethodPost).Path("/games").Handler(this.postGames())
	r.Methods(http.MethodPost).Path("/games/evaluate").Handler(this.postGamesEvaluate())
	{
		gr := r.PathPrefix("/games/" + uuidPattern).Subrouter()
		gr.Methods(http.MethodGet).Path("").Handler(this.getGamesID())
		gr.Methods(http.MethodDelete).Path("").Handler(this.deleteGamesID())
		gr.Methods(http.MethodPost).Path("/actions").Handler(this.postGamesIDActions())
		gr.Methods(http.MethodPost).Path("/persist").Handler(this.postGamesIDPersist())
	}

	r.Methods(http.MethodGet).Path("/hands").Handler(this.getHands())
	r.Methods(http.MethodGet).Path("/hands/{id}").Handler(this.getHandsID())
	r.Methods(http.MethodDelete).Path("/hands").Handler(this.deleteHands())

	return this
}
