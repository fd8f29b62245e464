package mux

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"holdem-stepper-server/pkg/history"
	"holdem-stepper-server/pkg/poker/texasholdem"
	"holdem-stepper-server/pkg/room"
)

type gameResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Persisted bool                   `json:"persisted"`
	Message   string                 `json:"message,omitempty"`
	State     *texasholdem.GameState `json:"state"`
}

func newGameResponse(d *room.Dealer, state *texasholdem.GameState) gameResponse {
	return gameResponse{
		ID:        d.ID(),
		Name:      d.Name(),
		Persisted: d.Persisted(),
		State:     state,
	}
}

// postGamesPayload overrides the configured defaults for a new hand
type postGamesPayload struct {
	Stacks          []int `json:"stacks"`
	Dealer          int   `json:"dealer"`
	Seed            int64 `json:"seed"`
	SmallBlind      *int  `json:"smallBlind"`
	BigBlind        *int  `json:"bigBlind"`
	MinBet          *int  `json:"minBet"`
	AutoDeal        *bool `json:"autoDeal"`
	RevealHoleCards *bool `json:"revealHoleCards"`
}

func (m *Mux) setupFromPayload(pp postGamesPayload) room.Setup {
	opts := texasholdem.Options{
		SmallBlind:      m.defaults.SmallBlind,
		BigBlind:        m.defaults.BigBlind,
		MinBet:          m.defaults.MinBet,
		AutoDeal:        m.defaults.AutoDeal,
		RevealHoleCards: m.defaults.RevealHoleCards,
	}

	if pp.SmallBlind != nil {
		opts.SmallBlind = *pp.SmallBlind
	}

	if pp.BigBlind != nil {
		opts.BigBlind = *pp.BigBlind
	}

	if pp.MinBet != nil {
		opts.MinBet = *pp.MinBet
	}

	if pp.AutoDeal != nil {
		opts.AutoDeal = *pp.AutoDeal
	}

	if pp.RevealHoleCards != nil {
		opts.RevealHoleCards = *pp.RevealHoleCards
	}

	stacks := pp.Stacks
	if len(stacks) == 0 {
		stacks = make([]int, m.defaults.Seats)
		for i := range stacks {
			stacks[i] = m.defaults.StartingStack
		}
	}

	return room.Setup{
		Stacks:  stacks,
		Dealer:  pp.Dealer,
		Options: opts,
		Seed:    pp.Seed,
	}
}

func (m *Mux) postGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamesPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		dealer, err := m.pitBoss.Create(m.setupFromPayload(pp))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, newGameResponse(dealer, dealer.State()))
	}
}

func (m *Mux) getGamesID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Dealer(mux.Vars(r)["id"])
		if err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newGameResponse(dealer, dealer.State()))
	}
}

func (m *Mux) deleteGamesID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.pitBoss.Remove(mux.Vars(r)["id"]); err != nil {
			writeSessionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type postActionPayload struct {
	Kind   string `json:"kind"`
	Seat   *int   `json:"seat"`
	Amount *int   `json:"amount"`
}

func (m *Mux) postGamesIDActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Dealer(mux.Vars(r)["id"])
		if err != nil {
			writeSessionError(w, err)
			return
		}

		var pp postActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		action, err := texasholdem.ParseAction(pp.Kind, pp.Seat, pp.Amount)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		state, err := dealer.Apply(r.Context(), action)
		if err != nil && !errors.Is(err, history.ErrPersistenceUnavailable) {
			writeSessionError(w, err)
			return
		}

		resp := newGameResponse(dealer, state)
		if err != nil {
			// the hand is settled, only the hand-off failed
			resp.Message = err.Error()
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postGamesIDPersist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Dealer(mux.Vars(r)["id"])
		if err != nil {
			writeSessionError(w, err)
			return
		}

		if err := dealer.RetryPersist(r.Context()); err != nil {
			switch {
			case errors.Is(err, texasholdem.ErrHandNotOver):
				writeJSONError(w, http.StatusConflict, err)
			case errors.Is(err, history.ErrPersistenceUnavailable):
				writeJSONError(w, http.StatusServiceUnavailable, err)
			default:
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		writeJSON(w, http.StatusOK, newGameResponse(dealer, dealer.State()))
	}
}
