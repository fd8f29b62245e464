package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-stepper-server/pkg/deck"
	"holdem-stepper-server/pkg/history"
	"holdem-stepper-server/pkg/poker/texasholdem"
)

// postReplayPayload is a recorded hand to play back
type postReplayPayload struct {
	Stacks     []int               `json:"stacks"`
	Dealer     int                 `json:"dealer"`
	HoleCards  [][]string          `json:"holeCards"`
	BoardCards []string            `json:"boardCards"`
	Actions    []postActionPayload `json:"actions"`
	SmallBlind *int                `json:"smallBlind"`
	BigBlind   *int                `json:"bigBlind"`
	MinBet     *int                `json:"minBet"`
}

type replayResponse struct {
	ID        string              `json:"id"`
	Persisted bool                `json:"persisted"`
	Message   string              `json:"message,omitempty"`
	Net       []int               `json:"net"`
	Result    *texasholdem.Result `json:"result"`
	Board     deck.Hand           `json:"board"`
}

func (m *Mux) replayFromPayload(pp postReplayPayload) (texasholdem.ReplaySetup, error) {
	setup := m.setupFromPayload(postGamesPayload{
		Stacks:     pp.Stacks,
		Dealer:     pp.Dealer,
		SmallBlind: pp.SmallBlind,
		BigBlind:   pp.BigBlind,
		MinBet:     pp.MinBet,
	})

	holeCards := make([]deck.Hand, len(pp.HoleCards))
	for i, cards := range pp.HoleCards {
		hand, err := deck.ParseCards(cards)
		if err != nil {
			return texasholdem.ReplaySetup{}, fmt.Errorf("seat %d: %w", i, err)
		}

		holeCards[i] = hand
	}

	board, err := deck.ParseCards(pp.BoardCards)
	if err != nil {
		return texasholdem.ReplaySetup{}, fmt.Errorf("board: %w", err)
	}

	actions := make([]texasholdem.Action, len(pp.Actions))
	for i, a := range pp.Actions {
		action, err := texasholdem.ParseAction(a.Kind, a.Seat, a.Amount)
		if err != nil {
			return texasholdem.ReplaySetup{}, fmt.Errorf("action %d: %w", i, err)
		}

		actions[i] = action
	}

	return texasholdem.ReplaySetup{
		Stacks:     setup.Stacks,
		Dealer:     setup.Dealer,
		Options:    setup.Options,
		HoleCards:  holeCards,
		BoardCards: board,
		Actions:    actions,
	}, nil
}

// postGamesEvaluate plays a recorded hand to the end and saves its history
// A failed save still returns the result, with persisted set to false.
func (m *Mux) postGamesEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postReplayPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		setup, err := m.replayFromPayload(pp)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		id := uuid.New().String()
		logger := logrus.WithField("hand", id)

		game, err := texasholdem.Replay(logger, id, setup)
		if err != nil {
			var illegal *texasholdem.IllegalActionError
			if errors.As(err, &illegal) {
				writeSessionError(w, err)
			} else {
				writeJSONError(w, http.StatusBadRequest, err)
			}

			return
		}

		hh, err := game.HistoryRecord()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		resp := replayResponse{
			ID:        id,
			Persisted: true,
			Net:       game.Result().Net(),
			Result:    game.Result(),
			Board:     game.Board(),
		}

		if err := m.store.Save(r.Context(), history.NewRecord(hh)); err != nil {
			logger.WithError(err).Error("could not save replayed hand")
			resp.Persisted = false
			resp.Message = (&history.PersistError{Err: err}).Error()
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
