package mux

import (
	"net/http"

	"holdem-stepper-server/pkg/deck"
	"holdem-stepper-server/pkg/poker/handanalyzer"
)

type postEvaluatePayload struct {
	Cards []string `json:"cards"`
}

type evaluateResponse struct {
	Hand        string   `json:"hand"`
	Rank        int      `json:"rank"`
	Description string   `json:"description"`
	BestFive    []string `json:"bestFive"`
}

// postEvaluate ranks five to seven cards without playing a hand
func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postEvaluatePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		cards, err := deck.ParseCards(pp.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		h, err := handanalyzer.New(cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		best := h.GetBestFive()
		bestFive := make([]string, len(best))
		for i, c := range best {
			bestFive[i] = c.String()
		}

		writeJSON(w, http.StatusOK, evaluateResponse{
			Hand:        h.GetHand().String(),
			Rank:        h.GetHand().Rank(),
			Description: h.Describe(),
			BestFive:    bestFive,
		})
	}
}
