package mux

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"holdem-stepper-server/pkg/history"
)

func (m *Mux) getHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := m.store.ListAll(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func (m *Mux) getHandsID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := m.store.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, history.ErrRecordNotFound) {
				writeJSONError(w, http.StatusNotFound, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

type deleteHandsResponse struct {
	Deleted int64 `json:"deleted"`
}

func (m *Mux) deleteHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := m.store.Clear(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteHandsResponse{Deleted: n})
	}
}
