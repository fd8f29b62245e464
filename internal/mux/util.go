package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"holdem-stepper-server/pkg/poker/texasholdem"
	"holdem-stepper-server/pkg/room"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string           `json:"message"`
	StatusCode int              `json:"statusCode"`
	Rule       texasholdem.Rule `json:"rule,omitempty"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeSessionError maps an error from a session to its status code
// illegal actions are a 400, unknown sessions a 404, anything else a 500
func writeSessionError(w http.ResponseWriter, err error) {
	var illegal *texasholdem.IllegalActionError
	switch {
	case errors.As(err, &illegal):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message:    illegal.Error(),
			StatusCode: http.StatusBadRequest,
			Rule:       illegal.Rule,
		})
	case errors.Is(err, room.ErrSessionNotFound):
		writeJSONError(w, http.StatusNotFound, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
