package handlers

import (
	"net/http"

	"github.com/Kmkishore05/CarePulsebot/internal/domain/apperrors"
	"github.com/Kmkishore05/CarePulsebot/internal/domain/dto"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const statusSuccess = "success"
const statusError = "error"

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeTurnError converts a pipeline error into the legacy
// {status:"error", response:"..."} payload; err.Error() already carries the
// exact user-visible string for each kind.
func writeTurnError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatusCode(err), dto.TurnResponse{Status: statusError, Response: err.Error()})
}

func errorStatusCode(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindOffTopic:
		return http.StatusUnprocessableEntity
	case apperrors.KindTranslationFailure, apperrors.KindRemoteWorkflowFailure, apperrors.KindRemoteWorkflowMalformed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
