package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/openshelf/sharegate/pkg/sharing"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithDomainError maps a sharing error to its HTTP status. Errors
// without a sharing kind are treated as internal.
func respondWithDomainError(w http.ResponseWriter, err error) {
	kind, ok := sharing.KindOf(err)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondWithError(w, statusForKind(kind), err.Error())
}

func statusForKind(kind sharing.ErrorKind) int {
	switch kind {
	case sharing.KindNotFound:
		return http.StatusNotFound
	case sharing.KindForbidden:
		return http.StatusForbidden
	case sharing.KindInvalidOperation:
		return http.StatusBadRequest
	case sharing.KindConflict:
		return http.StatusConflict
	case sharing.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
