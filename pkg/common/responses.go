package common

import (
	"encoding/json"
	"net/http"

	apperrors "retrolens-backend/pkg/errors"
)

// ErrorBody is the wire shape of every failure response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// RespondJSON writes data as a JSON response. Successful payloads are
// returned raw, without an envelope.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondDetail writes a failure response with the given reason.
func RespondDetail(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorBody{Detail: detail})
}

// RespondError maps err onto the status and detail conventions: the
// status comes from the error taxonomy, the body never carries internals.
func RespondError(w http.ResponseWriter, err error) {
	RespondDetail(w, apperrors.Status(err), apperrors.Detail(err))
}

// ParseJSONBody decodes a JSON request body into v with a size limit.
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
