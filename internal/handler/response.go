package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openhire/jobboard/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteSuccess writes a success envelope. The payload fields are merged
// into the envelope next to "success": true, matching the API's flat
// response shape.
func WriteSuccess(w http.ResponseWriter, status int, payload map[string]interface{}) {
	body := make(map[string]interface{}, len(payload)+1)
	body["success"] = true
	for k, v := range payload {
		body[k] = v
	}
	WriteJSON(w, status, body)
}

// WriteError writes a failure envelope
func WriteError(w http.ResponseWriter, err *model.APIError) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
