package main

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

type errorEnvelope struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Status        int    `json:"status"`
	AccountStatus string `json:"account_status,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &errorEnvelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

// writeJSONStatusError is writeJSONError for refusals caused by the
// approval gate; the client uses account_status to pick its screen.
func writeJSONStatusError(w http.ResponseWriter, status int, message, accountStatus string) error {
	return writeJSON(w, status, &errorEnvelope{
		Success:       false,
		Message:       message,
		Status:        status,
		AccountStatus: accountStatus,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}
