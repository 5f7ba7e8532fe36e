package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crmbase/lead-manager/internal/usecase"
)

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{Success: true, Message: message})
}

// writeError maps service error codes onto HTTP statuses. Anything
// that is not a DomainError is an infrastructure failure and becomes
// a 500 with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if de, ok := err.(*usecase.DomainError); ok {
		message = de.Message
		switch de.Code {
		case usecase.CodeForbidden:
			status = http.StatusForbidden
		case usecase.CodeLeadNotFound, usecase.CodeUserNotFound:
			status = http.StatusNotFound
		default:
			// Validation failures, conflicts and credential errors all
			// surface as 400; NOT_REGISTERED and INVALID_CREDENTIALS
			// deliberately share a status code.
			status = http.StatusBadRequest
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response{Success: false, Message: message})
}
