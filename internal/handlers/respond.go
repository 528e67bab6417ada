package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, envelope{Success: true, Data: data})
}

// respondError maps domain errors to HTTP statuses. Anything outside the
// taxonomy is logged and returned as a generic internal error; store
// error text never reaches the client.
func respondError(w http.ResponseWriter, lg zerolog.Logger, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		lg.Error().Err(err).Msg("internal_error")
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Error:   &errorBody{Code: string(domain.CodeInternal), Message: "internal server error"},
		})
		return
	}
	writeJSON(w, statusFor(de.Code), envelope{
		Success: false,
		Error:   &errorBody{Code: string(de.Code), Message: de.Message},
	})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeCapacityExceeded:
		return http.StatusConflict
	case domain.CodeValidation, domain.CodeSlotInactive, domain.CodeInvalidTransition, domain.CodeForeignKey:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
