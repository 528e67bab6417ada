package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

type HoursHandler struct {
	hours service.HoursServiceInterface
	lg    zerolog.Logger
}

func NewHoursHandler(hours service.HoursServiceInterface, lg zerolog.Logger) *HoursHandler {
	return &HoursHandler{hours: hours, lg: lg}
}

func (h *HoursHandler) List(w http.ResponseWriter, r *http.Request) {
	truckID, err := strconv.ParseInt(r.URL.Query().Get("food_truck_id"), 10, 64)
	if err != nil {
		respondError(w, h.lg, domain.NewValidationError("food_truck_id is required"))
		return
	}
	hours, err := h.hours.ListForTruck(r.Context(), truckID)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, hours)
}

func (h *HoursHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	created, err := h.hours.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusCreated, created)
}

func (h *HoursHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	var req domain.UpdateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	updated, err := h.hours.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, updated)
}

func (h *HoursHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	if err := h.hours.Delete(r.Context(), id); err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"deleted": true})
}
