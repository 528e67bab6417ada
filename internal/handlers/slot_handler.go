package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

type SlotHandler struct {
	slots     service.SlotServiceInterface
	capacity  service.CapacityServiceInterface
	generator service.GeneratorInterface
	lg        zerolog.Logger
}

func NewSlotHandler(slots service.SlotServiceInterface, capacity service.CapacityServiceInterface, generator service.GeneratorInterface, lg zerolog.Logger) *SlotHandler {
	return &SlotHandler{slots: slots, capacity: capacity, generator: generator, lg: lg}
}

func (h *SlotHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f repository.SlotFilter
	if v := q.Get("food_truck_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, h.lg, domain.NewValidationError("invalid food_truck_id"))
			return
		}
		f.TruckID = &id
	}
	if v := q.Get("slot_date"); v != "" {
		f.Date = &v
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, h.lg, domain.NewValidationError("invalid active flag"))
			return
		}
		f.Active = &active
	}

	slots, err := h.slots.List(r.Context(), f)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, slots)
}

func (h *SlotHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	truckID, err := strconv.ParseInt(q.Get("food_truck_id"), 10, 64)
	if err != nil {
		respondError(w, h.lg, domain.NewValidationError("food_truck_id is required"))
		return
	}
	var date *string
	if v := q.Get("slot_date"); v != "" {
		date = &v
	}

	slots, err := h.capacity.ListAvailable(r.Context(), truckID, date)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, slots)
}

func (h *SlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	slot, err := h.slots.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusCreated, slot)
}

func (h *SlotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	slot, err := h.slots.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, slot)
}

func (h *SlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	var req domain.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	slot, err := h.slots.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, slot)
}

func (h *SlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	if err := h.slots.Delete(r.Context(), id); err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"deleted": true})
}

// IncrementOrders is the standalone capacity reservation endpoint.
func (h *SlotHandler) IncrementOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	slot, err := h.capacity.Reserve(r.Context(), id)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, slot)
}

func (h *SlotHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	created, err := h.generator.Generate(r.Context(), req.FoodTruckID, req.Days)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	resp := domain.GenerateSlotsResponse{SlotsCreated: created}
	if created == 0 {
		resp.Message = "no new slots created; truck may have no active operating hours"
	}
	respondData(w, http.StatusOK, resp)
}
