package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

type OrderHandler struct {
	orders service.OrderServiceInterface
	lg     zerolog.Logger
}

func NewOrderHandler(orders service.OrderServiceInterface, lg zerolog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, lg: lg}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	order, err := h.orders.Place(r.Context(), req)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
	if err != nil {
		respondError(w, h.lg, domain.NewValidationError("customer_id is required"))
		return
	}
	orders, err := h.orders.ListForCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	var req domain.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	order, err := h.orders.UpdateStatus(r.Context(), id, req)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, order)
}
