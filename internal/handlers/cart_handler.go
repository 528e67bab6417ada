package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

type CartHandler struct {
	carts service.CartServiceInterface
	lg    zerolog.Logger
}

func NewCartHandler(carts service.CartServiceInterface, lg zerolog.Logger) *CartHandler {
	return &CartHandler{carts: carts, lg: lg}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	cart, err := h.carts.Get(r.Context(), customerID)
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, cart)
}

func (h *CartHandler) SetItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	var req domain.UpsertCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.lg, domain.NewValidationError("invalid JSON body"))
		return
	}
	if err := h.carts.SetItem(r.Context(), customerID, req); err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"updated": true})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerID")
	if err != nil {
		respondError(w, h.lg, err)
		return
	}
	if err := h.carts.Clear(r.Context(), customerID); err != nil {
		respondError(w, h.lg, err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{"cleared": true})
}
