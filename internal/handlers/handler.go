package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

type Handler struct {
	Slots  *SlotHandler
	Hours  *HoursHandler
	Orders *OrderHandler
	Carts  *CartHandler
}

func New(svc *service.Service, lg zerolog.Logger) *Handler {
	return &Handler{
		Slots:  NewSlotHandler(svc.Slots, svc.Capacity, svc.Generator, lg),
		Hours:  NewHoursHandler(svc.Hours, lg),
		Orders: NewOrderHandler(svc.Orders, lg),
		Carts:  NewCartHandler(svc.Carts, lg),
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid %s", key)
	}
	return id, nil
}
