package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

type CapacityServiceInterface interface {
	Reserve(ctx context.Context, slotID int64) (*domain.TimeSlot, error)
	Release(ctx context.Context, slotID int64) error
	ListAvailable(ctx context.Context, truckID int64, date *string) ([]domain.TimeSlot, error)
}

// CapacityService is the gatekeeper of the current_orders/max_orders
// invariant. Reservation is one conditional database write; there is no
// in-process counter to lose on restart.
type CapacityService struct {
	slots repository.SlotRepositoryInterface
	lg    zerolog.Logger
}

func NewCapacityService(slots repository.SlotRepositoryInterface, lg zerolog.Logger) *CapacityService {
	return &CapacityService{slots: slots, lg: lg}
}

func (s *CapacityService) Reserve(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	if slotID <= 0 {
		return nil, domain.NewValidationError("time_slot_id is required")
	}
	slot, err := s.slots.Increment(ctx, slotID)
	if err != nil {
		return nil, err
	}
	s.lg.Debug().
		Int64("slot_id", slot.ID).
		Int("current_orders", slot.CurrentOrders).
		Int("max_orders", slot.MaxOrders).
		Msg("capacity_reserved")
	return slot, nil
}

func (s *CapacityService) Release(ctx context.Context, slotID int64) error {
	if slotID <= 0 {
		return domain.NewValidationError("time_slot_id is required")
	}
	if err := s.slots.Decrement(ctx, slotID); err != nil {
		return err
	}
	s.lg.Debug().Int64("slot_id", slotID).Msg("capacity_released")
	return nil
}

func (s *CapacityService) ListAvailable(ctx context.Context, truckID int64, date *string) ([]domain.TimeSlot, error) {
	if truckID <= 0 {
		return nil, domain.NewValidationError("food_truck_id is required")
	}
	if date != nil {
		if err := validateDate(*date); err != nil {
			return nil, err
		}
	}
	return s.slots.ListAvailable(ctx, truckID, date)
}
