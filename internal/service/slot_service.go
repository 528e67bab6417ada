package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

type SlotServiceInterface interface {
	Create(ctx context.Context, req domain.CreateSlotRequest) (*domain.TimeSlot, error)
	List(ctx context.Context, f repository.SlotFilter) ([]domain.TimeSlot, error)
	Get(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, req domain.UpdateSlotRequest) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

type SlotService struct {
	slots  repository.SlotRepositoryInterface
	trucks repository.TruckRepositoryInterface
	cfg    SlotDefaults
	lg     zerolog.Logger
}

type SlotDefaults struct {
	Capacity int
}

func NewSlotService(slots repository.SlotRepositoryInterface, trucks repository.TruckRepositoryInterface, defaults SlotDefaults, lg zerolog.Logger) *SlotService {
	return &SlotService{slots: slots, trucks: trucks, cfg: defaults, lg: lg}
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return domain.NewValidationError("invalid slot_date %q, expected YYYY-MM-DD", s)
	}
	return nil
}

func validateRange(start, end string) error {
	s, err := parseClock(start)
	if err != nil {
		return domain.NewValidationError("invalid start_time: %v", err)
	}
	e, err := parseClock(end)
	if err != nil {
		return domain.NewValidationError("invalid end_time: %v", err)
	}
	if s >= e {
		return domain.NewValidationError("start_time must be before end_time")
	}
	return nil
}

func (s *SlotService) Create(ctx context.Context, req domain.CreateSlotRequest) (*domain.TimeSlot, error) {
	if req.FoodTruckID <= 0 {
		return nil, domain.NewValidationError("food_truck_id is required")
	}
	if req.SlotDate == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, domain.NewValidationError("slot_date, start_time and end_time are required")
	}
	if err := validateDate(req.SlotDate); err != nil {
		return nil, err
	}
	if err := validateRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	maxOrders := s.cfg.Capacity
	if req.MaxOrders != nil {
		if *req.MaxOrders < 1 {
			return nil, domain.NewValidationError("max_orders must be at least 1")
		}
		maxOrders = *req.MaxOrders
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	exists, err := s.trucks.Exists(ctx, req.FoodTruckID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTruckNotFound
	}

	slot, err := s.slots.Create(ctx, domain.TimeSlot{
		TruckID:   req.FoodTruckID,
		SlotDate:  req.SlotDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		MaxOrders: maxOrders,
		IsActive:  active,
	})
	if err != nil {
		return nil, err
	}
	s.lg.Info().Int64("slot_id", slot.ID).Int64("truck_id", slot.TruckID).Msg("slot_created")
	return slot, nil
}

func (s *SlotService) List(ctx context.Context, f repository.SlotFilter) ([]domain.TimeSlot, error) {
	if f.Date != nil {
		if err := validateDate(*f.Date); err != nil {
			return nil, err
		}
	}
	return s.slots.List(ctx, f)
}

func (s *SlotService) Get(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return s.slots.Get(ctx, id)
}

func (s *SlotService) Update(ctx context.Context, id int64, req domain.UpdateSlotRequest) (*domain.TimeSlot, error) {
	if req.SlotDate != nil {
		if err := validateDate(*req.SlotDate); err != nil {
			return nil, err
		}
	}
	if req.MaxOrders != nil && *req.MaxOrders < 1 {
		return nil, domain.NewValidationError("max_orders must be at least 1")
	}
	// when only one bound changes, validate against the stored other bound
	if req.StartTime != nil || req.EndTime != nil {
		current, err := s.slots.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		start, end := current.StartTime, current.EndTime
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}
		if err := validateRange(start, end); err != nil {
			return nil, err
		}
	}

	return s.slots.Update(ctx, id, repository.SlotPatch{
		SlotDate:  req.SlotDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		MaxOrders: req.MaxOrders,
		IsActive:  req.IsActive,
	})
}

func (s *SlotService) Delete(ctx context.Context, id int64) error {
	if err := s.slots.Delete(ctx, id); err != nil {
		return err
	}
	s.lg.Info().Int64("slot_id", id).Msg("slot_deleted")
	return nil
}
