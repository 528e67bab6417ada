package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

type HoursServiceInterface interface {
	Create(ctx context.Context, req domain.CreateHoursRequest) (*domain.OperatingHour, error)
	ListForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error)
	Update(ctx context.Context, id int64, req domain.UpdateHoursRequest) (*domain.OperatingHour, error)
	Delete(ctx context.Context, id int64) error
}

type HoursService struct {
	hours  repository.HoursRepositoryInterface
	trucks repository.TruckRepositoryInterface
	lg     zerolog.Logger
}

func NewHoursService(hours repository.HoursRepositoryInterface, trucks repository.TruckRepositoryInterface, lg zerolog.Logger) *HoursService {
	return &HoursService{hours: hours, trucks: trucks, lg: lg}
}

func (s *HoursService) Create(ctx context.Context, req domain.CreateHoursRequest) (*domain.OperatingHour, error) {
	if req.FoodTruckID <= 0 {
		return nil, domain.NewValidationError("food_truck_id is required")
	}
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, domain.NewValidationError("day_of_week must be between 0 and 6")
	}
	if req.OpenTime == "" || req.CloseTime == "" {
		return nil, domain.NewValidationError("open_time and close_time are required")
	}
	if err := validateHoursRange(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	exists, err := s.trucks.Exists(ctx, req.FoodTruckID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTruckNotFound
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	h, err := s.hours.Create(ctx, domain.OperatingHour{
		TruckID:   req.FoodTruckID,
		DayOfWeek: *req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsActive:  active,
	})
	if err != nil {
		return nil, err
	}
	s.lg.Info().Int64("hours_id", h.ID).Int64("truck_id", h.TruckID).Int("day", h.DayOfWeek).Msg("operating_hours_created")
	return h, nil
}

func validateHoursRange(open, closeAt string) error {
	o, err := parseClock(open)
	if err != nil {
		return domain.NewValidationError("invalid open_time: %v", err)
	}
	c, err := parseClock(closeAt)
	if err != nil {
		return domain.NewValidationError("invalid close_time: %v", err)
	}
	if o >= c {
		return domain.NewValidationError("open_time must be before close_time")
	}
	return nil
}

func (s *HoursService) ListForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error) {
	if truckID <= 0 {
		return nil, domain.NewValidationError("food_truck_id is required")
	}
	return s.hours.ListForTruck(ctx, truckID)
}

func (s *HoursService) Update(ctx context.Context, id int64, req domain.UpdateHoursRequest) (*domain.OperatingHour, error) {
	if req.OpenTime != nil || req.CloseTime != nil {
		current, err := s.hours.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		open, closeAt := current.OpenTime, current.CloseTime
		if req.OpenTime != nil {
			open = *req.OpenTime
		}
		if req.CloseTime != nil {
			closeAt = *req.CloseTime
		}
		if err := validateHoursRange(open, closeAt); err != nil {
			return nil, err
		}
	}

	return s.hours.Update(ctx, id, repository.HoursPatch{
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsActive:  req.IsActive,
	})
}

func (s *HoursService) Delete(ctx context.Context, id int64) error {
	return s.hours.Delete(ctx, id)
}
