package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/config"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

type GeneratorInterface interface {
	Generate(ctx context.Context, truckID int64, days int) (int, error)
}

// SlotGenerator expands a truck's weekly operating-hours template into
// concrete dated time slots over a rolling horizon.
type SlotGenerator struct {
	slots  repository.SlotRepositoryInterface
	hours  repository.HoursRepositoryInterface
	trucks repository.TruckRepositoryInterface
	cfg    config.SchedulingConfig
	lg     zerolog.Logger

	now func() time.Time
}

func NewSlotGenerator(
	slots repository.SlotRepositoryInterface,
	hours repository.HoursRepositoryInterface,
	trucks repository.TruckRepositoryInterface,
	cfg config.SchedulingConfig,
	lg zerolog.Logger,
) *SlotGenerator {
	return &SlotGenerator{
		slots:  slots,
		hours:  hours,
		trucks: trucks,
		cfg:    cfg,
		lg:     lg,
		now:    time.Now,
	}
}

// Generate materializes slots for the next `days` calendar days starting
// today. Passing days <= 0 uses the configured horizon. Re-running is
// idempotent: existing slots are skipped and only new rows are counted.
func (g *SlotGenerator) Generate(ctx context.Context, truckID int64, days int) (int, error) {
	if truckID <= 0 {
		return 0, domain.NewValidationError("food_truck_id is required")
	}
	if days <= 0 {
		days = g.cfg.HorizonDays
	}

	exists, err := g.trucks.Exists(ctx, truckID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrTruckNotFound
	}

	hours, err := g.hours.ListActiveForTruck(ctx, truckID)
	if err != nil {
		return 0, err
	}
	if len(hours) == 0 {
		// a truck with no declared hours offers no slots
		return 0, nil
	}

	byDay := make(map[int][]domain.OperatingHour)
	for _, h := range hours {
		byDay[h.DayOfWeek] = append(byDay[h.DayOfWeek], h)
	}

	var pending []domain.TimeSlot
	today := g.now()
	for offset := 0; offset < days; offset++ {
		date := today.AddDate(0, 0, offset)
		windows, ok := byDay[int(date.Weekday())]
		if !ok {
			continue
		}
		for _, w := range windows {
			emitted, err := g.expandWindow(truckID, date.Format("2006-01-02"), w)
			if err != nil {
				return 0, fmt.Errorf("bad operating hours for truck %d day %d: %w", truckID, w.DayOfWeek, err)
			}
			pending = append(pending, emitted...)
		}
	}

	created, err := g.slots.BulkInsert(ctx, pending)
	if err != nil {
		return created, err
	}
	g.lg.Info().
		Int64("truck_id", truckID).
		Int("days", days).
		Int("candidates", len(pending)).
		Int("created", created).
		Msg("slots_generated")
	return created, nil
}

// expandWindow emits fixed-width sub-intervals inside [open, close). A
// trailing partial interval that would cross closing time is discarded,
// never truncated.
func (g *SlotGenerator) expandWindow(truckID int64, date string, w domain.OperatingHour) ([]domain.TimeSlot, error) {
	open, err := parseClock(w.OpenTime)
	if err != nil {
		return nil, err
	}
	closeAt, err := parseClock(w.CloseTime)
	if err != nil {
		return nil, err
	}
	if open >= closeAt {
		return nil, fmt.Errorf("open %s is not before close %s", w.OpenTime, w.CloseTime)
	}

	width := g.cfg.SlotMinutes
	var out []domain.TimeSlot
	for start := open; start+width <= closeAt; start += width {
		out = append(out, domain.TimeSlot{
			TruckID:   truckID,
			SlotDate:  date,
			StartTime: formatClock(start),
			EndTime:   formatClock(start + width),
			MaxOrders: g.cfg.DefaultCapacity,
			IsActive:  true,
		})
	}
	return out, nil
}
