package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

func newTestHoursService() (*HoursService, *mockHoursRepo) {
	hours := &mockHoursRepo{}
	trucks := &mockTruckRepo{ids: map[int64]bool{1: true}}
	return NewHoursService(hours, trucks, zerolog.Nop()), hours
}

func intPtr(v int) *int { return &v }

func TestHoursCreate(t *testing.T) {
	svc, _ := newTestHoursService()

	h, err := svc.Create(context.Background(), domain.CreateHoursRequest{
		FoodTruckID: 1, DayOfWeek: intPtr(1), OpenTime: "09:00", CloseTime: "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, h.DayOfWeek)
	assert.True(t, h.IsActive)
}

func TestHoursCreate_SundayIsZero(t *testing.T) {
	svc, _ := newTestHoursService()

	h, err := svc.Create(context.Background(), domain.CreateHoursRequest{
		FoodTruckID: 1, DayOfWeek: intPtr(0), OpenTime: "10:00", CloseTime: "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, h.DayOfWeek)
}

func TestHoursCreate_Rejections(t *testing.T) {
	svc, _ := newTestHoursService()

	tests := []struct {
		name string
		req  domain.CreateHoursRequest
	}{
		{"missing day", domain.CreateHoursRequest{FoodTruckID: 1, OpenTime: "09:00", CloseTime: "17:00"}},
		{"day too large", domain.CreateHoursRequest{FoodTruckID: 1, DayOfWeek: intPtr(7), OpenTime: "09:00", CloseTime: "17:00"}},
		{"negative day", domain.CreateHoursRequest{FoodTruckID: 1, DayOfWeek: intPtr(-1), OpenTime: "09:00", CloseTime: "17:00"}},
		{"missing times", domain.CreateHoursRequest{FoodTruckID: 1, DayOfWeek: intPtr(1)}},
		{"open after close", domain.CreateHoursRequest{FoodTruckID: 1, DayOfWeek: intPtr(1), OpenTime: "17:00", CloseTime: "09:00"}},
		{"open equals close", domain.CreateHoursRequest{FoodTruckID: 1, DayOfWeek: intPtr(1), OpenTime: "09:00", CloseTime: "09:00"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
		})
	}
}

func TestHoursUpdate_ValidatesCombinedRange(t *testing.T) {
	svc, hours := newTestHoursService()
	h, err := hours.Create(context.Background(), domain.OperatingHour{
		ID: 1, TruckID: 1, DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00", IsActive: true,
	})
	require.NoError(t, err)

	// moving open past the stored close must fail
	lateOpen := "18:00"
	_, err = svc.Update(context.Background(), h.ID, domain.UpdateHoursRequest{OpenTime: &lateOpen})
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	closeAt := "20:00"
	updated, err := svc.Update(context.Background(), h.ID, domain.UpdateHoursRequest{OpenTime: &lateOpen, CloseTime: &closeAt})
	require.NoError(t, err)
	assert.Equal(t, "18:00", updated.OpenTime)
	assert.Equal(t, "20:00", updated.CloseTime)
}

func TestHoursDelete_NotFound(t *testing.T) {
	svc, _ := newTestHoursService()
	assert.ErrorIs(t, svc.Delete(context.Background(), 9999), domain.ErrHoursNotFound)
}
