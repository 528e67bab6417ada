package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/service"
)

// Function-backed stubs so each test wires only the calls it expects.

type stubSlotService struct {
	createFn func(context.Context, domain.CreateSlotRequest) (*domain.TimeSlot, error)
	listFn   func(context.Context, repository.SlotFilter) ([]domain.TimeSlot, error)
	getFn    func(context.Context, int64) (*domain.TimeSlot, error)
	updateFn func(context.Context, int64, domain.UpdateSlotRequest) (*domain.TimeSlot, error)
	deleteFn func(context.Context, int64) error
}

func (s *stubSlotService) Create(ctx context.Context, req domain.CreateSlotRequest) (*domain.TimeSlot, error) {
	return s.createFn(ctx, req)
}

func (s *stubSlotService) List(ctx context.Context, f repository.SlotFilter) ([]domain.TimeSlot, error) {
	return s.listFn(ctx, f)
}

func (s *stubSlotService) Get(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return s.getFn(ctx, id)
}

func (s *stubSlotService) Update(ctx context.Context, id int64, req domain.UpdateSlotRequest) (*domain.TimeSlot, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubSlotService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubCapacityService struct {
	reserveFn       func(context.Context, int64) (*domain.TimeSlot, error)
	releaseFn       func(context.Context, int64) error
	listAvailableFn func(context.Context, int64, *string) ([]domain.TimeSlot, error)
}

func (s *stubCapacityService) Reserve(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	return s.reserveFn(ctx, slotID)
}

func (s *stubCapacityService) Release(ctx context.Context, slotID int64) error {
	return s.releaseFn(ctx, slotID)
}

func (s *stubCapacityService) ListAvailable(ctx context.Context, truckID int64, date *string) ([]domain.TimeSlot, error) {
	return s.listAvailableFn(ctx, truckID, date)
}

type stubGenerator struct {
	generateFn func(context.Context, int64, int) (int, error)
}

func (s *stubGenerator) Generate(ctx context.Context, truckID int64, days int) (int, error) {
	return s.generateFn(ctx, truckID, days)
}

type stubHoursService struct {
	createFn func(context.Context, domain.CreateHoursRequest) (*domain.OperatingHour, error)
	listFn   func(context.Context, int64) ([]domain.OperatingHour, error)
	updateFn func(context.Context, int64, domain.UpdateHoursRequest) (*domain.OperatingHour, error)
	deleteFn func(context.Context, int64) error
}

func (s *stubHoursService) Create(ctx context.Context, req domain.CreateHoursRequest) (*domain.OperatingHour, error) {
	return s.createFn(ctx, req)
}

func (s *stubHoursService) ListForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error) {
	return s.listFn(ctx, truckID)
}

func (s *stubHoursService) Update(ctx context.Context, id int64, req domain.UpdateHoursRequest) (*domain.OperatingHour, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubHoursService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubOrderService struct {
	placeFn        func(context.Context, domain.CreateOrderRequest) (*domain.Order, error)
	updateStatusFn func(context.Context, int64, domain.UpdateOrderStatusRequest) (*domain.Order, error)
	getFn          func(context.Context, int64) (*domain.Order, error)
	listFn         func(context.Context, int64) ([]domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	return s.placeFn(ctx, req)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id int64, req domain.UpdateOrderStatusRequest) (*domain.Order, error) {
	return s.updateStatusFn(ctx, id, req)
}

func (s *stubOrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.listFn(ctx, customerID)
}

type stubCartService struct {
	getFn     func(context.Context, int64) (*domain.Cart, error)
	setItemFn func(context.Context, int64, domain.UpsertCartItemRequest) error
	clearFn   func(context.Context, int64) error
}

func (s *stubCartService) Get(ctx context.Context, customerID int64) (*domain.Cart, error) {
	return s.getFn(ctx, customerID)
}

func (s *stubCartService) SetItem(ctx context.Context, customerID int64, req domain.UpsertCartItemRequest) error {
	return s.setItemFn(ctx, customerID, req)
}

func (s *stubCartService) Clear(ctx context.Context, customerID int64) error {
	return s.clearFn(ctx, customerID)
}

type testServices struct {
	slots    *stubSlotService
	capacity *stubCapacityService
	gen      *stubGenerator
	hours    *stubHoursService
	orders   *stubOrderService
	carts    *stubCartService
}

func newTestRouter(t *testing.T) (*testServices, http.Handler) {
	t.Helper()
	s := &testServices{
		slots:    &stubSlotService{},
		capacity: &stubCapacityService{},
		gen:      &stubGenerator{},
		hours:    &stubHoursService{},
		orders:   &stubOrderService{},
		carts:    &stubCartService{},
	}
	svc := &service.Service{
		Slots:     s.slots,
		Hours:     s.hours,
		Capacity:  s.capacity,
		Generator: s.gen,
		Orders:    s.orders,
		Carts:     s.carts,
	}
	return s, Router(New(svc, zerolog.Nop()), zerolog.Nop())
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}
