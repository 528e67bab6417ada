package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

// mockSlotRepo implements repository.SlotRepositoryInterface in memory.
// Increment mirrors the production conditional update under a mutex so
// concurrency tests exercise the same one-winner semantics.
type mockSlotRepo struct {
	mu     sync.Mutex
	nextID int64
	slots  map[int64]*domain.TimeSlot
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{nextID: 1, slots: make(map[int64]*domain.TimeSlot)}
}

func (m *mockSlotRepo) add(s domain.TimeSlot) *domain.TimeSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextID
	m.nextID++
	m.slots[s.ID] = &s
	return &s
}

func slotKey(s domain.TimeSlot) string {
	return fmt.Sprintf("%d|%s|%s", s.TruckID, s.SlotDate, s.StartTime)
}

func (m *mockSlotRepo) Create(_ context.Context, s domain.TimeSlot) (*domain.TimeSlot, error) {
	return m.add(s), nil
}

func (m *mockSlotRepo) BulkInsert(_ context.Context, slots []domain.TimeSlot) (int, error) {
	m.mu.Lock()
	existing := make(map[string]bool, len(m.slots))
	for _, s := range m.slots {
		existing[slotKey(*s)] = true
	}
	m.mu.Unlock()

	created := 0
	for _, s := range slots {
		if existing[slotKey(s)] {
			continue
		}
		existing[slotKey(s)] = true
		m.add(s)
		created++
	}
	return created, nil
}

func (m *mockSlotRepo) List(_ context.Context, f repository.SlotFilter) ([]domain.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.TimeSlot
	for _, s := range m.slots {
		if f.TruckID != nil && s.TruckID != *f.TruckID {
			continue
		}
		if f.Date != nil && s.SlotDate != *f.Date {
			continue
		}
		if f.Active != nil && s.IsActive != *f.Active {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSlotRepo) ListAvailable(_ context.Context, truckID int64, date *string) ([]domain.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.TimeSlot
	for _, s := range m.slots {
		if s.TruckID != truckID || !s.IsActive || s.IsFull() {
			continue
		}
		if date != nil && s.SlotDate != *date {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSlotRepo) Get(_ context.Context, id int64) (*domain.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSlotRepo) Update(_ context.Context, id int64, p repository.SlotPatch) (*domain.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	if p.SlotDate != nil {
		s.SlotDate = *p.SlotDate
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.EndTime = *p.EndTime
	}
	if p.MaxOrders != nil {
		s.MaxOrders = *p.MaxOrders
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	cp := *s
	return &cp, nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slots[id]; !ok {
		return domain.ErrSlotNotFound
	}
	delete(m.slots, id)
	return nil
}

func (m *mockSlotRepo) Increment(_ context.Context, id int64) (*domain.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	if !s.IsActive {
		return nil, domain.ErrSlotInactive
	}
	if s.CurrentOrders >= s.MaxOrders {
		return nil, domain.ErrCapacityExceeded
	}
	s.CurrentOrders++
	cp := *s
	return &cp, nil
}

func (m *mockSlotRepo) Decrement(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return domain.ErrSlotNotFound
	}
	if s.CurrentOrders > 0 {
		s.CurrentOrders--
	}
	return nil
}

type mockHoursRepo struct {
	hours []domain.OperatingHour
	err   error
}

func (m *mockHoursRepo) Create(_ context.Context, h domain.OperatingHour) (*domain.OperatingHour, error) {
	m.hours = append(m.hours, h)
	return &h, nil
}

func (m *mockHoursRepo) Get(_ context.Context, id int64) (*domain.OperatingHour, error) {
	for _, h := range m.hours {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, domain.ErrHoursNotFound
}

func (m *mockHoursRepo) ListForTruck(_ context.Context, truckID int64) ([]domain.OperatingHour, error) {
	return m.listFor(truckID, false)
}

func (m *mockHoursRepo) ListActiveForTruck(_ context.Context, truckID int64) ([]domain.OperatingHour, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listFor(truckID, true)
}

func (m *mockHoursRepo) listFor(truckID int64, activeOnly bool) ([]domain.OperatingHour, error) {
	var out []domain.OperatingHour
	for _, h := range m.hours {
		if h.TruckID != truckID {
			continue
		}
		if activeOnly && !h.IsActive {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (m *mockHoursRepo) Update(_ context.Context, id int64, p repository.HoursPatch) (*domain.OperatingHour, error) {
	for i := range m.hours {
		if m.hours[i].ID == id {
			if p.OpenTime != nil {
				m.hours[i].OpenTime = *p.OpenTime
			}
			if p.CloseTime != nil {
				m.hours[i].CloseTime = *p.CloseTime
			}
			if p.IsActive != nil {
				m.hours[i].IsActive = *p.IsActive
			}
			return &m.hours[i], nil
		}
	}
	return nil, domain.ErrHoursNotFound
}

func (m *mockHoursRepo) Delete(_ context.Context, id int64) error {
	for i := range m.hours {
		if m.hours[i].ID == id {
			m.hours = append(m.hours[:i], m.hours[i+1:]...)
			return nil
		}
	}
	return domain.ErrHoursNotFound
}

type mockTruckRepo struct {
	ids map[int64]bool
}

func (m *mockTruckRepo) Exists(_ context.Context, id int64) (bool, error) {
	return m.ids[id], nil
}

type mockMenuRepo struct {
	items map[int64]domain.MenuItem
}

func (m *mockMenuRepo) Get(_ context.Context, id int64) (*domain.MenuItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, domain.NewValidationError("menu item %d not found", id)
	}
	return &it, nil
}

func (m *mockMenuRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]domain.MenuItem, error) {
	out := make(map[int64]domain.MenuItem)
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}

type mockCartRepo struct {
	mu    sync.Mutex
	carts map[int64]map[int64]int
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[int64]map[int64]int)}
}

func (m *mockCartRepo) Get(_ context.Context, customerID int64) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := &domain.Cart{CustomerID: customerID}
	for itemID, qty := range m.carts[customerID] {
		cart.Items = append(cart.Items, domain.CartItem{MenuItemID: itemID, Quantity: qty})
	}
	return cart, nil
}

func (m *mockCartRepo) SetItem(_ context.Context, customerID, menuItemID int64, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.carts[customerID] == nil {
		m.carts[customerID] = make(map[int64]int)
	}
	if qty <= 0 {
		delete(m.carts[customerID], menuItemID)
		return nil
	}
	m.carts[customerID][menuItemID] = qty
	return nil
}

func (m *mockCartRepo) Clear(_ context.Context, customerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, customerID)
	return nil
}

func (m *mockCartRepo) size(customerID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts[customerID])
}

// mockOrderRepo reserves capacity through the shared slot repo, so a
// failed reservation leaves no order behind, like the real transaction.
type mockOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*domain.Order
	slots  *mockSlotRepo
}

func newMockOrderRepo(slots *mockSlotRepo) *mockOrderRepo {
	return &mockOrderRepo{nextID: 1, orders: make(map[int64]*domain.Order), slots: slots}
}

func (m *mockOrderRepo) PlaceOrderTx(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if _, err := m.slots.Increment(ctx, order.TimeSlotID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.nextID
	m.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	cp := order
	m.orders[order.ID] = &cp
	return &order, nil
}

func (m *mockOrderRepo) UpdateStatusTx(ctx context.Context, id int64, next domain.OrderStatus, reason *string) (*domain.Order, domain.OrderStatus, error) {
	m.mu.Lock()
	o, ok := m.orders[id]
	if !ok {
		m.mu.Unlock()
		return nil, "", domain.ErrOrderNotFound
	}
	old := o.Status
	if !old.CanTransitionTo(next) {
		m.mu.Unlock()
		return nil, "", domain.NewTransitionError(old, next)
	}
	o.Status = next
	if reason != nil {
		o.CancellationReason = reason
	}
	slotID := o.TimeSlotID
	cp := *o
	m.mu.Unlock()

	if next == domain.StatusCancelled {
		if err := m.slots.Decrement(ctx, slotID); err != nil {
			return nil, "", err
		}
	}
	return &cp, old, nil
}

func (m *mockOrderRepo) Get(_ context.Context, id int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) ListForCustomer(_ context.Context, customerID int64) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type mockPublisher struct {
	mu      sync.Mutex
	created []string
	changed []string
}

func (m *mockPublisher) OrderCreated(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, order.OrderNumber)
	return nil
}

func (m *mockPublisher) OrderStatusChanged(_ context.Context, order *domain.Order, _ domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changed = append(m.changed, order.OrderNumber+":"+order.Status.String())
	return nil
}
