package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Slots  SlotRepositoryInterface
	Hours  HoursRepositoryInterface
	Orders OrderRepositoryInterface
	Menu   MenuRepositoryInterface
	Trucks TruckRepositoryInterface
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Slots:  NewSlotRepository(pool),
		Hours:  NewHoursRepository(pool),
		Orders: NewOrderRepository(pool),
		Menu:   NewMenuRepository(pool),
		Trucks: NewTruckRepository(pool),
	}
}
