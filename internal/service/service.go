package service

import (
	"github.com/rs/zerolog"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/config"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

type Service struct {
	Slots     SlotServiceInterface
	Hours     HoursServiceInterface
	Capacity  CapacityServiceInterface
	Generator GeneratorInterface
	Orders    OrderServiceInterface
	Carts     CartServiceInterface
}

func New(repo *repository.Repository, carts repository.CartRepositoryInterface, pub EventPublisher, cfg config.SchedulingConfig, lg zerolog.Logger) *Service {
	return &Service{
		Slots:     NewSlotService(repo.Slots, repo.Trucks, SlotDefaults{Capacity: cfg.DefaultCapacity}, lg),
		Hours:     NewHoursService(repo.Hours, repo.Trucks, lg),
		Capacity:  NewCapacityService(repo.Slots, lg),
		Generator: NewSlotGenerator(repo.Slots, repo.Hours, repo.Trucks, cfg, lg),
		Orders:    NewOrderService(repo.Orders, repo.Menu, repo.Trucks, carts, pub, lg),
		Carts:     NewCartService(carts, repo.Menu),
	}
}
