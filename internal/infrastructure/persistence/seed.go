package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// SeedSellers returns the starting seller network
func SeedSellers() []*partner.Seller {
	return []*partner.Seller{
		partner.RestoreSeller("s1", partner.SellerDetails{Name: "Prestige Imports Ltd", Contact: "contact@prestige.com", Reputation: 5, Image: "https://picsum.photos/id/1005/100/100"}),
		partner.RestoreSeller("s2", partner.SellerDetails{Name: "Baron Von Auto", Contact: "baron@luxury.de", Reputation: 4.8, Image: "https://picsum.photos/id/1012/100/100"}),
		partner.RestoreSeller("s3", partner.SellerDetails{Name: "Oceanic Exotics", Contact: "sales@oceanic.com", Reputation: 4.5, Image: "https://picsum.photos/id/1025/100/100"}),
	}
}

// SeedBuyers returns the starting client list
func SeedBuyers() []*partner.Buyer {
	return []*partner.Buyer{
		partner.RestoreBuyer("b1", partner.BuyerDetails{Name: "James Sterling", Contact: "j.sterling@fund.com", Preferences: []string{"Ferrari", "Red"}, Budget: decimal.NewFromInt(500000), Image: "https://picsum.photos/id/100/100/100"}),
		partner.RestoreBuyer("b2", partner.BuyerDetails{Name: "Elena Vossen", Contact: "elena.v@tech.io", Preferences: []string{"Porsche", "Electric"}, Budget: decimal.NewFromInt(250000), Image: "https://picsum.photos/id/200/100/100"}),
		partner.RestoreBuyer("b3", partner.BuyerDetails{Name: "Sheikh Al-Rahman", Contact: "office@dubai.invest", Preferences: []string{"Hypercar", "Gold"}, Budget: decimal.NewFromInt(2000000), Image: "https://picsum.photos/id/300/100/100"}),
	}
}

// SeedCars returns the starting inventory
func SeedCars() []*fleet.Car {
	return []*fleet.Car{
		fleet.RestoreCar("c1", fleet.CarDetails{
			Make: "Ferrari", Model: "SF90 Stradale", Year: 2023, Price: decimal.NewFromInt(650000),
			ImageURL:    "https://picsum.photos/id/111/800/600",
			SellerID:    "s1",
			Description: "A masterpiece of hybrid engineering, delivering 986 horsepower in a sculptured red body.",
		}, fleet.CarStatusAvailable, "", nil),
		fleet.RestoreCar("c2", fleet.CarDetails{
			Make: "Porsche", Model: "911 GT3 RS", Year: 2024, Price: decimal.NewFromInt(320000),
			ImageURL:    "https://picsum.photos/id/133/800/600",
			SellerID:    "s2",
			Description: "Track-focused precision tool. Aerodynamics derived directly from Formula 1.",
		}, fleet.CarStatusSold, "b2", seedDate(2024, time.May, 15)),
		fleet.RestoreCar("c3", fleet.CarDetails{
			Make: "Lamborghini", Model: "Revuelto", Year: 2024, Price: decimal.NewFromInt(890000),
			ImageURL:    "https://picsum.photos/id/20/800/600",
			SellerID:    "s3",
			Description: "The first HPEV (High Performance Electrified Vehicle) hybrid super sports car.",
		}, fleet.CarStatusAvailable, "", nil),
		fleet.RestoreCar("c4", fleet.CarDetails{
			Make: "Rolls-Royce", Model: "Spectre", Year: 2024, Price: decimal.NewFromInt(450000),
			ImageURL:    "https://picsum.photos/id/18/800/600",
			SellerID:    "s1",
			Description: "The world's first ultra-luxury electric super coupé.",
		}, fleet.CarStatusAvailable, "", nil),
		fleet.RestoreCar("c5", fleet.CarDetails{
			Make: "Bugatti", Model: "Chiron", Year: 2022, Price: decimal.NewFromInt(3200000),
			ImageURL:    "https://picsum.photos/id/119/800/600",
			SellerID:    "s2",
			Description: "The fastest, most powerful, and exclusive production super sports car.",
		}, fleet.CarStatusSold, "b3", seedDate(2024, time.February, 10)),
	}
}

func seedDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// Seed loads the starting data set into the repositories
func Seed(ctx context.Context, cars fleet.CarRepository, sellers partner.SellerRepository, buyers partner.BuyerRepository) error {
	for _, s := range SeedSellers() {
		if err := sellers.Add(ctx, s); err != nil {
			return fmt.Errorf("failed to seed seller %s: %w", s.ID, err)
		}
	}
	for _, b := range SeedBuyers() {
		if err := buyers.Add(ctx, b); err != nil {
			return fmt.Errorf("failed to seed buyer %s: %w", b.ID, err)
		}
	}
	for _, c := range SeedCars() {
		if err := cars.Add(ctx, c); err != nil {
			return fmt.Errorf("failed to seed car %s: %w", c.ID, err)
		}
	}
	return nil
}
