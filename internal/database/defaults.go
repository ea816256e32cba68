package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"subtrack/internal/database/repository"
	"subtrack/internal/domain"
	"subtrack/internal/money"
)

// SeedDefaults inserts a few starter subscriptions into an empty
// database so the first launch is not a blank screen. Idempotent and
// safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewSubscriptionRepo(db)
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	starters := []domain.Subscription{
		{
			Name:         "Netflix",
			PriceCents:   1599,
			Currency:     money.EUR,
			Cycle:        money.Monthly,
			Category:     domain.CategoryEntertainment,
			FirstPayment: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
			Color:        "#FF6B6B",
			LogoURL:      "https://www.google.com/s2/favicons?domain=netflix.com&sz=128",
		},
		{
			Name:         "Spotify",
			PriceCents:   1099,
			Currency:     money.EUR,
			Cycle:        money.Monthly,
			Category:     domain.CategoryEntertainment,
			FirstPayment: time.Date(2023, time.October, 20, 0, 0, 0, 0, time.UTC),
			Color:        "#2ECC71",
			LogoURL:      "https://www.google.com/s2/favicons?domain=spotify.com&sz=128",
		},
		{
			Name:         "Adobe CC",
			PriceCents:   6500,
			Currency:     money.EUR,
			Cycle:        money.Monthly,
			Category:     domain.CategoryWork,
			FirstPayment: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
			Color:        "#9B59B6",
			LogoURL:      "https://www.google.com/s2/favicons?domain=adobe.com&sz=128",
		},
	}
	for _, s := range starters {
		s.ID = uuid.NewString()
		if err := repo.Insert(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
