package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"subtrack/internal/database"
	"subtrack/internal/database/repository"
	"subtrack/internal/domain"
	"subtrack/internal/money"
)

func openTestDB(t *testing.T) *repository.SubscriptionRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return repository.NewSubscriptionRepo(db)
}

func newSub(name string) domain.Subscription {
	return domain.Subscription{
		ID:           uuid.NewString(),
		Name:         name,
		PriceCents:   1599,
		Currency:     money.EUR,
		Cycle:        money.Monthly,
		Category:     domain.CategoryEntertainment,
		FirstPayment: time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
		Color:        "#FF6B6B",
	}
}

func TestInsertGetRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	want := newSub("Netflix")
	require.NoError(t, repo.Insert(ctx, want))

	got, err := repo.Get(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, "Netflix", got.Name)
	require.Equal(t, int64(1599), got.PriceCents)
	require.Equal(t, money.EUR, got.Currency)
	require.Equal(t, money.Monthly, got.Cycle)
	require.Equal(t, domain.CategoryEntertainment, got.Category)
	require.Equal(t, 15, got.FirstPayment.Day())
	require.Equal(t, time.October, got.FirstPayment.Month())
	require.Equal(t, "#FF6B6B", got.Color)
	require.False(t, got.CreatedAt.IsZero())
}

func TestUpdatePreservesID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	s := newSub("Spotify")
	require.NoError(t, repo.Insert(ctx, s))

	s.Name = "Spotify Duo"
	s.PriceCents = 1499
	s.Cycle = money.Yearly
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.ID, got.ID)
	require.Equal(t, "Spotify Duo", got.Name)
	require.Equal(t, int64(1499), got.PriceCents)
	require.Equal(t, money.Yearly, got.Cycle)
}

func TestUpdateMissingRowReturnsNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	err := repo.Update(ctx, newSub("ghost"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	s := newSub("Figma")
	require.NoError(t, repo.Insert(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.Get(ctx, s.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, s.ID), domain.ErrNotFound)
}

func TestListAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Insert(ctx, newSub(name)))
	}

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
