package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"subtrack/internal/database"
	"subtrack/internal/database/repository"
	"subtrack/internal/domain"
	"subtrack/internal/money"
)

func newService(t *testing.T, premium bool) *SubscriptionService {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return &SubscriptionService{Repo: repository.NewSubscriptionRepo(db), Premium: premium}
}

func draft(name string) domain.Subscription {
	return domain.Subscription{
		Name:         name,
		PriceCents:   999,
		Currency:     money.EUR,
		Cycle:        money.Monthly,
		Category:     domain.CategoryUtility,
		FirstPayment: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, false)

	a, err := svc.Create(ctx, draft("a"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, draft("b"))
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestCreateRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, false)

	bad := draft("bad")
	bad.PriceCents = -100
	_, err := svc.Create(ctx, bad)
	require.Error(t, err)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, subs)
}

func TestFreeTierGate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, false)

	for i := 0; i < DefaultFreeLimit; i++ {
		_, err := svc.Create(ctx, draft(fmt.Sprintf("sub-%d", i)))
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, draft("one too many"))
	require.ErrorIs(t, err, domain.ErrLimitReached)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, DefaultFreeLimit)
}

func TestPremiumBypassesGate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, true)

	for i := 0; i < DefaultFreeLimit+2; i++ {
		_, err := svc.Create(ctx, draft(fmt.Sprintf("sub-%d", i)))
		require.NoError(t, err)
	}

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, DefaultFreeLimit+2)
}

func TestUpdateKeepsID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, false)

	created, err := svc.Create(ctx, draft("editable"))
	require.NoError(t, err)

	created.Name = "edited"
	created.Cycle = money.Yearly
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, "edited", subs[0].Name)
	require.Equal(t, money.Yearly, subs[0].Cycle)
}

func TestDeleteFreesASlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t, false)

	var last domain.Subscription
	for i := 0; i < DefaultFreeLimit; i++ {
		var err error
		last, err = svc.Create(ctx, draft(fmt.Sprintf("sub-%d", i)))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, draft("blocked"))
	require.ErrorIs(t, err, domain.ErrLimitReached)

	require.NoError(t, svc.Delete(ctx, last.ID))
	_, err = svc.Create(ctx, draft("fits again"))
	require.NoError(t, err)
}
