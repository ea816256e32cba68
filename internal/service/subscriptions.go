// Package service orchestrates the subscription lifecycle: validation,
// id assignment and the free-tier gate in front of the store.
package service

import (
	"context"

	"github.com/google/uuid"

	"subtrack/internal/database/repository"
	"subtrack/internal/domain"
)

// DefaultFreeLimit is the number of subscriptions available without
// premium entitlement.
const DefaultFreeLimit = 5

// SubscriptionService fronts the repository with validation and the
// free-tier policy check.
type SubscriptionService struct {
	Repo      *repository.SubscriptionRepo
	FreeLimit int
	Premium   bool
}

func (s *SubscriptionService) limit() int {
	if s.FreeLimit > 0 {
		return s.FreeLimit
	}
	return DefaultFreeLimit
}

// Create validates the record, applies the free-tier gate and stores it
// under a fresh id. The gate fires before anything is written, so a
// rejected create mutates nothing.
func (s *SubscriptionService) Create(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	sub.ID = uuid.NewString()
	if err := sub.Validate(); err != nil {
		return domain.Subscription{}, err
	}
	if !s.Premium {
		n, err := s.Repo.Count(ctx)
		if err != nil {
			return domain.Subscription{}, err
		}
		if n >= s.limit() {
			return domain.Subscription{}, domain.ErrLimitReached
		}
	}
	if err := s.Repo.Insert(ctx, sub); err != nil {
		return domain.Subscription{}, err
	}
	return sub, nil
}

// Update validates and stores changes to an existing record. The id is
// never reassigned.
func (s *SubscriptionService) Update(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	if err := sub.Validate(); err != nil {
		return domain.Subscription{}, err
	}
	if err := s.Repo.Update(ctx, sub); err != nil {
		return domain.Subscription{}, err
	}
	return sub, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *SubscriptionService) List(ctx context.Context) ([]domain.Subscription, error) {
	return s.Repo.List(ctx)
}
