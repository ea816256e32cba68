// Package repository persists subscription records in sqlite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"subtrack/internal/domain"
	"subtrack/internal/money"
)

const dateLayout = "2006-01-02"

// SubscriptionRepo handles subscription rows.
type SubscriptionRepo struct {
	db *sql.DB
}

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

func (r *SubscriptionRepo) Insert(ctx context.Context, s domain.Subscription) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO subscriptions(
	 id, name, price_cents, currency, cycle, category, first_payment, color, logo_url,
	 created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		s.ID, s.Name, s.PriceCents, string(s.Currency), string(s.Cycle), string(s.Category),
		s.FirstPayment.Format(dateLayout), s.Color, s.LogoURL)
	return err
}

func (r *SubscriptionRepo) Update(ctx context.Context, s domain.Subscription) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE subscriptions
	SET name = ?, price_cents = ?, currency = ?, cycle = ?, category = ?,
	 first_payment = ?, color = ?, logo_url = ?, updated_at = CURRENT_TIMESTAMP
	WHERE id = ?`,
		s.Name, s.PriceCents, string(s.Currency), string(s.Cycle), string(s.Category),
		s.FirstPayment.Format(dateLayout), s.Color, s.LogoURL, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepo) Get(ctx context.Context, id string) (domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	s, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Subscription{}, domain.ErrNotFound
	}
	return s, err
}

// List returns all subscriptions in insertion order.
func (r *SubscriptionRepo) List(ctx context.Context) ([]domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubscriptionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&n)
	return n, err
}

const selectColumns = `SELECT id, name, price_cents, currency, cycle, category, first_payment,
 color, logo_url, created_at, updated_at FROM subscriptions`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (domain.Subscription, error) {
	var (
		s                        domain.Subscription
		currency, cycle, cat, fp string
	)
	err := row.Scan(&s.ID, &s.Name, &s.PriceCents, &currency, &cycle, &cat, &fp,
		&s.Color, &s.LogoURL, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Subscription{}, err
	}
	if s.Currency, err = money.ParseCurrency(currency); err != nil {
		return domain.Subscription{}, err
	}
	if s.Cycle, err = money.ParseCycle(cycle); err != nil {
		return domain.Subscription{}, err
	}
	if s.Category, err = domain.ParseCategory(cat); err != nil {
		return domain.Subscription{}, err
	}
	if s.FirstPayment, err = time.Parse(dateLayout, fp); err != nil {
		return domain.Subscription{}, &domain.InvalidDateError{Value: fp}
	}
	return s, nil
}
