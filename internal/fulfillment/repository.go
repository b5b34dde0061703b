package fulfillment

import (
	"context"
	"database/sql"

	"majestic-art-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	SaveOrder(ctx context.Context, o Order) (bool, error)
	GetOrderBySessionID(ctx context.Context, sessionID string) (*Order, error)
	MarkLanded(ctx context.Context, sessionID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// SaveOrder inserts the order, keyed by session id. Webhooks are delivered
// at least once, so a duplicate insert is silently skipped; the bool
// reports whether this call actually wrote the row.
func (r *repository) SaveOrder(ctx context.Context, o Order) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, session_id, customer_email, amount_cents, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO NOTHING
	`, o.ID, o.SessionID, o.CustomerEmail, o.AmountCents, o.Currency, o.Status)
	if err != nil {
		logger.L().Error("Failed to save order",
			zap.String("session_id", o.SessionID),
			zap.Error(err),
		)
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *repository) GetOrderBySessionID(ctx context.Context, sessionID string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, session_id, customer_email, amount_cents, currency, status, created_at
		FROM orders
		WHERE session_id = $1
	`, sessionID).Scan(&o.ID, &o.SessionID, &o.CustomerEmail, &o.AmountCents, &o.Currency, &o.Status, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) MarkLanded(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders SET landed_at = NOW() WHERE session_id = $1
	`, sessionID)
	return err
}
