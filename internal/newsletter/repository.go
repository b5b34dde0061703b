package newsletter

import (
	"context"
	"database/sql"
	"errors"

	"majestic-art-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, email string) (*Subscriber, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, email string) (*Subscriber, error) {
	sub := Subscriber{ID: uuid.New().String(), Email: email}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO newsletter_subscribers (id, email)
		VALUES ($1, $2)
		RETURNING created_at
	`, sub.ID, sub.Email).Scan(&sub.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAlreadySubscribed
		}
		logger.L().Error("Failed to insert subscriber",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	return &sub, nil
}
