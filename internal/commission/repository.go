package commission

import (
	"context"
	"database/sql"

	"majestic-art-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, req Request) (*Commission, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, req Request) (*Commission, error) {
	c := Commission{
		ID:            uuid.New().String(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Tier:          req.Tier,
		PreferredSize: req.PreferredSize,
		Description:   req.Description,
		Timeline:      req.Timeline,
		Budget:        req.Budget,
		Status:        StatusPending,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO commissions (id, customer_name, customer_email, tier, preferred_size, description, timeline, budget, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`, c.ID, c.CustomerName, c.CustomerEmail, c.Tier, c.PreferredSize, c.Description, c.Timeline, c.Budget, c.Status).Scan(&c.CreatedAt)
	if err != nil {
		logger.L().Error("Failed to insert commission request",
			zap.String("email", req.CustomerEmail),
			zap.Error(err),
		)
		return nil, err
	}

	return &c, nil
}
