package fulfillment

import (
	"context"

	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Fulfill(ctx context.Context, event payment.Event) error
	NotifyLanding(sessionID string)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Fulfill persists a paid checkout session as an order. Unpaid sessions
// are acknowledged without writing anything, and redelivered events for a
// session already recorded are no-ops.
func (s *service) Fulfill(ctx context.Context, event payment.Event) error {
	log := logger.FromCtx(ctx).With(
		zap.String("session_id", event.SessionID),
		zap.String("payment_status", event.PaymentStatus),
	)

	if event.PaymentStatus != payment.PaymentStatusPaid {
		log.Info("Skipping fulfillment for unpaid session")
		return nil
	}

	inserted, err := s.repo.SaveOrder(ctx, Order{
		ID:            uuid.New().String(),
		SessionID:     event.SessionID,
		CustomerEmail: event.CustomerEmail,
		AmountCents:   event.AmountTotal,
		Currency:      event.Currency,
		Status:        OrderStatusPaid,
	})
	if err != nil {
		return err
	}

	if !inserted {
		log.Info("Order already recorded, skipping duplicate webhook")
		return nil
	}

	log.Info("Order recorded", zap.Int64("amount_cents", event.AmountTotal))
	return nil
}

// NotifyLanding marks the order after the buyer lands on the success page.
// Best effort: the webhook is the authoritative fulfillment path, so a
// failure here is logged and never surfaced to the buyer.
func (s *service) NotifyLanding(sessionID string) {
	go func() {
		if err := s.repo.MarkLanded(context.Background(), sessionID); err != nil {
			logger.L().Warn("Failed to mark order landing",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}()
}
