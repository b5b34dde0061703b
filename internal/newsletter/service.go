package newsletter

import (
	"context"

	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/mailer"
	"majestic-art-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, error)
}

type service struct {
	repo   Repository
	mailer mailer.Mailer
}

func NewService(repo Repository, m mailer.Mailer) Service {
	return &service{repo: repo, mailer: m}
}

// Subscribe records the email and kicks off the welcome email without
// waiting for it: the subscription already succeeded, so a mail failure
// is only logged.
func (s *service) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	sub, err := s.repo.Insert(ctx, email)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendWelcome(context.Background(), email); err != nil {
			logger.L().Warn("Failed to send welcome email",
				zap.String("email", email),
				zap.Error(err),
			)
		}
	}()

	logger.FromCtx(ctx).Info("Newsletter subscription added", zap.String("email", email))
	return sub, nil
}
