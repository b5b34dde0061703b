package commission

import (
	"context"
	"strings"

	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/mailer"
	"majestic-art-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	ListTiers() []Tier
	Submit(ctx context.Context, req Request) (*Commission, error)
}

type service struct {
	repo   Repository
	mailer mailer.Mailer
}

func NewService(repo Repository, m mailer.Mailer) Service {
	return &service{repo: repo, mailer: m}
}

func (s *service) ListTiers() []Tier {
	return Tiers()
}

// Validate mirrors the intake form rules: name, email, tier and a
// description of the piece are required, everything else is optional.
func Validate(req Request) *ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(req.CustomerName) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		fields["email"] = "Email is required"
	} else if !utils.IsValidEmail(req.CustomerEmail) {
		fields["email"] = "Invalid email address"
	}
	if req.Tier == "" {
		fields["tier"] = "Please select a tier"
	} else if _, ok := TierByID(req.Tier); !ok {
		fields["tier"] = "Unknown commission tier"
	}
	if strings.TrimSpace(req.Description) == "" {
		fields["description"] = "Please describe your vision"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates and records the request, then sends a confirmation
// email without waiting for it: the request already succeeded, so a mail
// failure is only logged.
func (s *service) Submit(ctx context.Context, req Request) (*Commission, error) {
	if verr := Validate(req); verr != nil {
		return nil, verr
	}

	c, err := s.repo.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	tierName := req.Tier
	if tier, ok := TierByID(req.Tier); ok {
		tierName = tier.Name
	}
	go func() {
		if err := s.mailer.SendCommissionConfirmation(context.Background(), req.CustomerEmail, req.CustomerName, tierName); err != nil {
			logger.L().Warn("Failed to send commission confirmation",
				zap.String("email", req.CustomerEmail),
				zap.Error(err),
			)
		}
	}()

	logger.FromCtx(ctx).Info("Commission request received",
		zap.String("commission_id", c.ID),
		zap.String("tier", c.Tier),
	)
	return c, nil
}
