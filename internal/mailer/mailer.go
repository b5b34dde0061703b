package mailer

import "context"

type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
	SendCommissionConfirmation(ctx context.Context, email, name, tier string) error
}
