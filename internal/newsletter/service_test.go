package newsletter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, email string) (*Subscriber, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*Subscriber), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMailer struct {
	mock.Mock
	sent chan string
}

func (m *MockMailer) SendWelcome(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	if m.sent != nil {
		m.sent <- email
	}
	return args.Error(0)
}

func (m *MockMailer) SendCommissionConfirmation(ctx context.Context, email, name, tier string) error {
	args := m.Called(ctx, email, name, tier)
	return args.Error(0)
}

func TestSubscribe(t *testing.T) {
	t.Run("Success_Sends_Welcome", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &MockMailer{sent: make(chan string, 1)}
		svc := NewService(repo, mailer)

		repo.On("Insert", mock.Anything, "new@example.com").
			Return(&Subscriber{ID: "sub-1", Email: "new@example.com"}, nil)
		mailer.On("SendWelcome", mock.Anything, "new@example.com").Return(nil)

		sub, err := svc.Subscribe(context.Background(), "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, "sub-1", sub.ID)

		select {
		case got := <-mailer.sent:
			assert.Equal(t, "new@example.com", got)
		case <-time.After(time.Second):
			t.Fatal("welcome email was never triggered")
		}
	})

	t.Run("Invalid_Email", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := new(MockMailer)
		svc := NewService(repo, mailer)

		for _, email := range []string{"", "plain", "a@b", "two words@example.com"} {
			sub, err := svc.Subscribe(context.Background(), email)
			assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
			assert.Nil(t, sub)
		}
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything)
	})

	t.Run("Already_Subscribed_Skips_Welcome", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := new(MockMailer)
		svc := NewService(repo, mailer)

		repo.On("Insert", mock.Anything, "dupe@example.com").
			Return(nil, ErrAlreadySubscribed)

		sub, err := svc.Subscribe(context.Background(), "dupe@example.com")
		assert.ErrorIs(t, err, ErrAlreadySubscribed)
		assert.Nil(t, sub)
		mailer.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything)
	})

	t.Run("Mailer_Failure_Does_Not_Fail_Subscription", func(t *testing.T) {
		repo := new(MockRepository)
		mailer := &MockMailer{sent: make(chan string, 1)}
		svc := NewService(repo, mailer)

		repo.On("Insert", mock.Anything, "new@example.com").
			Return(&Subscriber{ID: "sub-2", Email: "new@example.com"}, nil)
		mailer.On("SendWelcome", mock.Anything, "new@example.com").
			Return(errors.New("mail provider down"))

		sub, err := svc.Subscribe(context.Background(), "new@example.com")
		require.NoError(t, err)
		assert.NotNil(t, sub)

		select {
		case <-mailer.sent:
		case <-time.After(time.Second):
			t.Fatal("welcome email was never attempted")
		}
	})
}
