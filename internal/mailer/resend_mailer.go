package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"majestic-art-be/internal/logger"

	"go.uber.org/zap"
)

const (
	resendBaseURL = "https://api.resend.com"
	discountCode  = "WELCOME10"
)

type resendMailer struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewResendMailer(apiKey, from string) Mailer {
	if apiKey == "" {
		logger.L().Warn("Resend API key is empty")
	}
	if from == "" {
		from = "Majestic Art <onboarding@resend.dev>"
	}

	return &resendMailer{
		apiKey:  apiKey,
		from:    from,
		baseURL: resendBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- Sending -----------------

func (m *resendMailer) SendWelcome(ctx context.Context, email string) error {
	return m.send(ctx, email, "Welcome to Majestic Art Studio!", welcomeHTML(discountCode))
}

func (m *resendMailer) SendCommissionConfirmation(ctx context.Context, email, name, tier string) error {
	return m.send(ctx, email, "Your commission request has been received", commissionHTML(name, tier))
}

func (m *resendMailer) send(ctx context.Context, to, subject, html string) error {
	log := logger.L().With(zap.String("to", to), zap.String("subject", subject))

	body := map[string]interface{}{
		"from":    m.from,
		"to":      to,
		"subject": subject,
		"html":    html,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal email request", zap.Error(err))
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.baseURL+"/emails", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return err
	}

	req.Header.Add("Authorization", "Bearer "+m.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Error("Resend request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return fmt.Errorf("failed to read resend response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Resend returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return fmt.Errorf("resend error: %s", string(bodyBytes))
	}

	var res struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Resend response", zap.Error(err))
		return err
	}

	log.Info("Email sent", zap.String("message_id", res.ID))
	return nil
}

func welcomeHTML(code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #2C2C2C; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center;">Welcome to the Studio!</h1>
  <p style="text-align: center;">Thank you for joining Majestic Art</p>
  <div style="text-align: center; padding: 30px; margin: 30px 0; background: #FAF9F6; border-radius: 10px;">
    <h2>Your Exclusive Discount Code</h2>
    <p style="font-size: 36px; font-weight: bold; color: #D4AF37; letter-spacing: 3px;">%s</p>
    <p>Use this code at checkout to save 10%% on your first order!</p>
  </div>
  <ul>
    <li>Exclusive access to new releases</li>
    <li>Behind-the-scenes content</li>
    <li>Special offers and discounts</li>
    <li>First access to new artwork</li>
  </ul>
  <p style="text-align: center; color: #666; font-size: 14px;">
    Questions? Email us at orders@majesticart.com.<br>
    You can unsubscribe anytime by clicking the link in any email.
  </p>
</body>
</html>`, code)
}

func commissionHTML(name, tier string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #2C2C2C; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center;">Thank You, %s!</h1>
  <p style="text-align: center;">Your commission request has been received</p>
  <div style="text-align: center; padding: 30px; margin: 30px 0; background: #FAF9F6; border-radius: 10px;">
    <h2>Selected Package</h2>
    <p style="font-size: 28px; font-weight: bold; color: #D4AF37;">%s</p>
    <p>The artist will review your vision and reply within 48 hours.</p>
  </div>
  <p style="text-align: center; color: #666; font-size: 14px;">
    Questions about your request? Email us at orders@majesticart.com.
  </p>
</body>
</html>`, name, tier)
}
