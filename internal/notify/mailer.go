// Package notify sends the best-effort order confirmation email through an
// external mail endpoint. Failures never block order completion; callers
// log and move on.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type Mailer interface {
	SendOrderConfirmation(ctx context.Context, email string, o domain.Order) error
}

// HTTPMailer posts the confirmation payload to the mail service.
type HTTPMailer struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

func NewHTTPMailer(endpoint string, logger *log.Logger) *HTTPMailer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &HTTPMailer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

type confirmationPayload struct {
	OrderID   string       `json:"orderId"`
	UserEmail string       `json:"userEmail"`
	OrderData domain.Order `json:"orderData"`
}

func (m *HTTPMailer) SendOrderConfirmation(ctx context.Context, email string, o domain.Order) error {
	if m.endpoint == "" {
		m.logger.Printf("notify: no mail endpoint configured, skipping order=%s", o.ID)
		return nil
	}

	body, err := json.Marshal(confirmationPayload{OrderID: o.ID, UserEmail: email, OrderData: o})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail service returned %d", resp.StatusCode)
	}
	m.logger.Printf("notify: confirmation sent order=%s email=%s", o.ID, email)
	return nil
}
