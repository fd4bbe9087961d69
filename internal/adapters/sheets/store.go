package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"click2card/internal/domain"
)

// Store appends paid orders to a spreadsheet through an Apps Script webhook.
// It is the system of record for this service: callers treat a failure here
// as fatal for the order.
type Store struct {
	url    string
	client *http.Client
	now    func() time.Time
}

func New(url string, timeout time.Duration) *Store {
	return &Store{
		url:    url,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

// Absent optional fields are sent as empty strings so the sheet columns
// stay aligned.
type orderRow struct {
	Timestamp    string `json:"timestamp"`
	PaymentID    string `json:"paymentId"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	City         string `json:"city"`
	Website      string `json:"website"`
	Instagram    string `json:"instagram"`
	GoogleMaps   string `json:"googleMaps"`
	TemplateID   string `json:"templateId"`
}

// SaveOrder posts one row per order. The webhook is synchronous: a non-2xx
// response means the row was not recorded.
func (s *Store) SaveOrder(ctx context.Context, card domain.BusinessCard, paymentID string) error {
	if s.url == "" {
		return errors.New("sheets webhook URL not configured")
	}

	row := orderRow{
		Timestamp:    s.now().UTC().Format(time.RFC3339),
		PaymentID:    paymentID,
		FullName:     card.FullName,
		BusinessName: card.BusinessName,
		Phone:        card.Phone,
		WhatsApp:     card.WhatsApp,
		Email:        card.Email,
		City:         card.City,
		Website:      card.Website,
		Instagram:    card.Instagram,
		GoogleMaps:   card.GoogleMaps,
		TemplateID:   card.TemplateID,
	}
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal order row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post order row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sheets webhook returned %s", resp.Status)
	}
	return nil
}
