package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"familymarket/pkg/logger"
)

// MercadoPagoPaymentService implements PaymentGateway over the Checkout Pro
// REST API.
type MercadoPagoPaymentService struct {
	accessToken string
	sandbox     bool
	baseURL     string
	http        *http.Client
}

func NewMercadoPagoPaymentService(accessToken string, sandbox bool) *MercadoPagoPaymentService {
	return &MercadoPagoPaymentService{
		accessToken: accessToken,
		sandbox:     sandbox,
		baseURL:     "https://api.mercadopago.com",
		http:        &http.Client{Timeout: 30 * time.Second},
	}
}

type preferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type preferenceBackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type preferenceRequestBody struct {
	Items             []preferenceItem    `json:"items"`
	Payer             map[string]string   `json:"payer,omitempty"`
	ExternalReference string              `json:"external_reference"`
	BackURLs          *preferenceBackURLs `json:"back_urls,omitempty"`
	NotificationURL   string              `json:"notification_url,omitempty"`
	AutoReturn        string              `json:"auto_return,omitempty"`
}

type preferenceResponseBody struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func (s *MercadoPagoPaymentService) CreatePreference(ctx context.Context, req PreferenceRequest) (*PreferenceResponse, error) {
	body := preferenceRequestBody{
		Items: []preferenceItem{
			{
				Title:     req.Title,
				Quantity:  1,
				UnitPrice: req.Amount,
			},
		},
		ExternalReference: req.OrderID,
		NotificationURL:   req.WebhookURL,
	}

	if req.PayerEmail != "" {
		body.Payer = map[string]string{"email": req.PayerEmail}
	}

	if req.SuccessURL != "" || req.FailureURL != "" || req.PendingURL != "" {
		body.BackURLs = &preferenceBackURLs{
			Success: req.SuccessURL,
			Failure: req.FailureURL,
			Pending: req.PendingURL,
		}
		if req.SuccessURL != "" {
			body.AutoReturn = "approved"
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preference request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/checkout/preferences", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("preference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		logger.Error("MercadoPago preference error (%d): %s", resp.StatusCode, string(raw))
		return nil, fmt.Errorf("mercadopago preference failed with status %d", resp.StatusCode)
	}

	var result preferenceResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode preference response: %w", err)
	}

	initPoint := result.InitPoint
	if s.sandbox && result.SandboxInitPoint != "" {
		initPoint = result.SandboxInitPoint
	}

	return &PreferenceResponse{
		PreferenceID: result.ID,
		InitPoint:    initPoint,
	}, nil
}

type paymentResponseBody struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
}

func (s *MercadoPagoPaymentService) GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mercadopago payment lookup failed with status %d", resp.StatusCode)
	}

	var result paymentResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	return &PaymentInfo{
		PaymentID:         result.ID.String(),
		Status:            result.Status,
		ExternalReference: result.ExternalReference,
	}, nil
}
