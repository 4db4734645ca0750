package service

import "context"

// PreferenceRequest describes a checkout preference for one featured
// placement contribution.
type PreferenceRequest struct {
	OrderID     string
	Title       string
	Amount      float64
	PayerEmail  string
	SuccessURL  string
	FailureURL  string
	PendingURL  string
	WebhookURL  string
}

// PreferenceResponse carries what the browser needs to start the redirect
// flow.
type PreferenceResponse struct {
	PreferenceID string
	InitPoint    string
}

// PaymentInfo is the gateway's view of a completed (or failed) payment.
type PaymentInfo struct {
	PaymentID         string
	Status            string // "approved", "rejected", "pending", ...
	ExternalReference string // our order id
}

// PaymentGateway abstracts the checkout provider so usecases and tests do
// not depend on MercadoPago directly.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*PreferenceResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error)
}
