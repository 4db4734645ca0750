package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentCreated  PaymentStatus = "created"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// Payment records a featured-placement contribution initiated through the
// checkout redirect flow. The gateway webhook resolves its final status.
type Payment struct {
	ID        string  `json:"id" firestore:"id"`
	ListingID string  `json:"listingId" firestore:"listingId"`
	PayerID   string  `json:"userId" firestore:"userId"`
	Amount    float64 `json:"monto" firestore:"monto"`
	Type      string  `json:"tipo" firestore:"tipo"`

	PreferenceID     string        `json:"preferenceId,omitempty" firestore:"preferenceId,omitempty"`
	GatewayPaymentID string        `json:"gatewayPaymentId,omitempty" firestore:"gatewayPaymentId,omitempty"`
	Status           PaymentStatus `json:"estado" firestore:"estado"`

	CreatedAt time.Time `json:"fechaCreacion" firestore:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion" firestore:"fechaActualizacion"`
}
