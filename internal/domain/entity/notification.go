package entity

import (
	"time"
)

type Notification struct {
	ID     string            `json:"id" firestore:"id"`
	UserID string            `json:"userId" firestore:"userId"`
	Title  string            `json:"titulo" firestore:"titulo"`
	Body   string            `json:"mensaje" firestore:"mensaje"`
	Data   map[string]string `json:"data,omitempty" firestore:"data,omitempty"`

	// Broadcast marks notifications produced by an admin mass send.
	Broadcast bool       `json:"broadcast" firestore:"broadcast"`
	Read      bool       `json:"leida" firestore:"leida"`
	ReadAt    *time.Time `json:"fechaLectura,omitempty" firestore:"fechaLectura,omitempty"`
	CreatedAt time.Time  `json:"fechaCreacion" firestore:"fechaCreacion"`
}
