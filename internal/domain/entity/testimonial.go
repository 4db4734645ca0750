package entity

import (
	"time"
)

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialHidden   TestimonialStatus = "hidden"
)

type Testimonial struct {
	ID             string            `json:"id" firestore:"id"`
	AuthorID       string            `json:"userId" firestore:"userId"`
	AuthorName     string            `json:"nombreUsuario,omitempty" firestore:"nombreUsuario,omitempty"`
	AuthorPhotoURL string            `json:"fotoUsuario,omitempty" firestore:"fotoUsuario,omitempty"`
	Content        string            `json:"contenido" firestore:"contenido"`
	Rating         int               `json:"puntuacion" firestore:"puntuacion"`
	Status         TestimonialStatus `json:"estado" firestore:"estado"`
	CreatedAt      time.Time         `json:"fechaCreacion" firestore:"fechaCreacion"`
	UpdatedAt      time.Time         `json:"fechaActualizacion" firestore:"fechaActualizacion"`
}
