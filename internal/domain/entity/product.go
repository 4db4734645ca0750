package entity

import (
	"time"
)

// Product is a catalog item listed under a store.
type Product struct {
	ID          string   `json:"id" firestore:"id"`
	StoreSlug   string   `json:"tiendaSlug" firestore:"tiendaSlug"`
	OwnerID     string   `json:"userId" firestore:"userId"`
	Title       string   `json:"titulo" firestore:"titulo"`
	Description string   `json:"descripcion,omitempty" firestore:"descripcion,omitempty"`
	Price       float64  `json:"precio" firestore:"precio"`
	Category    string   `json:"categoria,omitempty" firestore:"categoria,omitempty"`
	Images      []string `json:"imagenes,omitempty" firestore:"imagenes,omitempty"`

	Status    ListingStatus `json:"estado" firestore:"estado"`
	Views     int           `json:"vistas" firestore:"vistas"`
	CreatedAt time.Time     `json:"fechaCreacion" firestore:"fechaCreacion"`
	UpdatedAt time.Time     `json:"fechaActualizacion" firestore:"fechaActualizacion"`
}

// Service is a service offering listed under a store, distinct from the
// professional-service posting variant in empleos.
type Service struct {
	ID          string        `json:"id" firestore:"id"`
	StoreSlug   string        `json:"tiendaSlug" firestore:"tiendaSlug"`
	OwnerID     string        `json:"userId" firestore:"userId"`
	Title       string        `json:"titulo" firestore:"titulo"`
	Description string        `json:"descripcion,omitempty" firestore:"descripcion,omitempty"`
	Rate        RateStructure `json:"tarifa" firestore:"tarifa"`
	Category    string        `json:"categoria,omitempty" firestore:"categoria,omitempty"`
	Images      []string      `json:"imagenes,omitempty" firestore:"imagenes,omitempty"`

	Status    ListingStatus `json:"estado" firestore:"estado"`
	Views     int           `json:"vistas" firestore:"vistas"`
	CreatedAt time.Time     `json:"fechaCreacion" firestore:"fechaCreacion"`
	UpdatedAt time.Time     `json:"fechaActualizacion" firestore:"fechaActualizacion"`
}
