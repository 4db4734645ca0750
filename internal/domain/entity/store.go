package entity

import (
	"time"
)

// StoreTheme holds the per-tenant colors the frontend injects as CSS
// variables.
type StoreTheme struct {
	Primary   string `json:"primario,omitempty" firestore:"primario,omitempty"`
	Secondary string `json:"secundario,omitempty" firestore:"secundario,omitempty"`
	Accent    string `json:"acento,omitempty" firestore:"acento,omitempty"`
}

// Store is a seller's storefront (tienda), addressed by slug.
type Store struct {
	ID          string     `json:"id" firestore:"id"`
	Slug        string     `json:"slug" firestore:"slug"`
	Name        string     `json:"nombre" firestore:"nombre"`
	Description string     `json:"descripcion,omitempty" firestore:"descripcion,omitempty"`
	OwnerID     string     `json:"userId" firestore:"userId"`
	LogoURL     string     `json:"logo,omitempty" firestore:"logo,omitempty"`
	BannerURL   string     `json:"banner,omitempty" firestore:"banner,omitempty"`
	Theme       StoreTheme `json:"tema" firestore:"tema"`

	Phone    string `json:"telefono,omitempty" firestore:"telefono,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
	Address  string `json:"direccion,omitempty" firestore:"direccion,omitempty"`

	Active    bool      `json:"activa" firestore:"activa"`
	CreatedAt time.Time `json:"fechaCreacion" firestore:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion" firestore:"fechaActualizacion"`
}

// Snapshot produces the denormalized tiendaInfo copied onto postings.
func (s *Store) Snapshot() *StoreInfo {
	return &StoreInfo{
		Slug:    s.Slug,
		Name:    s.Name,
		LogoURL: s.LogoURL,
		Phone:   s.Phone,
	}
}
