package entity

import (
	"strings"
	"time"
)

// ListingType discriminates the three posting variants stored together in
// the empleos collection.
type ListingType string

const (
	ListingJobOffer            ListingType = "OFERTA_EMPLEO"
	ListingJobSeeker           ListingType = "BUSQUEDA_EMPLEO"
	ListingProfessionalService ListingType = "SERVICIO_PROFESIONAL"
)

// ParseListingType validates a raw tipoPublicacion value.
func ParseListingType(s string) (ListingType, bool) {
	t := ListingType(s)
	switch t {
	case ListingJobOffer, ListingJobSeeker, ListingProfessionalService:
		return t, true
	}
	return "", false
}

type ListingStatus string

const (
	ListingActive ListingStatus = "activo"
	ListingPaused ListingStatus = "pausado"
)

// StoreInfo is the denormalized store snapshot copied onto each posting at
// write time.
type StoreInfo struct {
	Slug    string `json:"slug" firestore:"slug"`
	Name    string `json:"nombre" firestore:"nombre"`
	LogoURL string `json:"logo,omitempty" firestore:"logo,omitempty"`
	Phone   string `json:"telefono,omitempty" firestore:"telefono,omitempty"`
}

type ContactInfo struct {
	Phone    string `json:"telefono,omitempty" firestore:"telefono,omitempty"`
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
}

// HasChannel reports whether at least one contact channel is set.
func (c ContactInfo) HasChannel() bool {
	return c.Phone != "" || c.Email != "" || c.WhatsApp != ""
}

type Schedule struct {
	Days     []string `json:"dias,omitempty" firestore:"dias,omitempty"`
	Shifts   []string `json:"turnos,omitempty" firestore:"turnos,omitempty"`
	Flexible bool     `json:"flexible" firestore:"flexible"`
}

type SalaryRange struct {
	Min      float64 `json:"minimo,omitempty" firestore:"minimo,omitempty"`
	Max      float64 `json:"maximo,omitempty" firestore:"maximo,omitempty"`
	Currency string  `json:"moneda,omitempty" firestore:"moneda,omitempty"`
	Period   string  `json:"periodo,omitempty" firestore:"periodo,omitempty"`
}

type RateStructure struct {
	Type     string  `json:"tipo,omitempty" firestore:"tipo,omitempty"`
	Amount   float64 `json:"monto,omitempty" firestore:"monto,omitempty"`
	Currency string  `json:"moneda,omitempty" firestore:"moneda,omitempty"`
}

// RatingSummary is the valoraciones aggregate on professional services.
type RatingSummary struct {
	Average float64 `json:"promedio" firestore:"promedio"`
	Total   int     `json:"total" firestore:"total"`
}

// JobOfferDetails holds the OFERTA_EMPLEO variant payload.
type JobOfferDetails struct {
	Company         string      `json:"empresa,omitempty" firestore:"empresa,omitempty"`
	EmploymentType  string      `json:"tipoEmpleo,omitempty" firestore:"tipoEmpleo,omitempty"`
	Modality        string      `json:"modalidad,omitempty" firestore:"modalidad,omitempty"`
	ExperienceLevel string      `json:"nivelExperiencia,omitempty" firestore:"nivelExperiencia,omitempty"`
	Requirements    []string    `json:"requisitos,omitempty" firestore:"requisitos,omitempty"`
	Skills          []string    `json:"habilidades,omitempty" firestore:"habilidades,omitempty"`
	Schedule        Schedule    `json:"horario" firestore:"horario"`
	Salary          SalaryRange `json:"salario" firestore:"salario"`
	Benefits        []string    `json:"beneficios,omitempty" firestore:"beneficios,omitempty"`
	Location        string      `json:"ubicacion,omitempty" firestore:"ubicacion,omitempty"`
}

// JobSeekerDetails holds the BUSQUEDA_EMPLEO variant payload.
type JobSeekerDetails struct {
	FullName          string   `json:"nombreCompleto,omitempty" firestore:"nombreCompleto,omitempty"`
	PhotoURL          string   `json:"foto,omitempty" firestore:"foto,omitempty"`
	CVURL             string   `json:"cv,omitempty" firestore:"cv,omitempty"`
	Skills            []string `json:"habilidades,omitempty" firestore:"habilidades,omitempty"`
	Availability      string   `json:"disponibilidad,omitempty" firestore:"disponibilidad,omitempty"`
	SalaryExpectation float64  `json:"expectativaSalarial,omitempty" firestore:"expectativaSalarial,omitempty"`
}

// ProfessionalServiceDetails holds the SERVICIO_PROFESIONAL variant payload.
type ProfessionalServiceDetails struct {
	ProfessionalName string        `json:"nombreProfesional,omitempty" firestore:"nombreProfesional,omitempty"`
	PhotoURL         string        `json:"foto,omitempty" firestore:"foto,omitempty"`
	Specialties      []string      `json:"especialidades,omitempty" firestore:"especialidades,omitempty"`
	Certifications   []string      `json:"certificaciones,omitempty" firestore:"certificaciones,omitempty"`
	Rate             RateStructure `json:"tarifa" firestore:"tarifa"`
	Portfolio        []string      `json:"portfolio,omitempty" firestore:"portfolio,omitempty"`
	CoverageZones    []string      `json:"zonasCobertura,omitempty" firestore:"zonasCobertura,omitempty"`
	Ratings          RatingSummary `json:"valoraciones" firestore:"valoraciones"`
}

// Listing is the tagged union stored in the empleos collection. Exactly one
// of the variant payloads is set, matching Type.
type Listing struct {
	ID          string      `json:"id" firestore:"id"`
	Type        ListingType `json:"tipoPublicacion" firestore:"tipoPublicacion"`
	OwnerID     string      `json:"userId" firestore:"userId"`
	Title       string      `json:"titulo" firestore:"titulo"`
	Description string      `json:"descripcion,omitempty" firestore:"descripcion,omitempty"`
	Category    string      `json:"categoria" firestore:"categoria"`
	Subcategory string      `json:"subcategoria,omitempty" firestore:"subcategoria,omitempty"`
	Contact     ContactInfo `json:"contacto" firestore:"contacto"`
	StoreInfo   *StoreInfo  `json:"tiendaInfo,omitempty" firestore:"tiendaInfo,omitempty"`

	JobOffer            *JobOfferDetails            `json:"ofertaEmpleo,omitempty" firestore:"ofertaEmpleo,omitempty"`
	JobSeeker           *JobSeekerDetails           `json:"busquedaEmpleo,omitempty" firestore:"busquedaEmpleo,omitempty"`
	ProfessionalService *ProfessionalServiceDetails `json:"servicioProfesional,omitempty" firestore:"servicioProfesional,omitempty"`

	Status        ListingStatus `json:"estado" firestore:"estado"`
	Views         int           `json:"vistas" firestore:"vistas"`
	Featured      bool          `json:"featured" firestore:"featured"`
	FeaturedUntil *time.Time    `json:"featuredUntil,omitempty" firestore:"featuredUntil,omitempty"`

	CreatedAt time.Time `json:"fechaCreacion" firestore:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion" firestore:"fechaActualizacion"`
}

// IsFeatureActive derives featured placement from the stored flag and the
// expiry timestamp. The raw flag alone is never trusted.
func (l *Listing) IsFeatureActive(now time.Time) bool {
	return l.Featured && l.FeaturedUntil != nil && now.Before(*l.FeaturedUntil)
}

// CompanyName returns the display name of whoever is behind the posting,
// used by substring search alongside title and description.
func (l *Listing) CompanyName() string {
	switch l.Type {
	case ListingJobOffer:
		if l.JobOffer != nil {
			return l.JobOffer.Company
		}
	case ListingJobSeeker:
		if l.JobSeeker != nil {
			return l.JobSeeker.FullName
		}
	case ListingProfessionalService:
		if l.ProfessionalService != nil {
			return l.ProfessionalService.ProfessionalName
		}
	}
	return ""
}

// MatchesTerm reports whether the listing matches a case-insensitive
// substring search over title, description and company name. An empty term
// matches everything.
func (l *Listing) MatchesTerm(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term) ||
		strings.Contains(strings.ToLower(l.CompanyName()), term)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Duplicate clones the listing preserving content fields while stripping
// identity and lifecycle: id, creation timestamp, view count and every
// featured field start fresh on the copy. The variant payload is copied in
// depth so clone and source never share pointers or slices.
func (l *Listing) Duplicate() *Listing {
	clone := *l
	clone.ID = ""
	clone.Views = 0
	clone.Featured = false
	clone.FeaturedUntil = nil
	clone.CreatedAt = time.Time{}
	clone.UpdatedAt = time.Time{}

	if l.StoreInfo != nil {
		info := *l.StoreInfo
		clone.StoreInfo = &info
	}
	if l.JobOffer != nil {
		offer := *l.JobOffer
		offer.Requirements = cloneStrings(l.JobOffer.Requirements)
		offer.Skills = cloneStrings(l.JobOffer.Skills)
		offer.Benefits = cloneStrings(l.JobOffer.Benefits)
		offer.Schedule.Days = cloneStrings(l.JobOffer.Schedule.Days)
		offer.Schedule.Shifts = cloneStrings(l.JobOffer.Schedule.Shifts)
		clone.JobOffer = &offer
	}
	if l.JobSeeker != nil {
		seeker := *l.JobSeeker
		seeker.Skills = cloneStrings(l.JobSeeker.Skills)
		clone.JobSeeker = &seeker
	}
	if l.ProfessionalService != nil {
		pro := *l.ProfessionalService
		pro.Specialties = cloneStrings(l.ProfessionalService.Specialties)
		pro.Certifications = cloneStrings(l.ProfessionalService.Certifications)
		pro.Portfolio = cloneStrings(l.ProfessionalService.Portfolio)
		pro.CoverageZones = cloneStrings(l.ProfessionalService.CoverageZones)
		clone.ProfessionalService = &pro
	}
	return &clone
}
