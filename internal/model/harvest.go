package model

// DefaultQuality is the quality grade assigned to harvests created without one.
const DefaultQuality = "Standard"

// Harvest represents a single harvest record tied to exactly one product.
type Harvest struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productoId" validate:"required"`
	Quantity    int       `json:"cantidadRecolectada" validate:"required,gte=1,lte=1000000"`
	HarvestDate LocalTime `json:"fechaCosecha"`
	Quality     string    `json:"calidad"`
	Notes       string    `json:"observaciones,omitempty"`
}

// ApplyDefaults fills the fields the API contract treats as optional.
func (h *Harvest) ApplyDefaults() {
	if h.HarvestDate.IsZero() {
		h.HarvestDate = Now()
	}
	if h.Quality == "" {
		h.Quality = DefaultQuality
	}
}
