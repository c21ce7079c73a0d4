package model

// Default values applied to products created without the optional fields.
const (
	DefaultSeason   = "All year"
	DefaultSoilType = "Loam"
)

// Product represents a registered agricultural crop entry. JSON property
// names follow the public Spanish API contract.
type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"nombre" validate:"required,min=2,max=100"`
	CultivatedHectares float64   `json:"hectareasCultivadas" validate:"required,gte=0.1,lte=10000"`
	ProducedQuantity   int       `json:"cantidadProducida" validate:"required,gte=1,lte=1000000"`
	ProductionDate     LocalTime `json:"fechaProduccion"`
	CropType           string    `json:"tipoCultivo" validate:"required"`
	SalePrice          float64   `json:"precioVenta" validate:"required,gte=100,lte=1000000"`
	ProductionCost     float64   `json:"costoProduccion" validate:"required,gte=100"`
	YieldPerHectare    float64   `json:"rendimientoPorHa,omitempty"`
	Season             string    `json:"temporada"`
	SoilType           string    `json:"tipoSuelo"`
	FarmCode           string    `json:"codigoFinca,omitempty"`
}

// ApplyDefaults fills the fields the API contract treats as optional.
func (p *Product) ApplyDefaults() {
	if p.ProductionDate.IsZero() {
		p.ProductionDate = Now()
	}
	if p.Season == "" {
		p.Season = DefaultSeason
	}
	if p.SoilType == "" {
		p.SoilType = DefaultSoilType
	}
}

// TotalRevenue is the gross income of the production run. It is zero when
// either operand is unset.
func (p *Product) TotalRevenue() float64 {
	if p.ProducedQuantity == 0 || p.SalePrice == 0 {
		return 0
	}
	return float64(p.ProducedQuantity) * p.SalePrice
}

// Profitability is the net profit per cultivated hectare. It is zero when
// the cultivated area is unset, guarding the division.
func (p *Product) Profitability() float64 {
	if p.CultivatedHectares == 0 {
		return 0
	}

	totalRevenue := p.TotalRevenue()
	totalCost := p.ProductionCost * p.CultivatedHectares
	netProfit := totalRevenue - totalCost

	return netProfit / p.CultivatedHectares
}

// ProfitMargin is the percentage markup of sale price over production cost.
// It is zero when the production cost is unset.
func (p *Product) ProfitMargin() float64 {
	if p.ProductionCost == 0 {
		return 0
	}
	return ((p.SalePrice - p.ProductionCost) / p.ProductionCost) * 100
}
