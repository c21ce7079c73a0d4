package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unibague/agropecuario-api/internal/model"
)

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    float64
	}{
		{"TotalRevenue_Computed", model.Product{ProducedQuantity: 1000, SalePrice: 5000}, 5000000},
		{"TotalRevenue_NoQuantity", model.Product{SalePrice: 5000}, 0},
		{"TotalRevenue_NoPrice", model.Product{ProducedQuantity: 1000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.TotalRevenue())
		})
	}
}

func TestProfitability(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    float64
	}{
		{
			"Profitability_Computed",
			model.Product{CultivatedHectares: 10, ProducedQuantity: 1000, SalePrice: 5000, ProductionCost: 2000},
			498000,
		},
		{
			"Profitability_ZeroHectares",
			model.Product{ProducedQuantity: 1000, SalePrice: 5000, ProductionCost: 2000},
			0,
		},
		{
			"Profitability_Negative",
			model.Product{CultivatedHectares: 2, ProducedQuantity: 1, SalePrice: 100, ProductionCost: 500},
			-450,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.product.Profitability(), 0.0001)
		})
	}
}

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    float64
	}{
		{"ProfitMargin_Computed", model.Product{SalePrice: 5000, ProductionCost: 2000}, 150},
		{"ProfitMargin_ZeroCost", model.Product{SalePrice: 5000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.product.ProfitMargin(), 0.0001)
		})
	}
}

func TestProductApplyDefaults(t *testing.T) {
	p := model.Product{Name: "Café", CropType: "Coffee"}
	p.ApplyDefaults()

	assert.False(t, p.ProductionDate.IsZero(), "production date should default to now")
	assert.Equal(t, model.DefaultSeason, p.Season)
	assert.Equal(t, model.DefaultSoilType, p.SoilType)
}

func TestProductApplyDefaults_PreservesExplicitValues(t *testing.T) {
	date := model.NewLocalTime(time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC))
	p := model.Product{ProductionDate: date, Season: "Rainy", SoilType: "Clay"}
	p.ApplyDefaults()

	assert.Equal(t, date, p.ProductionDate)
	assert.Equal(t, "Rainy", p.Season)
	assert.Equal(t, "Clay", p.SoilType)
}

func TestHarvestApplyDefaults(t *testing.T) {
	h := model.Harvest{ProductID: "AGR001", Quantity: 50}
	h.ApplyDefaults()

	assert.False(t, h.HarvestDate.IsZero())
	assert.Equal(t, model.DefaultQuality, h.Quality)
}

func TestLocalTimeJSON(t *testing.T) {
	date := model.NewLocalTime(time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC))

	encoded, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T08:30:00"`, string(encoded))

	var decoded model.LocalTime
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, date.Equal(decoded.Time))
}

func TestLocalTimeJSON_Null(t *testing.T) {
	encoded, err := json.Marshal(model.LocalTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(encoded))

	var decoded model.LocalTime
	require.NoError(t, json.Unmarshal([]byte("null"), &decoded))
	assert.True(t, decoded.IsZero())
}

func TestLocalTimeJSON_Invalid(t *testing.T) {
	var decoded model.LocalTime
	err := json.Unmarshal([]byte(`"not-a-date"`), &decoded)
	assert.Error(t, err)
}
