package memory

import (
	"fmt"
	"time"

	"github.com/unibague/agropecuario-api/internal/model"
)

// Seed pre-populates both repositories with the fixed demonstration data set:
// three products (AGR001..AGR003) and five harvests (COS001..COS005). IDs are
// assigned by the repositories' own sequences, so subsequently created
// entities continue the numbering.
func Seed(products *ProductRepository, harvests *HarvestRepository) error {
	seedProducts := []model.Product{
		{
			Name:               "Café",
			CultivatedHectares: 10,
			ProducedQuantity:   1000,
			ProductionDate:     seedDate(2024, 1, 15),
			CropType:           "Coffee",
			SalePrice:          5000,
			ProductionCost:     2000,
			YieldPerHectare:    100,
			Season:             model.DefaultSeason,
			SoilType:           model.DefaultSoilType,
			FarmCode:           "FINCA-01",
		},
		{
			Name:               "Arroz",
			CultivatedHectares: 25.5,
			ProducedQuantity:   50000,
			ProductionDate:     seedDate(2024, 2, 20),
			CropType:           "Rice",
			SalePrice:          1200,
			ProductionCost:     800,
			YieldPerHectare:    1960.78,
			Season:             "Rainy",
			SoilType:           "Clay",
			FarmCode:           "FINCA-02",
		},
		{
			Name:               "Maíz",
			CultivatedHectares: 8.2,
			ProducedQuantity:   12000,
			ProductionDate:     seedDate(2024, 3, 10),
			CropType:           "Corn",
			SalePrice:          950,
			ProductionCost:     450,
			YieldPerHectare:    1463.41,
			Season:             "Dry",
			SoilType:           model.DefaultSoilType,
			FarmCode:           "FINCA-01",
		},
	}

	created := make([]model.Product, 0, len(seedProducts))
	for _, product := range seedProducts {
		stored, err := products.Create(product)
		if err != nil {
			return fmt.Errorf("seeding product %q: %w", product.Name, err)
		}
		created = append(created, stored)
	}

	seedHarvests := []model.Harvest{
		{ProductID: created[0].ID, Quantity: 400, HarvestDate: seedDate(2024, 4, 5), Quality: "Premium"},
		{ProductID: created[0].ID, Quantity: 600, HarvestDate: seedDate(2024, 5, 12), Quality: model.DefaultQuality},
		{ProductID: created[1].ID, Quantity: 50000, HarvestDate: seedDate(2024, 6, 1), Quality: model.DefaultQuality, Notes: "Single mechanized pass"},
		{ProductID: created[2].ID, Quantity: 7000, HarvestDate: seedDate(2024, 6, 18), Quality: "Premium"},
		{ProductID: created[2].ID, Quantity: 5000, HarvestDate: seedDate(2024, 7, 2), Quality: "Low"},
	}

	for _, harvest := range seedHarvests {
		if _, err := harvests.Create(harvest); err != nil {
			return fmt.Errorf("seeding harvest for product %s: %w", harvest.ProductID, err)
		}
	}

	return nil
}

func seedDate(year int, month time.Month, day int) model.LocalTime {
	return model.NewLocalTime(time.Date(year, month, day, 8, 0, 0, 0, time.UTC))
}
