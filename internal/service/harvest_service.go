package service

import (
	"fmt"
	"log/slog"

	"github.com/unibague/agropecuario-api/internal/metrics"
	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/validation"
)

// Create validates and stores a new harvest. The referenced product must
// exist; the existence check and the insert run under the cross-store lock
// so the product cannot be deleted in between.
func (hs *HarvestService) Create(harvest model.Harvest) (model.Harvest, error) {
	harvest.ApplyDefaults()
	if err := validation.Struct(&harvest); err != nil {
		return model.Harvest{}, err
	}

	hs.crossMu.Lock()
	defer hs.crossMu.Unlock()

	if _, exists := hs.products.Get(harvest.ProductID); !exists {
		return model.Harvest{}, fmt.Errorf("harvest references %s: %w", harvest.ProductID, ErrProductNotFound)
	}

	created, err := hs.harvests.Create(harvest)
	if err != nil {
		return model.Harvest{}, fmt.Errorf("creating harvest: %w", err)
	}

	metrics.HarvestsCreated.Inc()
	slog.Info("harvest created", slog.String("harvest_id", created.ID), slog.String("product_id", created.ProductID))
	return created, nil
}

// Get retrieves a harvest by ID.
func (hs *HarvestService) Get(id string) (model.Harvest, error) {
	harvest, exists := hs.harvests.Get(id)
	if !exists {
		return model.Harvest{}, ErrHarvestNotFound
	}
	return harvest, nil
}

// List returns all harvests in insertion order.
func (hs *HarvestService) List() []model.Harvest {
	return hs.harvests.List()
}

// Update validates and replaces all mutable fields of an existing harvest.
// When the update moves the harvest to a different product, the new product
// must exist.
func (hs *HarvestService) Update(id string, harvest model.Harvest) (model.Harvest, error) {
	// An unset harvest date is preserved by the repository, so only the
	// quality default applies here.
	if harvest.Quality == "" {
		harvest.Quality = model.DefaultQuality
	}
	if err := validation.Struct(&harvest); err != nil {
		return model.Harvest{}, err
	}

	hs.crossMu.Lock()
	defer hs.crossMu.Unlock()

	existing, exists := hs.harvests.Get(id)
	if !exists {
		return model.Harvest{}, ErrHarvestNotFound
	}

	if harvest.ProductID != existing.ProductID {
		if _, exists := hs.products.Get(harvest.ProductID); !exists {
			return model.Harvest{}, fmt.Errorf("harvest references %s: %w", harvest.ProductID, ErrProductNotFound)
		}
	}

	updated, err := hs.harvests.Update(id, harvest)
	if err != nil {
		return model.Harvest{}, ErrHarvestNotFound
	}

	slog.Info("harvest updated", slog.String("harvest_id", id))
	return updated, nil
}

// Delete removes a harvest by ID.
func (hs *HarvestService) Delete(id string) error {
	if err := hs.harvests.Delete(id); err != nil {
		return ErrHarvestNotFound
	}

	metrics.HarvestsDeleted.Inc()
	slog.Info("harvest deleted", slog.String("harvest_id", id))
	return nil
}

// Count returns the number of stored harvests.
func (hs *HarvestService) Count() int {
	return hs.harvests.Count()
}

// ListForProduct returns all harvests of an existing product.
func (hs *HarvestService) ListForProduct(productID string) ([]model.Harvest, error) {
	if _, exists := hs.products.Get(productID); !exists {
		return nil, ErrProductNotFound
	}
	return hs.harvests.FindByProduct(productID), nil
}

// CreateForProduct stores a new harvest under the product named by the
// nested route, overriding any product reference in the payload.
func (hs *HarvestService) CreateForProduct(productID string, harvest model.Harvest) (model.Harvest, error) {
	harvest.ProductID = productID
	return hs.Create(harvest)
}

// GetForProduct retrieves a harvest scoped to a product. A harvest that
// exists under a different product is reported as not owned, so nested
// routes cannot leak cross-product records by ID guessing.
func (hs *HarvestService) GetForProduct(productID, harvestID string) (model.Harvest, error) {
	if _, exists := hs.products.Get(productID); !exists {
		return model.Harvest{}, ErrProductNotFound
	}

	harvest, exists := hs.harvests.Get(harvestID)
	if !exists {
		return model.Harvest{}, ErrHarvestNotFound
	}

	if harvest.ProductID != productID {
		return model.Harvest{}, fmt.Errorf("harvest %s: %w", harvestID, ErrHarvestNotOwned)
	}
	return harvest, nil
}

// UpdateForProduct updates a harvest scoped to a product. The harvest stays
// attached to the route's product regardless of the payload.
func (hs *HarvestService) UpdateForProduct(productID, harvestID string, harvest model.Harvest) (model.Harvest, error) {
	if _, err := hs.GetForProduct(productID, harvestID); err != nil {
		return model.Harvest{}, err
	}

	harvest.ProductID = productID
	return hs.Update(harvestID, harvest)
}

// DeleteForProduct deletes a harvest scoped to a product.
func (hs *HarvestService) DeleteForProduct(productID, harvestID string) error {
	if _, err := hs.GetForProduct(productID, harvestID); err != nil {
		return err
	}
	return hs.Delete(harvestID)
}

// ProductStats aggregates the harvests of one product.
type ProductStats struct {
	ProductID     string `json:"productoId"`
	HarvestCount  int    `json:"totalCosechas"`
	TotalQuantity int    `json:"cantidadTotalRecolectada"`
}

// StatsForProduct computes the harvest aggregate of an existing product.
func (hs *HarvestService) StatsForProduct(productID string) (ProductStats, error) {
	harvests, err := hs.ListForProduct(productID)
	if err != nil {
		return ProductStats{}, err
	}

	stats := ProductStats{ProductID: productID, HarvestCount: len(harvests)}
	for _, harvest := range harvests {
		stats.TotalQuantity += harvest.Quantity
	}
	return stats, nil
}
