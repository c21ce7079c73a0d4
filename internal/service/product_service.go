package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/unibague/agropecuario-api/internal/metrics"
	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/repository/memory"
	"github.com/unibague/agropecuario-api/internal/validation"
)

// Server identity reported by the statistics endpoint.
const (
	ServerName = "API REST Agropecuario"
	Version    = "2.0.0"
)

// ProductService owns the product lifecycle. Deleting a product cascades to
// its harvests: the delete either removes the product together with every
// dependent harvest or fails leaving both collections untouched.
type ProductService struct {
	products *memory.ProductRepository
	harvests *memory.HarvestRepository

	// crossMu serializes mutations that touch both repositories (product
	// delete, harvest create/update) so a harvest can never be attached to a
	// product mid-deletion. Single-store operations rely on the repositories'
	// own locks. Shared with the HarvestService built by NewServices.
	crossMu *sync.Mutex
}

// HarvestService enforces the master-detail contract for harvests: every
// stored harvest references an existing product, and nested-route access
// never leaks harvests across products.
type HarvestService struct {
	products *memory.ProductRepository
	harvests *memory.HarvestRepository
	crossMu  *sync.Mutex
}

// NewServices wires the two services over shared repositories and a shared
// cross-store lock.
func NewServices(products *memory.ProductRepository, harvests *memory.HarvestRepository) (*ProductService, *HarvestService) {
	crossMu := &sync.Mutex{}
	return &ProductService{products: products, harvests: harvests, crossMu: crossMu},
		&HarvestService{products: products, harvests: harvests, crossMu: crossMu}
}

// Create validates and stores a new product, assigning an ID when the caller
// supplies none.
func (ps *ProductService) Create(product model.Product) (model.Product, error) {
	product.ApplyDefaults()
	if err := validation.Struct(&product); err != nil {
		return model.Product{}, err
	}

	created, err := ps.products.Create(product)
	if err != nil {
		return model.Product{}, fmt.Errorf("creating product: %w", err)
	}

	metrics.ProductsCreated.Inc()
	slog.Info("product created", slog.String("product_id", created.ID), slog.String("crop_type", created.CropType))
	return created, nil
}

// Get retrieves a product by ID.
func (ps *ProductService) Get(id string) (model.Product, error) {
	product, exists := ps.products.Get(id)
	if !exists {
		return model.Product{}, ErrProductNotFound
	}
	return product, nil
}

// List returns all products in insertion order.
func (ps *ProductService) List() []model.Product {
	return ps.products.List()
}

// Update validates and replaces all mutable fields of an existing product.
func (ps *ProductService) Update(id string, product model.Product) (model.Product, error) {
	// An unset production date is preserved by the repository; season and
	// soil type fall back to their defaults like on create.
	if product.Season == "" {
		product.Season = model.DefaultSeason
	}
	if product.SoilType == "" {
		product.SoilType = model.DefaultSoilType
	}
	if err := validation.Struct(&product); err != nil {
		return model.Product{}, err
	}

	updated, err := ps.products.Update(id, product)
	if err != nil {
		return model.Product{}, ErrProductNotFound
	}

	slog.Info("product updated", slog.String("product_id", id))
	return updated, nil
}

// Delete removes a product and cascade-deletes its harvests. Held under the
// cross-store lock so no harvest can be created against the product while
// the cascade runs.
func (ps *ProductService) Delete(id string) error {
	ps.crossMu.Lock()
	defer ps.crossMu.Unlock()

	if _, exists := ps.products.Get(id); !exists {
		return ErrProductNotFound
	}

	removed := ps.harvests.DeleteByProduct(id)
	if err := ps.products.Delete(id); err != nil {
		return ErrProductNotFound
	}

	metrics.ProductsDeleted.Inc()
	slog.Info("product deleted", slog.String("product_id", id), slog.Int("cascaded_harvests", removed))
	return nil
}

// Count returns the number of stored products.
func (ps *ProductService) Count() int {
	return ps.products.Count()
}

// FindByCropType returns products matching the crop type, case-insensitively
// by substring.
func (ps *ProductService) FindByCropType(cropType string) []model.Product {
	return ps.products.FindByCropType(cropType)
}

// FindByName returns products whose name contains the value, case-insensitively.
func (ps *ProductService) FindByName(name string) []model.Product {
	return ps.products.FindByName(name)
}

// FindBySeason returns products of the given season, case-insensitively.
func (ps *ProductService) FindBySeason(season string) []model.Product {
	return ps.products.FindBySeason(season)
}

// FindByHectareRange returns products with cultivated area in [min, max];
// nil bounds are unbounded.
func (ps *ProductService) FindByHectareRange(min, max *float64) []model.Product {
	return ps.products.FindByHectareRange(min, max)
}

// SystemStats describes the system-level statistics endpoint payload.
type SystemStats struct {
	TotalProducts int             `json:"totalProductos"`
	Server        string          `json:"servidor"`
	Version       string          `json:"version"`
	Timestamp     model.LocalTime `json:"timestamp"`
}

// Stats returns the current system statistics.
func (ps *ProductService) Stats() SystemStats {
	return SystemStats{
		TotalProducts: ps.products.Count(),
		Server:        ServerName,
		Version:       Version,
		Timestamp:     model.Now(),
	}
}
