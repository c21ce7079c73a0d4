package memory

import (
	"strings"
	"sync"

	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/repository"
)

// ProductRepository is a concurrency-safe in-memory store for products.
// Entities are stored by value, so callers always work on copies.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
	order    []string
	ids      *repository.Sequence
}

// NewProductRepository creates an empty ProductRepository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]model.Product),
		ids:      repository.NewSequence(repository.ProductIDPrefix),
	}
}

// Create stores a new product. When the product carries no ID one is
// assigned from the sequence; a caller-supplied ID that collides with an
// existing entry is rejected with a DuplicateIDError.
func (r *ProductRepository) Create(product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		// Skip over IDs a caller may have claimed explicitly.
		for {
			id := r.ids.Next()
			if _, taken := r.products[id]; !taken {
				product.ID = id
				break
			}
		}
	} else if _, exists := r.products[product.ID]; exists {
		return model.Product{}, &repository.DuplicateIDError{ID: product.ID}
	}

	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	return product, nil
}

// Get retrieves a product by ID. A miss is not an error here; callers decide
// the not-found semantics.
func (r *ProductRepository) Get(id string) (model.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	return product, exists
}

// List returns a snapshot of all products in insertion order.
func (r *ProductRepository) List() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products
}

// Update replaces all mutable fields of the product with the given ID. The
// ID itself is preserved, as is the original production date when the update
// does not carry one.
func (r *ProductRepository) Update(id string, product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.products[id]
	if !exists {
		return model.Product{}, repository.ErrNotFound
	}

	product.ID = id
	if product.ProductionDate.IsZero() {
		product.ProductionDate = existing.ProductionDate
	}

	r.products[id] = product
	return product, nil
}

// Delete removes the product with the given ID.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return repository.ErrNotFound
	}

	delete(r.products, id)
	r.order = removeID(r.order, id)
	return nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}

// FindByCropType returns products whose crop type contains the given value,
// case-insensitively.
func (r *ProductRepository) FindByCropType(cropType string) []model.Product {
	return r.filter(func(p model.Product) bool {
		return containsFold(p.CropType, cropType)
	})
}

// FindByName returns products whose name contains the given value,
// case-insensitively.
func (r *ProductRepository) FindByName(name string) []model.Product {
	return r.filter(func(p model.Product) bool {
		return containsFold(p.Name, name)
	})
}

// FindBySeason returns products whose season matches the given value,
// case-insensitively.
func (r *ProductRepository) FindBySeason(season string) []model.Product {
	return r.filter(func(p model.Product) bool {
		return strings.EqualFold(p.Season, season)
	})
}

// FindByHectareRange returns products whose cultivated area lies in the
// inclusive range [min, max]. A nil bound leaves that side unbounded.
func (r *ProductRepository) FindByHectareRange(min, max *float64) []model.Product {
	return r.filter(func(p model.Product) bool {
		if min != nil && p.CultivatedHectares < *min {
			return false
		}
		if max != nil && p.CultivatedHectares > *max {
			return false
		}
		return true
	})
}

func (r *ProductRepository) filter(match func(model.Product) bool) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]model.Product, 0)
	for _, id := range r.order {
		if product := r.products[id]; match(product) {
			matches = append(matches, product)
		}
	}
	return matches
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func removeID(order []string, id string) []string {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
