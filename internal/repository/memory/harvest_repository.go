package memory

import (
	"sync"

	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/repository"
)

// HarvestRepository is a concurrency-safe in-memory store for harvest
// records. It mirrors the shape of ProductRepository; referential integrity
// against products is enforced one level up, in the service layer.
type HarvestRepository struct {
	mu       sync.RWMutex
	harvests map[string]model.Harvest
	order    []string
	ids      *repository.Sequence
}

// NewHarvestRepository creates an empty HarvestRepository.
func NewHarvestRepository() *HarvestRepository {
	return &HarvestRepository{
		harvests: make(map[string]model.Harvest),
		ids:      repository.NewSequence(repository.HarvestIDPrefix),
	}
}

// Create stores a new harvest, assigning an ID from the sequence when the
// harvest carries none.
func (r *HarvestRepository) Create(harvest model.Harvest) (model.Harvest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if harvest.ID == "" {
		for {
			id := r.ids.Next()
			if _, taken := r.harvests[id]; !taken {
				harvest.ID = id
				break
			}
		}
	} else if _, exists := r.harvests[harvest.ID]; exists {
		return model.Harvest{}, &repository.DuplicateIDError{ID: harvest.ID}
	}

	r.harvests[harvest.ID] = harvest
	r.order = append(r.order, harvest.ID)
	return harvest, nil
}

// Get retrieves a harvest by ID.
func (r *HarvestRepository) Get(id string) (model.Harvest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	harvest, exists := r.harvests[id]
	return harvest, exists
}

// List returns a snapshot of all harvests in insertion order.
func (r *HarvestRepository) List() []model.Harvest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	harvests := make([]model.Harvest, 0, len(r.order))
	for _, id := range r.order {
		harvests = append(harvests, r.harvests[id])
	}
	return harvests
}

// Update replaces all mutable fields of the harvest with the given ID,
// preserving the ID and the original harvest date when the update does not
// carry one.
func (r *HarvestRepository) Update(id string, harvest model.Harvest) (model.Harvest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.harvests[id]
	if !exists {
		return model.Harvest{}, repository.ErrNotFound
	}

	harvest.ID = id
	if harvest.HarvestDate.IsZero() {
		harvest.HarvestDate = existing.HarvestDate
	}

	r.harvests[id] = harvest
	return harvest, nil
}

// Delete removes the harvest with the given ID.
func (r *HarvestRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.harvests[id]; !exists {
		return repository.ErrNotFound
	}

	delete(r.harvests, id)
	r.order = removeID(r.order, id)
	return nil
}

// Count returns the number of stored harvests.
func (r *HarvestRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.harvests)
}

// FindByProduct returns all harvests referencing the given product ID, in
// insertion order.
func (r *HarvestRepository) FindByProduct(productID string) []model.Harvest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]model.Harvest, 0)
	for _, id := range r.order {
		if harvest := r.harvests[id]; harvest.ProductID == productID {
			matches = append(matches, harvest)
		}
	}
	return matches
}

// DeleteByProduct removes every harvest referencing the given product ID in
// one locked pass and reports how many were removed.
func (r *HarvestRepository) DeleteByProduct(productID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	kept := r.order[:0]
	for _, id := range r.order {
		if r.harvests[id].ProductID == productID {
			delete(r.harvests, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return removed
}
