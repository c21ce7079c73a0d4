package memory_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/repository"
	"github.com/unibague/agropecuario-api/internal/repository/memory"
)

func newProduct(name, cropType string, hectares float64) model.Product {
	return model.Product{
		Name:               name,
		CultivatedHectares: hectares,
		ProducedQuantity:   1000,
		CropType:           cropType,
		SalePrice:          5000,
		ProductionCost:     2000,
		Season:             model.DefaultSeason,
	}
}

func TestProductCreate_AssignsSequentialIDs(t *testing.T) {
	repo := memory.NewProductRepository()

	first, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)
	second, err := repo.Create(newProduct("Arroz", "Rice", 25))
	require.NoError(t, err)

	assert.Equal(t, "AGR001", first.ID)
	assert.Equal(t, "AGR002", second.ID)
}

func TestProductCreate_RejectsDuplicateID(t *testing.T) {
	repo := memory.NewProductRepository()

	p := newProduct("Café", "Coffee", 10)
	p.ID = "AGR999"
	_, err := repo.Create(p)
	require.NoError(t, err)

	_, err = repo.Create(p)
	require.Error(t, err)

	var dup *repository.DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "AGR999", dup.ID)
}

func TestProductCreate_SkipsCallerClaimedIDs(t *testing.T) {
	repo := memory.NewProductRepository()

	claimed := newProduct("Café", "Coffee", 10)
	claimed.ID = "AGR001"
	_, err := repo.Create(claimed)
	require.NoError(t, err)

	generated, err := repo.Create(newProduct("Arroz", "Rice", 25))
	require.NoError(t, err)
	assert.Equal(t, "AGR002", generated.ID)
}

func TestProductGet(t *testing.T) {
	repo := memory.NewProductRepository()
	created, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)

	found, exists := repo.Get(created.ID)
	assert.True(t, exists)
	assert.Equal(t, created, found)

	_, exists = repo.Get("AGR404")
	assert.False(t, exists)
}

func TestProductList_InsertionOrder(t *testing.T) {
	repo := memory.NewProductRepository()
	names := []string{"Café", "Arroz", "Maíz"}
	for _, name := range names {
		_, err := repo.Create(newProduct(name, "Crop", 5))
		require.NoError(t, err)
	}

	listed := repo.List()
	require.Len(t, listed, 3)
	for i, product := range listed {
		assert.Equal(t, names[i], product.Name)
	}
}

func TestProductList_SnapshotIsIndependent(t *testing.T) {
	repo := memory.NewProductRepository()
	_, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)

	listed := repo.List()
	listed[0].Name = "mutated"

	stored, _ := repo.Get("AGR001")
	assert.Equal(t, "Café", stored.Name)
}

func TestProductUpdate(t *testing.T) {
	repo := memory.NewProductRepository()
	created, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)

	replacement := newProduct("Café Premium", "Coffee", 12)
	replacement.ID = "ignored"
	updated, err := repo.Update(created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "ID must be preserved")
	assert.Equal(t, "Café Premium", updated.Name)
	assert.Equal(t, 12.0, updated.CultivatedHectares)
}

func TestProductUpdate_PreservesProductionDateWhenUnset(t *testing.T) {
	repo := memory.NewProductRepository()
	original := newProduct("Café", "Coffee", 10)
	original.ApplyDefaults()
	created, err := repo.Create(original)
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, newProduct("Café", "Coffee", 11))
	require.NoError(t, err)
	assert.Equal(t, created.ProductionDate, updated.ProductionDate)
}

func TestProductUpdate_NotFound(t *testing.T) {
	repo := memory.NewProductRepository()
	_, err := repo.Update("AGR404", newProduct("Café", "Coffee", 10))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	repo := memory.NewProductRepository()
	created, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))
	_, exists := repo.Get(created.ID)
	assert.False(t, exists)
	assert.Equal(t, 0, repo.Count())

	assert.ErrorIs(t, repo.Delete(created.ID), repository.ErrNotFound)
}

func TestProductDelete_NeverReusesID(t *testing.T) {
	repo := memory.NewProductRepository()
	created, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(created.ID))

	next, err := repo.Create(newProduct("Arroz", "Rice", 25))
	require.NoError(t, err)
	assert.Equal(t, "AGR002", next.ID)
}

func TestFindByCropType(t *testing.T) {
	repo := memory.NewProductRepository()
	_, err := repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)
	_, err = repo.Create(newProduct("Arroz", "Rice", 25))
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"ExactMatch", "Coffee", 1},
		{"CaseInsensitive", "coffee", 1},
		{"Substring", "off", 1},
		{"NoMatch", "Banana", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, repo.FindByCropType(tt.query), tt.want)
		})
	}
}

func TestFindByName(t *testing.T) {
	repo := memory.NewProductRepository()
	_, err := repo.Create(newProduct("Café Arábigo", "Coffee", 10))
	require.NoError(t, err)

	assert.Len(t, repo.FindByName("café"), 1)
	assert.Len(t, repo.FindByName("ARÁBIGO"), 1)
	assert.Len(t, repo.FindByName("arábigo"), 1)
	assert.Len(t, repo.FindByName("banana"), 0)
}

func TestFindBySeason(t *testing.T) {
	repo := memory.NewProductRepository()
	rainy := newProduct("Arroz", "Rice", 25)
	rainy.Season = "Rainy"
	_, err := repo.Create(rainy)
	require.NoError(t, err)
	_, err = repo.Create(newProduct("Café", "Coffee", 10))
	require.NoError(t, err)

	assert.Len(t, repo.FindBySeason("rainy"), 1)
	assert.Len(t, repo.FindBySeason("All year"), 1)
	assert.Len(t, repo.FindBySeason("Rain"), 0, "season match is exact, not substring")
}

func TestFindByHectareRange(t *testing.T) {
	repo := memory.NewProductRepository()
	for _, ha := range []float64{2.5, 5.0, 7.3, 10.0, 42.0} {
		_, err := repo.Create(newProduct(fmt.Sprintf("Crop %.1f", ha), "Crop", ha))
		require.NoError(t, err)
	}

	bound := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		min  *float64
		max  *float64
		want int
	}{
		{"InclusiveBothEnds", bound(5.0), bound(10.0), 3},
		{"UnboundedMin", nil, bound(5.0), 2},
		{"UnboundedMax", bound(10.0), nil, 2},
		{"BothAbsent", nil, nil, 5},
		{"EmptyRange", bound(100.0), bound(200.0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, repo.FindByHectareRange(tt.min, tt.max), tt.want)
		})
	}
}

func TestProductCreate_Concurrent(t *testing.T) {
	repo := memory.NewProductRepository()

	const goroutines = 100
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.Create(newProduct(fmt.Sprintf("Crop %d", n), "Crop", 5))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, goroutines, repo.Count())

	seen := make(map[string]bool)
	for _, product := range repo.List() {
		require.False(t, seen[product.ID], "IDs must be pairwise distinct")
		seen[product.ID] = true

		suffix, err := strconv.Atoi(strings.TrimPrefix(product.ID, repository.ProductIDPrefix))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1)
		assert.LessOrEqual(t, suffix, goroutines)
	}
}
