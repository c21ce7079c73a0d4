package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/service"
)

// HarvestController handles HTTP requests for harvest operations, both the
// nested product-scoped routes and the direct ones.
type HarvestController struct {
	*Controller
	harvestService *service.HarvestService
}

// NewHarvestController creates a new HarvestController with the given harvest service.
func NewHarvestController(base *Controller, harvestService *service.HarvestService) *HarvestController {
	return &HarvestController{
		Controller:     base,
		harvestService: harvestService,
	}
}

// List handles the HTTP GET request for listing all harvests.
func (hc *HarvestController) List(c *gin.Context) {
	hc.respond(c, http.StatusOK, "Harvests retrieved successfully", hc.harvestService.List())
}

// Get handles the HTTP GET request for retrieving a harvest by ID.
func (hc *HarvestController) Get(c *gin.Context) {
	harvest, err := hc.harvestService.Get(c.Param("id"))
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvest found", harvest)
}

// Create handles the HTTP POST request for creating a harvest through the
// direct route. The payload must reference an existing product.
func (hc *HarvestController) Create(c *gin.Context) {
	var harvest model.Harvest
	if err := c.ShouldBindJSON(&harvest); err != nil {
		hc.respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	created, err := hc.harvestService.Create(harvest)
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusCreated, "Harvest created successfully", created)
}

// Update handles the HTTP PUT request for replacing a harvest's mutable fields.
func (hc *HarvestController) Update(c *gin.Context) {
	var harvest model.Harvest
	if err := c.ShouldBindJSON(&harvest); err != nil {
		hc.respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	updated, err := hc.harvestService.Update(c.Param("id"), harvest)
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvest updated successfully", updated)
}

// Delete handles the HTTP DELETE request for deleting a harvest by ID.
func (hc *HarvestController) Delete(c *gin.Context) {
	if err := hc.harvestService.Delete(c.Param("id")); err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvest deleted successfully", nil)
}

// ListForProduct handles the nested HTTP GET request for a product's harvests.
func (hc *HarvestController) ListForProduct(c *gin.Context) {
	harvests, err := hc.harvestService.ListForProduct(c.Param("id"))
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvests retrieved successfully", harvests)
}

// CreateForProduct handles the nested HTTP POST request creating a harvest
// under the product named in the route.
func (hc *HarvestController) CreateForProduct(c *gin.Context) {
	var harvest model.Harvest
	if err := c.ShouldBindJSON(&harvest); err != nil {
		hc.respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	created, err := hc.harvestService.CreateForProduct(c.Param("id"), harvest)
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusCreated, "Harvest created successfully", created)
}

// GetForProduct handles the nested HTTP GET request, enforcing that the
// harvest belongs to the product named in the route.
func (hc *HarvestController) GetForProduct(c *gin.Context) {
	harvest, err := hc.harvestService.GetForProduct(c.Param("id"), c.Param("hid"))
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvest found", harvest)
}

// UpdateForProduct handles the nested HTTP PUT request, enforcing ownership.
func (hc *HarvestController) UpdateForProduct(c *gin.Context) {
	var harvest model.Harvest
	if err := c.ShouldBindJSON(&harvest); err != nil {
		hc.respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	updated, err := hc.harvestService.UpdateForProduct(c.Param("id"), c.Param("hid"), harvest)
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvest updated successfully", updated)
}

// DeleteForProduct handles the nested HTTP DELETE request, enforcing ownership.
func (hc *HarvestController) DeleteForProduct(c *gin.Context) {
	if err := hc.harvestService.DeleteForProduct(c.Param("id"), c.Param("hid")); err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Harvest deleted successfully", nil)
}

// StatsForProduct handles the nested HTTP GET request for a product's
// harvest aggregate.
func (hc *HarvestController) StatsForProduct(c *gin.Context) {
	stats, err := hc.harvestService.StatsForProduct(c.Param("id"))
	if err != nil {
		hc.renderFailure(c, err)
		return
	}
	hc.respond(c, http.StatusOK, "Product statistics", stats)
}
