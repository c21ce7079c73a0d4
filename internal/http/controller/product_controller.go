package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/service"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	*Controller
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(base *Controller, productService *service.ProductService) *ProductController {
	return &ProductController{
		Controller:     base,
		productService: productService,
	}
}

// List handles the HTTP GET request for listing products. The filter query
// groups are mutually exclusive and resolved in a fixed order: tipo, nombre,
// temporada, then the hectare range.
func (pc *ProductController) List(c *gin.Context) {
	switch {
	case c.Query("tipo") != "":
		tipo := c.Query("tipo")
		products := pc.productService.FindByCropType(tipo)
		pc.respond(c, http.StatusOK, fmt.Sprintf("Found %d products of crop type '%s'", len(products), tipo), products)

	case c.Query("nombre") != "":
		nombre := c.Query("nombre")
		products := pc.productService.FindByName(nombre)
		pc.respond(c, http.StatusOK, fmt.Sprintf("Found %d products named '%s'", len(products), nombre), products)

	case c.Query("temporada") != "":
		temporada := c.Query("temporada")
		products := pc.productService.FindBySeason(temporada)
		pc.respond(c, http.StatusOK, fmt.Sprintf("Found %d products of season '%s'", len(products), temporada), products)

	case hasQuery(c, "hectareasMin") || hasQuery(c, "hectareasMax"):
		min, err := optionalFloat(c, "hectareasMin")
		if err != nil {
			pc.respondError(c, http.StatusBadRequest, CodeValidation, "hectareasMin must be a number", nil)
			return
		}
		max, err := optionalFloat(c, "hectareasMax")
		if err != nil {
			pc.respondError(c, http.StatusBadRequest, CodeValidation, "hectareasMax must be a number", nil)
			return
		}
		products := pc.productService.FindByHectareRange(min, max)
		pc.respond(c, http.StatusOK, fmt.Sprintf("Found %d products in the hectare range", len(products)), products)

	default:
		pc.respond(c, http.StatusOK, "Products retrieved successfully", pc.productService.List())
	}
}

// Get handles the HTTP GET request for retrieving a product by ID.
func (pc *ProductController) Get(c *gin.Context) {
	product, err := pc.productService.Get(c.Param("id"))
	if err != nil {
		pc.renderFailure(c, err)
		return
	}
	pc.respond(c, http.StatusOK, "Product found", product)
}

// Create handles the HTTP POST request for creating a new product.
func (pc *ProductController) Create(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		pc.respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	created, err := pc.productService.Create(product)
	if err != nil {
		pc.renderFailure(c, err)
		return
	}
	pc.respond(c, http.StatusCreated, "Product created successfully", created)
}

// Update handles the HTTP PUT request for replacing a product's mutable fields.
func (pc *ProductController) Update(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		pc.respondError(c, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	updated, err := pc.productService.Update(c.Param("id"), product)
	if err != nil {
		pc.renderFailure(c, err)
		return
	}
	pc.respond(c, http.StatusOK, "Product updated successfully", updated)
}

// Delete handles the HTTP DELETE request for deleting a product by ID. The
// delete cascades to the product's harvests.
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.productService.Delete(c.Param("id")); err != nil {
		pc.renderFailure(c, err)
		return
	}
	pc.respond(c, http.StatusOK, "Product deleted successfully", nil)
}

// Stats handles the HTTP GET request for the system statistics endpoint.
func (pc *ProductController) Stats(c *gin.Context) {
	pc.respond(c, http.StatusOK, "System statistics", pc.productService.Stats())
}

func hasQuery(c *gin.Context, key string) bool {
	_, present := c.GetQuery(key)
	return present
}

func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
