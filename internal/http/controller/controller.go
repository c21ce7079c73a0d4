package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unibague/agropecuario-api/internal/config"
	"github.com/unibague/agropecuario-api/internal/model"
	"github.com/unibague/agropecuario-api/internal/repository"
	"github.com/unibague/agropecuario-api/internal/service"
	"github.com/unibague/agropecuario-api/internal/validation"
)

// Error codes carried by error envelopes.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeIntegrityViolation = "REFERENTIAL_INTEGRITY_VIOLATION"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// Response is the envelope wrapping every successful API response.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the envelope wrapping every failed API response.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Controller carries the shared response-rendering state of all controllers.
type Controller struct {
	timezone *time.Location
}

// New creates the base Controller from the application configuration.
func New(conf *config.Config) *Controller {
	return &Controller{timezone: conf.Timezone}
}

// Test handles the liveness probe endpoint.
func (ct *Controller) Test(c *gin.Context) {
	ct.respond(c, http.StatusOK, "Controller working correctly", nil)
}

func (ct *Controller) timestamp() string {
	return time.Now().In(ct.timezone).Format(model.LocalTimeLayout)
}

func (ct *Controller) respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: ct.timestamp(),
	})
}

func (ct *Controller) respondError(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     code,
		Message:   message,
		Details:   details,
		Timestamp: ct.timestamp(),
	})
}

// renderFailure maps a service/store failure onto the HTTP error contract:
// 404 for missing entities, 409 for duplicates and integrity violations,
// 400 for validation, 500 otherwise.
func (ct *Controller) renderFailure(c *gin.Context, err error) {
	var violations validation.Violations
	var duplicate *repository.DuplicateIDError

	switch {
	case errors.As(err, &violations):
		ct.respondError(c, http.StatusBadRequest, CodeValidation, "validation failed", violations)
	case errors.As(err, &duplicate):
		ct.respondError(c, http.StatusConflict, CodeAlreadyExists, duplicate.Error(), nil)
	case errors.Is(err, service.ErrHarvestNotOwned):
		ct.respondError(c, http.StatusConflict, CodeIntegrityViolation, err.Error(), nil)
	case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrHarvestNotFound):
		ct.respondError(c, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	default:
		ct.respondError(c, http.StatusInternalServerError, CodeInternal, "unexpected error", nil)
	}
}
