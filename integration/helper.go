package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unibague/agropecuario-api/internal/config"
	httpAPI "github.com/unibague/agropecuario-api/internal/http"
	"github.com/unibague/agropecuario-api/internal/http/controller"
	"github.com/unibague/agropecuario-api/internal/repository/memory"
	"github.com/unibague/agropecuario-api/internal/service"
)

// TestAPI bundles a fully wired router with direct access to the
// repositories behind it.
type TestAPI struct {
	Router   *gin.Engine
	Products *memory.ProductRepository
	Harvests *memory.HarvestRepository
}

// SetupTestAPI wires repositories, services, controllers and router exactly
// like cmd/api-server does, optionally loading the demo seed data.
func SetupTestAPI(t *testing.T, seed bool) *TestAPI {
	t.Helper()

	productRepo := memory.NewProductRepository()
	harvestRepo := memory.NewHarvestRepository()
	if seed {
		if err := memory.Seed(productRepo, harvestRepo); err != nil {
			t.Fatalf("Could not seed repositories: %s", err)
		}
	}

	productService, harvestService := service.NewServices(productRepo, harvestRepo)

	gin.SetMode(gin.TestMode)
	conf := &config.Config{Timezone: time.UTC}
	base := controller.New(conf)
	productCtr := controller.NewProductController(base, productService)
	harvestCtr := controller.NewHarvestController(base, harvestService)
	router := httpAPI.InitRouter(gin.New(), base, productCtr, harvestCtr)

	return &TestAPI{
		Router:   router,
		Products: productRepo,
		Harvests: harvestRepo,
	}
}

// Do performs a request against the router and returns the recorder.
func (api *TestAPI) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Could not encode request body: %s", err)
		}
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.Router.ServeHTTP(w, req)
	return w
}

// Envelope mirrors the response envelope for decoding in assertions.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`
	Details   json.RawMessage `json:"details"`
	Timestamp string          `json:"timestamp"`
}

// Decode unmarshals a recorded response into an Envelope.
func Decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("Could not decode response envelope: %s\nBody: %s", err, w.Body.String())
	}
	return env
}

// DecodeData unmarshals the envelope's data payload into target.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, target any) Envelope {
	t.Helper()

	env := Decode(t, w)
	if err := json.Unmarshal(env.Data, target); err != nil {
		t.Fatalf("Could not decode response data: %s\nData: %s", err, string(env.Data))
	}
	return env
}
