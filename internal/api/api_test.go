package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/miloosorio186/dashboard-tech/internal/api"
	"github.com/miloosorio186/dashboard-tech/internal/config"
	"github.com/miloosorio186/dashboard-tech/internal/metrics"
	"github.com/miloosorio186/dashboard-tech/internal/mocks"
	"github.com/miloosorio186/dashboard-tech/internal/models"
	"github.com/miloosorio186/dashboard-tech/internal/state"
)

func setupTestRouter() (*gin.Engine, *mocks.MockGateway, *state.Store) {
	gin.SetMode(gin.TestMode)

	gw := mocks.NewMockGateway()
	gw.UsersFunc = func(ctx context.Context) ([]models.User, error) {
		return []models.User{
			{ID: 1, FirstName: "Emily", LastName: "Johnson", Company: models.Company{Title: "Sales Manager"}},
			{ID: 2, FirstName: "Michael", LastName: "Williams", Company: models.Company{Title: "Support Specialist"}},
		}, nil
	}
	gw.ProductsFunc = func(ctx context.Context) ([]models.Product, error) {
		return []models.Product{
			{ID: 1, Title: "Essence Mascara", Category: "beauty", Price: 9.99, Rating: 4.5, Stock: 5},
			{ID: 2, Title: "Powder Canister", Category: "fragrances", Price: 14.99, Rating: 4.1, Stock: 59},
		}, nil
	}
	gw.CartsFunc = func(ctx context.Context) ([]models.Cart, error) {
		return []models.Cart{
			{ID: 1, Total: 2328, DiscountedTotal: 2202, UserID: 33, TotalProducts: 4},
		}, nil
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	store := state.NewStore(gw, &config.StateConfig{RefreshMinVisible: 0}, collector, zerolog.Nop())
	router := api.NewRouter(store, collector, reg, zerolog.Nop())

	return router, gw, store
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "dashboard-tech" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestGetView_WhileLoading(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before the initial load, got %d", w.Code)
	}
}

func TestGetView_AfterLoad(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	req := httptest.NewRequest("GET", "/v1/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var view state.View
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("Response does not decode: %v", err)
	}
	if view.Phase != state.PhaseReady {
		t.Errorf("Expected ready phase, got %s", view.Phase)
	}
	if view.AgentCount != 2 || view.InventoryCount != 2 {
		t.Errorf("Unexpected counts: %d agents, %d products", view.AgentCount, view.InventoryCount)
	}
	if view.Revenue != 2202 {
		t.Errorf("Expected revenue 2202, got %f", view.Revenue)
	}
	if len(view.Categories) != 2 {
		t.Errorf("Expected 2 category buckets, got %d", len(view.Categories))
	}
}

func TestSelectSection(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	body := bytes.NewBufferString(`{"section":"inventory"}`)
	req := httptest.NewRequest("POST", "/v1/state/section", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.ActiveSection() != state.SectionInventory {
		t.Errorf("Expected inventory section, got %s", store.ActiveSection())
	}
}

func TestSelectSection_UnknownRejected(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	body := bytes.NewBufferString(`{"section":"billing"}`)
	req := httptest.NewRequest("POST", "/v1/state/section", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown section, got %d", w.Code)
	}
	if store.ActiveSection() != state.SectionOverview {
		t.Errorf("Rejected selection must not change state, got %s", store.ActiveSection())
	}
}

func TestSelectSection_WhileLoading(t *testing.T) {
	router, _, _ := setupTestRouter()

	body := bytes.NewBufferString(`{"section":"inventory"}`)
	req := httptest.NewRequest("POST", "/v1/state/section", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 while loading, got %d", w.Code)
	}
}

func TestSetSearchQuery_FiltersView(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	body := bytes.NewBufferString(`{"query":"beauty"}`)
	req := httptest.NewRequest("POST", "/v1/state/query", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/v1/view", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var view state.View
	json.Unmarshal(w.Body.Bytes(), &view)
	if len(view.Products) != 1 || view.Products[0].Category != "beauty" {
		t.Errorf("Expected only the beauty product in the view, got %v", view.Products)
	}
	// unfiltered collections stay reachable via the snapshot
	if store.Snapshot() == nil || len(store.Snapshot().Products) != 2 {
		t.Error("Snapshot must keep the unfiltered collections")
	}
}

func TestRefreshEndpoint(t *testing.T) {
	router, gw, store := setupTestRouter()
	store.Load(context.Background())

	req := httptest.NewRequest("POST", "/v1/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected status 202, got %d", w.Code)
	}

	// the refresh runs detached; wait for it to settle
	deadline := time.Now().Add(2 * time.Second)
	for store.RefreshInProgress() || atomic.LoadInt64(&gw.UsersCalls) < 2 {
		if time.Now().After(deadline) {
			t.Fatal("Refresh did not settle")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRefreshEndpoint_WhileLoading(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("POST", "/v1/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 while loading, got %d", w.Code)
	}
}

func TestExportDownload_Inventory(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	req := httptest.NewRequest("GET", "/v1/exports/inventory", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Expected spreadsheet content type, got %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment; filename=inventory_export_") || !strings.HasSuffix(cd, ".xlsx") {
		t.Errorf("Unexpected content disposition: %s", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("Export payload should not be empty")
	}
}

func TestExportDownload_Transactions(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	req := httptest.NewRequest("GET", "/v1/exports/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Order #1 | User: 33 | Items: 4 | Total: $2202.00") {
		t.Errorf("Unexpected transactions payload: %q", w.Body.String())
	}
}

func TestExportDownload_UnknownSubject(t *testing.T) {
	router, _, store := setupTestRouter()
	store.Load(context.Background())

	req := httptest.NewRequest("GET", "/v1/exports/payroll", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown subject, got %d", w.Code)
	}
}

func TestExportDownload_WhileLoading(t *testing.T) {
	router, _, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/exports/inventory", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 while loading, got %d", w.Code)
	}
}
