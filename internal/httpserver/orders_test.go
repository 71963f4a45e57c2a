package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderdesk/internal/domain"
	usersvc "orderdesk/internal/service/user"
	"github.com/gin-gonic/gin"
)

func TestReceiveOrderHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	deps := testDeps()
	deps.OrderSvc = &stubOrderService{
		aggregate: &domain.OrderWithItems{
			Order: domain.Order{ID: 1, CustomerID: 3, AddressID: 5, CreatedAt: createdAt, Status: domain.StatusNotDelivered},
			Items: map[int64]domain.OrderItem{
				10: {ItemID: 10, OrderID: 1, ProductID: 7, Quantity: 2, CreatedAt: createdAt},
				11: {ItemID: 11, OrderID: 1, ProductID: 9, Quantity: 1, CreatedAt: createdAt},
			},
		},
	}
	router := buildRouter(logDiscard(), nil, deps, "*")

	body := `{"customerId":3,"addressId":5,"products":{"7":2,"9":1}}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := rec.Body.String()
	if !strings.Contains(got, `"deliveredStatus":"notDelivered"`) {
		t.Fatalf("missing status in body: %s", got)
	}
	if !strings.Contains(got, `"items"`) || !strings.Contains(got, `"10"`) {
		t.Fatalf("items not keyed by line-item id: %s", got)
	}
}

func TestReceiveOrderHandler_Malformed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.OrderSvc = &stubOrderService{err: domain.ErrMalformedRequest}
	router := buildRouter(logDiscard(), nil, deps, "*")

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"note":"nothing useful"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateOrderHandler_ImmutableCreatedAt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.OrderRepo = &stubOrderReader{updateErr: domain.ErrImmutableField}
	router := buildRouter(logDiscard(), nil, deps, "*")

	req := httptest.NewRequest(http.MethodPatch, "/orders/1", strings.NewReader(`{"createdAt":"2026-01-01T00:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.OrderRepo = &stubOrderReader{err: domain.ErrNotFound}
	router := buildRouter(logDiscard(), nil, deps, "*")

	req := httptest.NewRequest(http.MethodGet, "/orders/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddItemsHandler_Batch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	createdAt := time.Now().UTC()
	deps := testDeps()
	deps.OrderSvc = &stubOrderService{
		items: map[int64]domain.OrderItem{
			10: {ItemID: 10, OrderID: 1, ProductID: 7, Quantity: 2, CreatedAt: createdAt},
		},
	}
	router := buildRouter(logDiscard(), nil, deps, "*")

	req := httptest.NewRequest(http.MethodPost, "/orders/1/items", strings.NewReader(`{"products":{"7":2}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddItemsHandler_RejectsNonPositiveQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, testDeps(), "*")

	req := httptest.NewRequest(http.MethodPost, "/orders/1/items", strings.NewReader(`{"productId":7,"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{err: usersvc.ErrInvalidCredentials}
	router := buildRouter(logDiscard(), nil, deps, "*")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ada","password":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRegisterAddressHandler_ReturnsResolvedRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AddressSvc = &stubRegistrar{
		address: &domain.Address{ID: 8, Country: "US", City: "Demoville", Street: "100 Demo Street", CustomerID: 3},
	}
	router := buildRouter(logDiscard(), nil, deps, "*")

	body := `{"country":"US","city":"Demoville","street":"100 Demo Street","customerId":3}`
	req := httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"id":8`) {
		t.Fatalf("resolved row not returned: %s", rec.Body.String())
	}
}
