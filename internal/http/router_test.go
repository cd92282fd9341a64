package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "ebus/internal/config"
	"ebus/internal/domain/models"
	"ebus/internal/repositories"
	"ebus/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testRouter(t *testing.T) (*gin.Engine, Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := Deps{
		Routes:   repositories.NewMemoryRouteRepo(),
		Bookings: repositories.NewMemoryBookingRepo(),
		Users:    repositories.NewMemoryUserRepo(),
	}
	if err := (services.CatalogService{Routes: deps.Routes}).SeedIfEmpty(context.Background(), models.DefaultRoutes); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	env := intconfig.Env{
		AppAddr:    ":0",
		JWTSecret:  "test-secret",
		CORSOrigin: []string{"http://localhost:3000"},
	}
	return NewRouter(env, deps), deps
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func firstRouteID(t *testing.T, deps Deps) string {
	t.Helper()
	routes, err := deps.Routes.List(context.Background())
	if err != nil || len(routes) == 0 {
		t.Fatalf("no seeded routes: %v", err)
	}
	return routes[0].ID.Hex()
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t)
	if w := doJSON(t, r, http.MethodGet, "/api/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
}

func TestListRoutesBothPaths(t *testing.T) {
	r, _ := testRouter(t)

	for _, path := range []string{"/api/routes", "/api/bookings/routes"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s = %d", path, w.Code)
		}
		var routes []models.Route
		if err := json.Unmarshal(w.Body.Bytes(), &routes); err != nil {
			t.Fatalf("%s: bad body: %v", path, err)
		}
		if len(routes) != len(models.DefaultRoutes) {
			t.Fatalf("%s: %d routes, want %d", path, len(routes), len(models.DefaultRoutes))
		}
		if routes[0].Destination != "Bahir Dar" {
			t.Fatalf("%s: catalog order lost, first = %s", path, routes[0].Destination)
		}
	}
}

func TestLegacyCreateBooking(t *testing.T) {
	r, deps := testRouter(t)
	routeID := firstRouteID(t, deps)
	userID := primitive.NewObjectID().Hex()

	w := doJSON(t, r, http.MethodPost, "/api/bookings/book", "", map[string]interface{}{
		"userId": userID, "routeId": routeID, "date": "2030-05-01", "quantity": 2, "paymentMethod": "mobile_money",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d body=%s", w.Code, w.Body.String())
	}
	var booking models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &booking); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if booking.Status != models.StatusPending || booking.Price != 1000 {
		t.Fatalf("unexpected booking: status=%s price=%.0f", booking.Status, booking.Price)
	}

	// zero quantity
	w = doJSON(t, r, http.MethodPost, "/api/bookings/book", "", map[string]interface{}{
		"userId": userID, "routeId": routeID, "date": "2030-05-01", "quantity": 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity = %d, want 400", w.Code)
	}

	// unknown route
	w = doJSON(t, r, http.MethodPost, "/api/bookings/book", "", map[string]interface{}{
		"userId": userID, "routeId": "nonexistent-route", "date": "2030-05-01", "quantity": 2,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route = %d, want 404", w.Code)
	}
}

func TestAuthenticatedBookingFlow(t *testing.T) {
	r, deps := testRouter(t)
	routeID := firstRouteID(t, deps)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Abebe", "email": "abebe@example.com", "password": "pass1234",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register = %d body=%s", w.Code, w.Body.String())
	}
	var auth struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &auth); err != nil || auth.Token == "" {
		t.Fatalf("bad register body: %v %s", err, w.Body.String())
	}

	// bearer required
	if w := doJSON(t, r, http.MethodPost, "/api/bookings", "", map[string]interface{}{
		"routeId": routeID, "date": "2030-05-01", "quantity": 1,
	}); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/bookings", auth.Token, map[string]interface{}{
		"routeId": routeID, "date": "2030-05-01", "quantity": 2, "paymentMethod": "card",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d body=%s", w.Code, w.Body.String())
	}
	var booking models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &booking); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if booking.UserID.Hex() != auth.User.ID {
		t.Fatalf("booking user = %s, want token user %s", booking.UserID.Hex(), auth.User.ID)
	}

	// list my bookings
	w = doJSON(t, r, http.MethodGet, "/api/bookings", auth.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var mine []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil || len(mine) != 1 {
		t.Fatalf("list body: %v %s", err, w.Body.String())
	}

	// e-ticket
	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+booking.ID.Hex()+"/ticket", auth.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ticket = %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("ticket content type = %s", ct)
	}

	// me
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", auth.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me = %d", w.Code)
	}
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	r, _ := testRouter(t)

	body := map[string]string{"name": "A", "email": "dup@example.com", "password": "x12345"}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body); w.Code != http.StatusCreated {
		t.Fatalf("first register = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body); w.Code != http.StatusConflict {
		t.Fatalf("second register = %d, want 409", w.Code)
	}
}

func TestUnknownPathReturnsJSON404(t *testing.T) {
	r, _ := testRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown path = %d", w.Code)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("404 body not json: %v", err)
	}
}
