package pets

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// -------------------------
// Repo que siempre falla (storage caído)
// -------------------------

var errStorageDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, p Pet) error          { return errStorageDown }
func (failingRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	return Pet{}, errStorageDown
}
func (failingRepo) Update(ctx context.Context, p Pet) error  { return errStorageDown }
func (failingRepo) Delete(ctx context.Context, id string) error { return errStorageDown }
func (failingRepo) List(ctx context.Context, f Filter) ([]Pet, error) {
	return nil, errStorageDown
}

func newPetsRouter(repo Repository) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo))
	return r
}

func TestCreatePetHandler_StorageFailureIsOpaque500(t *testing.T) {
	r := newPetsRouter(failingRepo{})

	body := `{"name":"Buddy","animalType":"Dog","ownerName":"Jane Smith","dob":"2019-03-10"}`
	req := httptest.NewRequest(http.MethodPost, "/pets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for storage failure, got %d body=%s", rec.Code, rec.Body.String())
	}
	got := strings.TrimSpace(rec.Body.String())
	if got != "internal error" {
		t.Fatalf("expected opaque body, got %q", got)
	}
	// el detalle del driver nunca viaja al cliente
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("storage detail leaked to client: %s", rec.Body.String())
	}
}

func TestCreatePetHandler_InvalidInputStays400(t *testing.T) {
	// la validación corre antes de tocar el repo: aun con el storage
	// caído, un body incompleto es un error del cliente
	r := newPetsRouter(failingRepo{})

	body := `{"name":"Buddy","animalType":"Dog","dob":"2019-03-10"}` // sin ownerName
	req := httptest.NewRequest(http.MethodPost, "/pets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid input, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListPetsHandler_StorageFailureIsOpaque500(t *testing.T) {
	r := newPetsRouter(failingRepo{})

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for storage failure, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "internal error" {
		t.Fatalf("expected opaque body, got %q", rec.Body.String())
	}
}
