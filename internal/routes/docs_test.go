package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterDocsServesEndpointListing(t *testing.T) {
	app := fiber.New()
	RegisterDocs(app)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Title     string        `json:"title"`
		Endpoints []docEndpoint `json:"endpoints"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Title == "" {
		t.Fatal("expected a title")
	}
	if len(payload.Endpoints) != len(docEndpoints) {
		t.Fatalf("expected %d endpoints, got %d", len(docEndpoints), len(payload.Endpoints))
	}

	for _, e := range payload.Endpoints {
		if e.Method == "" || e.Path == "" || e.Description == "" {
			t.Fatalf("incomplete endpoint entry: %+v", e)
		}
	}
}
