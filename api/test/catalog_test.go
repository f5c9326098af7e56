package test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irsalhamdi/harmoni-music/core/course"
	"github.com/irsalhamdi/harmoni-music/core/product"
)

func TestCatalogAccess(t *testing.T) {
	env, err := NewTestEnv(t, "catalog_test")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	env.Register(t, "Budi", "budi@example.com", "secret1")
	member := env.Login(t, "budi@example.com", "secret1")
	admin := env.Login(t, adminEmail, adminPass)

	cn := map[string]any{
		"title":      "Jazz Piano",
		"instructor": "Sarah Johnson",
		"level":      course.LevelAdvanced,
		"instrument": course.InstrumentPiano,
		"price":      2750000,
		"duration":   "10 weeks",
	}

	if code := env.Do(t, http.MethodPost, "/courses", "", cn, nil); code != http.StatusUnauthorized {
		t.Fatalf("guest create: expected 401, got %d", code)
	}
	if code := env.Do(t, http.MethodPost, "/courses", member, cn, nil); code != http.StatusForbidden {
		t.Fatalf("member create: expected 403, got %d", code)
	}

	var c course.Course
	if code := env.Do(t, http.MethodPost, "/courses", admin, cn, &c); code != http.StatusCreated {
		t.Fatalf("admin create: status %d", code)
	}
	if c.ID != 6 {
		t.Fatalf("expected id 6 after the five default courses, got %d", c.ID)
	}

	up := map[string]any{"price": 2500000}
	if code := env.Do(t, http.MethodPut, "/courses/6", member, up, nil); code != http.StatusForbidden {
		t.Fatalf("member update: expected 403, got %d", code)
	}
	if code := env.Do(t, http.MethodPut, "/courses/6", admin, up, &c); code != http.StatusOK {
		t.Fatalf("admin update: status %d", code)
	}
	if c.Price != 2500000 {
		t.Fatalf("price not updated: %+v", c)
	}

	var list []course.Course
	if code := env.Do(t, http.MethodGet, "/courses?instrument=Piano", "", nil, &list); code != http.StatusOK {
		t.Fatalf("list: status %d", code)
	}
	ids := make([]int, len(list))
	for i, c := range list {
		ids[i] = c.ID
	}
	if diff := cmp.Diff([]int{1, 6}, ids); diff != "" {
		t.Fatalf("piano courses (-want +got):\n%s", diff)
	}

	if code := env.Do(t, http.MethodDelete, "/courses/6", admin, nil, nil); code != http.StatusNoContent {
		t.Fatalf("admin delete: status %d", code)
	}
	if code := env.Do(t, http.MethodGet, "/courses/6", "", nil, nil); code != http.StatusNotFound {
		t.Fatalf("deleted course: expected 404, got %d", code)
	}
	if code := env.Do(t, http.MethodDelete, "/courses/6", admin, nil, nil); code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", code)
	}

	var p product.Product
	if code := env.Do(t, http.MethodGet, "/products/2", "", nil, &p); code != http.StatusOK {
		t.Fatalf("product detail: status %d", code)
	}
	if p.Brand != "Roland" {
		t.Fatalf("unexpected product %+v", p)
	}

	bad := map[string]any{"name": "Kazoo", "category": "Kazoo", "brand": "Yamaha", "price": 10000}
	if code := env.Do(t, http.MethodPost, "/products", admin, bad, nil); code != http.StatusBadRequest {
		t.Fatalf("invalid category: expected 400, got %d", code)
	}
}
