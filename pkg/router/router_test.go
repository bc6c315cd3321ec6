package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterMatchesNamedParams(t *testing.T) {
	r := New()

	var gotID string
	r.GET("/api/v1/datasets/:id", func(w http.ResponseWriter, req *http.Request) {
		gotID = Param(req, "id")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/abc-123", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if gotID != "abc-123" {
		t.Errorf("Param(id) = %q; want abc-123", gotID)
	}
}

func TestRouterPrefersRegisteredSubpaths(t *testing.T) {
	r := New()

	var hit string
	r.GET("/api/v1/datasets/:id/summary", func(w http.ResponseWriter, req *http.Request) { hit = "summary" })
	r.GET("/api/v1/datasets/:id", func(w http.ResponseWriter, req *http.Request) { hit = "get" })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/abc/summary", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if hit != "summary" {
		t.Errorf("dispatched to %q; want summary", hit)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/datasets/abc", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if hit != "get" {
		t.Errorf("dispatched to %q; want get", hit)
	}
}

func TestRouterNotFoundVsMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d; want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/datasets", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("wrong method status = %d; want 405", rec.Code)
	}
}

func TestRouterMountedPrefix(t *testing.T) {
	r := New()
	r.Mount("/swagger/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Errorf("mounted handler status = %d; want it to handle the request", rec.Code)
	}
}

func TestParamWithoutMatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if got := Param(req, "id"); got != "" {
		t.Errorf("Param on bare request = %q; want empty", got)
	}
}
