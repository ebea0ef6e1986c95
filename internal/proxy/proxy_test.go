package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProxyForwardsRequest(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth, gotVersion, gotContentType string
	var gotBody []byte

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"page-1"}`)
	}))
	defer upstream.Close()

	handler := NewHandler(upstream.URL, "/api/notion", "2022-06-28", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/notion/pages?foo=bar", strings.NewReader(`{"parent":{}}`))
	req.Header.Set("Authorization", "Bearer secret_abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if gotMethod != http.MethodPost || gotPath != "/pages" || gotQuery != "foo=bar" {
		t.Fatalf("unexpected upstream request: %s %s?%s", gotMethod, gotPath, gotQuery)
	}
	if gotAuth != "Bearer secret_abc" {
		t.Fatalf("Authorization not preserved: %q", gotAuth)
	}
	if gotVersion != "2022-06-28" {
		t.Fatalf("version header not pinned: %q", gotVersion)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", gotContentType)
	}
	if string(gotBody) != `{"parent":{}}` {
		t.Fatalf("body not forwarded: %s", gotBody)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("upstream status not mirrored: %d", rec.Code)
	}
	if rec.Body.String() != `{"id":"page-1"}` {
		t.Fatalf("upstream body not mirrored: %s", rec.Body.String())
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Fatalf("missing CORS header, got %q", origin)
	}
}

func TestProxyPreflight(t *testing.T) {
	handler := NewHandler("http://127.0.0.1:0", "/api/notion", "2022-06-28", nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/notion/search", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	header := rec.Header()
	if header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing allow-origin header")
	}
	if !strings.Contains(header.Get("Access-Control-Allow-Methods"), "POST") {
		t.Fatalf("unexpected allow-methods: %q", header.Get("Access-Control-Allow-Methods"))
	}
	if header.Get("Access-Control-Allow-Headers") != "*" {
		t.Fatalf("unexpected allow-headers: %q", header.Get("Access-Control-Allow-Headers"))
	}
}

func TestProxyMirrorsUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"code":"unauthorized","message":"API token is invalid."}`)
	}))
	defer upstream.Close()

	handler := NewHandler(upstream.URL, "/api/notion", "2022-06-28", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/notion/search", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("upstream error status not mirrored: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unauthorized") {
		t.Fatalf("upstream error body not mirrored: %s", rec.Body.String())
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("CORS headers must be present on error responses")
	}
}

func TestProxyUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	handler := NewHandler(upstream.URL, "/api/notion", "2022-06-28", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notion/search", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Fatalf("expected JSON error body, got %s", rec.Body.String())
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("CORS headers must be present on gateway errors")
	}
}
