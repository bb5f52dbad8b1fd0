// Package apitest wires a complete HTTP server over a seeded SQLite catalog for handler tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bundle-inventory.GO/api"
	_ "bundle-inventory.GO/api/bundle"
	_ "bundle-inventory.GO/api/graphql"
	_ "bundle-inventory.GO/api/inventory"
	"bundle-inventory.GO/core/cache"
	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/core/testutil"
	"bundle-inventory.GO/service/bundle"
	"bundle-inventory.GO/service/inventory"
)

type Server struct {
	Echo    *echo.Echo
	DB      *gorm.DB
	Catalog *testutil.Catalog
	Deps    *api.Deps
}

// NewServer seeds a fresh catalog and builds the server around it.
func NewServer(t testing.TB) *Server {
	t.Helper()
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	log := zap.NewNop()
	m := metrics.New(false)
	bundles := bundle.NewService(db, bundle.NewStructureCache(nil, cache.NewCache(), time.Minute, log), m, log)
	deps := &api.Deps{
		DB:          db,
		Log:         log,
		Metrics:     m,
		Bundles:     bundles,
		SourceItems: inventory.NewService(db, bundles, m, log),
	}
	return &Server{Echo: api.NewServer(deps), DB: db, Catalog: cat, Deps: deps}
}

// Do sends a request with an optional JSON body.
func (s *Server) Do(t testing.TB, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals the recorded JSON body into v.
func Decode(t testing.TB, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

// StatusOK fails the test unless rec has status 200.
func StatusOK(t testing.TB, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}
