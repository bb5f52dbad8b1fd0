package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bundle-inventory.GO/core/metrics"
	"bundle-inventory.GO/core/testutil"
	"bundle-inventory.GO/service"
	"bundle-inventory.GO/service/bundle"
	"bundle-inventory.GO/service/inventory"
)

func TestRegistry_Register_Apply(t *testing.T) {
	RegisterGET("/test/registry/check", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	e := echo.New()
	ApplyRoutes(e, &Deps{DB: testutil.NewDB(t), Metrics: metrics.New(false)})

	for _, path := range []string{"/test/registry/check", "/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&bundle.RejectedAssignmentError{SourceCode: "eu-1", SKU: "SKU-4"}, http.StatusBadRequest},
		{&bundle.NotAChildError{BundleSKU: "b", SKU: "x"}, http.StatusBadRequest},
		{service.InvalidInputf("bad"), http.StatusBadRequest},
		{bundle.ErrAlreadyLinked, http.StatusBadRequest},
		{&service.NotFoundError{Entity: "bundle product", Key: "x"}, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", &inventory.SourceNotFoundError{SourceCode: "x"}), http.StatusNotFound},
		{echo.NewHTTPError(http.StatusUnsupportedMediaType, "nope"), http.StatusUnsupportedMediaType},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(zap.NewNop())
	e.GET("/rejected", func(c echo.Context) error {
		return &bundle.RejectedAssignmentError{SourceCode: "eu-1", SKU: "SKU-4"}
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("db password leaked")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rejected", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, `Not able to assign "eu-1" to product "SKU-4"`, body["message"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRequestValidator(t *testing.T) {
	type payload struct {
		SKU string `json:"sku" validate:"required"`
	}
	err := NewValidator().Validate(&payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'sku'")
	assert.Equal(t, http.StatusBadRequest, StatusFor(err))
}
