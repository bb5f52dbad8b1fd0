package bundle_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-inventory.GO/api/apitest"
	"bundle-inventory.GO/core/testutil"
)

type option struct {
	OptionID     uint `json:"option_id"`
	ProductLinks []struct {
		SKU string  `json:"sku"`
		Qty float64 `json:"qty"`
	} `json:"product_links"`
}

func linkPath(srv *apitest.Server, bundleSKU string) string {
	return fmt.Sprintf("/api/V1/bundle-products/%s/links/%d", bundleSKU, srv.Catalog.Options[bundleSKU])
}

func TestOptionsAll(t *testing.T) {
	srv := apitest.NewServer(t)

	rec := srv.Do(t, http.MethodGet, "/api/V1/bundle-products/"+testutil.BundleTogether+"/options/all", nil)
	apitest.StatusOK(t, rec)
	var options []option
	apitest.Decode(t, rec, &options)
	require.Len(t, options, 1)
	require.Len(t, options[0].ProductLinks, 2)
	assert.Equal(t, "SKU-1", options[0].ProductLinks[0].SKU)

	rec = srv.Do(t, http.MethodGet, "/api/V1/bundle-products/SKU-1/options/all", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddAndRemoveLink(t *testing.T) {
	srv := apitest.NewServer(t)
	body := map[string]interface{}{"linkedProduct": map[string]interface{}{"sku": "SKU-4", "qty": 2, "position": 3}}

	rec := srv.Do(t, http.MethodPost, linkPath(srv, testutil.BundleTogether), body)
	apitest.StatusOK(t, rec)
	var id uint
	apitest.Decode(t, rec, &id)
	assert.NotZero(t, id)

	rec = srv.Do(t, http.MethodPost, linkPath(srv, testutil.BundleTogether), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.Do(t, http.MethodGet, "/api/V1/bundle-products/"+testutil.BundleTogether+"/options/all", nil)
	var options []option
	apitest.Decode(t, rec, &options)
	require.Len(t, options[0].ProductLinks, 3)
	assert.Equal(t, 2.0, options[0].ProductLinks[2].Qty)

	rec = srv.Do(t, http.MethodDelete, fmt.Sprintf("/api/V1/bundle-products/%s/options/%d/children/SKU-4",
		testutil.BundleTogether, srv.Catalog.Options[testutil.BundleTogether]), nil)
	apitest.StatusOK(t, rec)
	assert.JSONEq(t, `true`, rec.Body.String())
}

func TestAddLink_Errors(t *testing.T) {
	srv := apitest.NewServer(t)

	rec := srv.Do(t, http.MethodPost, linkPath(srv, testutil.BundleTogether), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.Do(t, http.MethodPost, "/api/V1/bundle-products/"+testutil.BundleTogether+"/links/abc",
		map[string]interface{}{"linkedProduct": map[string]interface{}{"sku": "SKU-4"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.Do(t, http.MethodPost, "/api/V1/bundle-products/"+testutil.BundleTogether+"/links/99999",
		map[string]interface{}{"linkedProduct": map[string]interface{}{"sku": "SKU-4"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateSourceAssignments(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Catalog.LinkChild(t, srv.DB, testutil.BundleTogether, "SKU-4")
	path := "/api/V1/bundle-products/" + testutil.BundleTogether + "/children/SKU-4/source-assignments/validate"

	var res struct {
		Allowed bool   `json:"allowed"`
		Message string `json:"message"`
	}
	rec := srv.Do(t, http.MethodPost, path, map[string]interface{}{"source_codes": []string{"eu-1", "eu-2"}})
	apitest.StatusOK(t, rec)
	apitest.Decode(t, rec, &res)
	assert.False(t, res.Allowed)
	assert.Equal(t, `Not able to assign "eu-1" to product "SKU-4"`, res.Message)

	rec = srv.Do(t, http.MethodPost, path, map[string]interface{}{"source_codes": []string{"eu-2"}})
	apitest.StatusOK(t, rec)
	res.Message = ""
	apitest.Decode(t, rec, &res)
	assert.True(t, res.Allowed)
	assert.Empty(t, res.Message)

	rec = srv.Do(t, http.MethodPost, path, map[string]interface{}{"source_codes": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.Do(t, http.MethodPost, "/api/V1/bundle-products/"+testutil.BundleTogether+"/children/SKU-2/source-assignments/validate",
		map[string]interface{}{"source_codes": []string{"eu-2"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
