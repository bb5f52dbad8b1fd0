package graphql_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-inventory.GO/api/apitest"
)

type gqlResponse struct {
	Data struct {
		Extension *string `json:"_extension"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func extension(t *testing.T, srv *apitest.Server, name, args string) gqlResponse {
	t.Helper()
	rec := srv.Do(t, http.MethodPost, "/graphql", map[string]interface{}{
		"query":     `query ($name: String!, $args: String) { _extension(name: $name, args: $args) }`,
		"variables": map[string]interface{}{"name": name, "args": args},
	})
	apitest.StatusOK(t, rec)
	var resp gqlResponse
	apitest.Decode(t, rec, &resp)
	return resp
}

func TestGraphQLCheckSourceAssignment(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Catalog.LinkChild(t, srv.DB, "bundle-ship-together", "SKU-4")

	rec := srv.Do(t, http.MethodPost, "/graphql", map[string]interface{}{
		"query": `{ checkSourceAssignment(bundleSku: "bundle-ship-together", sku: "SKU-4", sourceCodes: ["eu-1", "eu-2"]) { allowed message } }`,
	})
	apitest.StatusOK(t, rec)
	assert.JSONEq(t, `{"data":{"checkSourceAssignment":{"allowed":false,"message":"Not able to assign \"eu-1\" to product \"SKU-4\""}}}`, rec.Body.String())
}

func TestGraphQLExtensions(t *testing.T) {
	srv := apitest.NewServer(t)

	resp := extension(t, srv, "ping", "")
	require.Empty(t, resp.Errors)
	require.NotNil(t, resp.Data.Extension)
	assert.JSONEq(t, `{"pong":"ok"}`, *resp.Data.Extension)

	resp = extension(t, srv, "bundleAudit", `{"bundle_sku": "bundle-ship-together"}`)
	require.Empty(t, resp.Errors)
	var violations []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(*resp.Data.Extension), &violations))
	require.Len(t, violations, 1)
	assert.Equal(t, "eu-1", violations[0]["source_code"])

	resp = extension(t, srv, "bundleChildAssignments", `{"bundle_sku": "bundle-ship-together"}`)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"SKU-1":["eu-1","eu-2"],"SKU-3":["eu-2"]}`, *resp.Data.Extension)

	resp = extension(t, srv, "nope", "")
	require.NotEmpty(t, resp.Errors)
}
