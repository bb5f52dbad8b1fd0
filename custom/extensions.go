// Package custom registers _extension resolvers for the GraphQL API.
package custom

import (
	"context"
	"errors"

	"bundle-inventory.GO/graphql"
	gqlregistry "bundle-inventory.GO/graphql/registry"
	"bundle-inventory.GO/service/bundle"
)

var errNoServices = errors.New("extension called without services")

type bundleArgs struct {
	BundleSKU string `mapstructure:"bundle_sku"`
}

func init() {
	gqlregistry.Register("ping", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	// _extension(name: "bundleAudit", args: "{\"bundle_sku\": \"...\"}"); bundle_sku is optional.
	gqlregistry.Register("bundleAudit", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		s := graphql.ServicesFromContext(ctx)
		if s == nil {
			return nil, errNoServices
		}
		var in bundleArgs
		if err := gqlregistry.DecodeArgs(args, &in); err != nil {
			return nil, err
		}
		violations, err := s.Bundles.Audit(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]bundle.Violation, 0, len(violations))
		for _, v := range violations {
			if in.BundleSKU == "" || v.BundleSKU == in.BundleSKU {
				out = append(out, v)
			}
		}
		return out, nil
	})

	// _extension(name: "bundleChildAssignments", args: "{\"bundle_sku\": \"...\"}")
	gqlregistry.Register("bundleChildAssignments", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		s := graphql.ServicesFromContext(ctx)
		if s == nil {
			return nil, errNoServices
		}
		var in bundleArgs
		if err := gqlregistry.DecodeArgs(args, &in); err != nil {
			return nil, err
		}
		b, err := s.Bundles.FetchBundleProduct(ctx, in.BundleSKU)
		if err != nil {
			return nil, err
		}
		out := make(map[string][]string)
		for _, sku := range b.ChildSKUs() {
			codes, err := s.SourceItems.FetchSourceAssignments(ctx, sku)
			if err != nil {
				return nil, err
			}
			out[sku] = codes
		}
		return out, nil
	})
}
