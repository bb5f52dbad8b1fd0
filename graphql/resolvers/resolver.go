package resolvers

import (
	"context"
	"encoding/json"
	"errors"

	"bundle-inventory.GO/graphql"
	"bundle-inventory.GO/graphql/models"
	gqlregistry "bundle-inventory.GO/graphql/registry"
	"bundle-inventory.GO/service/bundle"
)

// QueryResolver is the single resolver for all Query fields.
// New Query fields: use RegisterSchemaExtension + add method on QueryResolver,
// or use _extension for fully dynamic resolvers.
type QueryResolver struct {
	services *graphql.Services
}

func NewQueryResolver(s *graphql.Services) *QueryResolver {
	return &QueryResolver{services: s}
}

func (r *QueryResolver) BundleProduct(ctx context.Context, args graphql.SKUArgs) (*models.BundleProduct, error) {
	b, err := r.services.Bundles.FetchBundleProduct(ctx, args.Sku)
	if err != nil {
		return nil, err
	}
	return mapBundle(b), nil
}

func (r *QueryResolver) SourceItems(ctx context.Context, args graphql.SKUArgs) ([]*models.SourceItem, error) {
	items, err := r.services.SourceItems.GetBySKU(ctx, args.Sku)
	if err != nil {
		return nil, err
	}
	return mapSourceItems(items), nil
}

// CheckSourceAssignment reports a rule rejection as allowed=false; lookup
// failures stay GraphQL errors.
func (r *QueryResolver) CheckSourceAssignment(ctx context.Context, args graphql.CheckSourceAssignmentArgs) (*models.AssignmentCheck, error) {
	err := r.services.Bundles.CheckAssignment(ctx, args.BundleSku, args.Sku, args.SourceCodes)
	var rejected *bundle.RejectedAssignmentError
	switch {
	case err == nil:
		return &models.AssignmentCheck{Allowed: true}, nil
	case errors.As(err, &rejected):
		msg := rejected.Error()
		return &models.AssignmentCheck{Allowed: false, Message: &msg}, nil
	default:
		return nil, err
	}
}

func (r *QueryResolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, err
		}
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := gqlregistry.Resolve(graphql.WithServices(ctx, r.services), args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
