package jobs

import (
	"context"

	"go.uber.org/zap"

	"bundle-inventory.GO/core/app"
	"bundle-inventory.GO/cron"
)

const BundleAuditJob = "bundle_source_audit"

func init() {
	cron.Register(BundleAuditJob, "@every 1h", RunBundleAudit)
}

// RunBundleAudit reports ship-together bundles whose children drifted apart on sources.
func RunBundleAudit(ctx context.Context, a *app.App, _ ...string) error {
	violations, err := a.Bundles.Audit(ctx)
	if err != nil {
		return err
	}
	for _, v := range violations {
		a.Log.Warn("bundle source drift",
			zap.String("bundle_sku", v.BundleSKU),
			zap.String("sku", v.ChildSKU),
			zap.String("source_code", v.SourceCode),
			zap.Strings("missing_on", v.MissingOn),
		)
	}
	return nil
}
