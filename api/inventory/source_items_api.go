package inventory

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bundle-inventory.GO/api"
	inventoryEntity "bundle-inventory.GO/model/entity/inventory"
)

func init() {
	api.RegisterModule(RegisterSourceItemRoutes)
}

type sourceItemInput struct {
	SourceCode string          `json:"source_code" validate:"required"`
	SKU        string          `json:"sku" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	Status     *uint8          `json:"status" validate:"required,oneof=0 1"`
}

type sourceItemsRequest struct {
	SourceItems []sourceItemInput `json:"sourceItems" validate:"required,min=1,dive"`
}

type sourceItemKey struct {
	SourceCode string `json:"source_code" validate:"required"`
	SKU        string `json:"sku" validate:"required"`
}

type sourceItemsDeleteRequest struct {
	SourceItems []sourceItemKey `json:"sourceItems" validate:"required,min=1,dive"`
}

// RegisterSourceItemRoutes mounts the MSI source item endpoints under /V1/inventory.
func RegisterSourceItemRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/V1/inventory")

	// POST /api/V1/inventory/source-items – validated bulk upsert
	g.POST("/source-items", func(c echo.Context) error {
		var body sourceItemsRequest
		if err := c.Bind(&body); err != nil {
			return err
		}
		if err := c.Validate(&body); err != nil {
			return err
		}
		items := make([]inventoryEntity.InventorySourceItem, 0, len(body.SourceItems))
		for _, in := range body.SourceItems {
			items = append(items, inventoryEntity.InventorySourceItem{
				SourceCode: in.SourceCode,
				SKU:        in.SKU,
				Quantity:   in.Quantity,
				Status:     *in.Status,
			})
		}
		if err := d.SourceItems.SaveSourceItems(c.Request().Context(), items); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, []interface{}{})
	})

	// POST /api/V1/inventory/source-items-delete
	g.POST("/source-items-delete", func(c echo.Context) error {
		var body sourceItemsDeleteRequest
		if err := c.Bind(&body); err != nil {
			return err
		}
		if err := c.Validate(&body); err != nil {
			return err
		}
		items := make([]inventoryEntity.InventorySourceItem, 0, len(body.SourceItems))
		for _, in := range body.SourceItems {
			items = append(items, inventoryEntity.InventorySourceItem{SourceCode: in.SourceCode, SKU: in.SKU})
		}
		if err := d.SourceItems.DeleteSourceItems(c.Request().Context(), items); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, []interface{}{})
	})

	// GET /api/V1/inventory/source-items?searchCriteria[...]
	g.GET("/source-items", func(c echo.Context) error {
		criteria, err := ParseSearchCriteria(c.QueryParams())
		if err != nil {
			return err
		}
		res, err := d.SourceItems.GetList(c.Request().Context(), criteria)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	})
}
