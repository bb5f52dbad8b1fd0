package bundle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bundle-inventory.GO/api"
	"bundle-inventory.GO/service"
	bundleService "bundle-inventory.GO/service/bundle"
)

func init() {
	api.RegisterModule(RegisterBundleRoutes)
}

type linkedProductInput struct {
	SKU               string  `json:"sku" validate:"required"`
	Qty               float64 `json:"qty" validate:"gte=0"`
	Position          uint    `json:"position"`
	Price             float64 `json:"price" validate:"gte=0"`
	PriceType         uint8   `json:"price_type" validate:"oneof=0 1"`
	IsDefault         bool    `json:"is_default"`
	CanChangeQuantity bool    `json:"can_change_quantity"`
}

type addLinkRequest struct {
	LinkedProduct *linkedProductInput `json:"linkedProduct" validate:"required"`
}

type validateRequest struct {
	SourceCodes []string `json:"source_codes" validate:"required,min=1,dive,required"`
}

type validateResponse struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

// RegisterBundleRoutes mounts bundle link and assignment check endpoints under /V1/bundle-products.
func RegisterBundleRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/V1/bundle-products")

	g.GET("/:sku", func(c echo.Context) error {
		b, err := d.Bundles.FetchBundleProduct(c.Request().Context(), c.Param("sku"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, b)
	})

	// GET /api/V1/bundle-products/:sku/options/all
	g.GET("/:sku/options/all", func(c echo.Context) error {
		b, err := d.Bundles.FetchBundleProduct(c.Request().Context(), c.Param("sku"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, b.Options)
	})

	// POST /api/V1/bundle-products/:sku/links/:optionId
	g.POST("/:sku/links/:optionId", func(c echo.Context) error {
		optionID, err := optionParam(c)
		if err != nil {
			return err
		}
		var body addLinkRequest
		if err := c.Bind(&body); err != nil {
			return err
		}
		if err := c.Validate(&body); err != nil {
			return err
		}
		in := body.LinkedProduct
		id, err := d.Bundles.AddChild(c.Request().Context(), c.Param("sku"), optionID, bundleService.LinkInput{
			SKU:               in.SKU,
			Qty:               in.Qty,
			Price:             in.Price,
			PriceType:         in.PriceType,
			Position:          in.Position,
			IsDefault:         in.IsDefault,
			CanChangeQuantity: in.CanChangeQuantity,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, id)
	})

	// DELETE /api/V1/bundle-products/:sku/options/:optionId/children/:childSku
	g.DELETE("/:sku/options/:optionId/children/:childSku", func(c echo.Context) error {
		optionID, err := optionParam(c)
		if err != nil {
			return err
		}
		if err := d.Bundles.RemoveChild(c.Request().Context(), c.Param("sku"), optionID, c.Param("childSku")); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, true)
	})

	// POST /api/V1/bundle-products/:sku/children/:childSku/source-assignments/validate
	g.POST("/:sku/children/:childSku/source-assignments/validate", func(c echo.Context) error {
		var body validateRequest
		if err := c.Bind(&body); err != nil {
			return err
		}
		if err := c.Validate(&body); err != nil {
			return err
		}
		err := d.Bundles.CheckAssignment(c.Request().Context(), c.Param("sku"), c.Param("childSku"), body.SourceCodes)
		var rejected *bundleService.RejectedAssignmentError
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, validateResponse{Allowed: true})
		case errors.As(err, &rejected):
			return c.JSON(http.StatusOK, validateResponse{Allowed: false, Message: rejected.Error()})
		default:
			return err
		}
	})
}

func optionParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("optionId"), 10, 32)
	if err != nil || id == 0 {
		return 0, service.InvalidInputf("invalid option id %q", c.Param("optionId"))
	}
	return uint(id), nil
}
