package checkout

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	cks "github.com/PKL-SST-2025/camp-rent-sub000/service/checkout"
)

type Controller struct {
	Svc cks.Service
	Log *slog.Logger
}

// POST /v1/checkout/validate
//
// Reports every failing rule at once; the client keeps the wizard on the
// info step while the list is non-empty.
func (h *Controller) Validate(c echo.Context) error {
	var info model.CheckoutInfo
	if err := c.Bind(&info); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	msgs := h.Svc.Validate(c.Request().Context(), info)
	return c.JSON(http.StatusOK, echo.Map{
		"valid":  len(msgs) == 0,
		"errors": msgs,
	})
}

// GET /v1/checkout/quote?method=transfer
func (h *Controller) Quote(c echo.Context) error {
	method := model.PaymentMethod(c.QueryParam("method"))
	q, err := h.Svc.Quote(c.Request().Context(), method)
	if err != nil {
		switch cks.Code(err) {
		case cks.ErrEmptySelection:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no items selected for checkout"})
		case cks.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "validation error",
				"errors":  cks.Messages(err),
			})
		default:
			h.Log.Error("checkout quote", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, q)
}

// POST /v1/checkout
func (h *Controller) Submit(c echo.Context) error {
	var info model.CheckoutInfo
	if err := c.Bind(&info); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	order, err := h.Svc.Submit(c.Request().Context(), info)
	if err != nil {
		switch cks.Code(err) {
		case cks.ErrEmptySelection:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no items selected for checkout"})
		case cks.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "validation error",
				"errors":  cks.Messages(err),
			})
		case cks.ErrPaymentFailed:
			// cart untouched; client resubmits from the payment step
			return c.JSON(http.StatusPaymentRequired, echo.Map{"message": "payment failed"})
		default:
			h.Log.Error("checkout submit", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "order created",
		"order":   order,
	})
}
