package order

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	osvc "github.com/PKL-SST-2025/camp-rent-sub000/service/order"
)

type Controller struct {
	Svc osvc.Service
	Log *slog.Logger
}

// GET /v1/orders
func (h *Controller) History(c echo.Context) error {
	orders, err := h.Svc.History(c.Request().Context())
	if err != nil {
		h.Log.Error("order history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": orders})
}

// GET /v1/orders/current
func (h *Controller) Current(c echo.Context) error {
	o, err := h.Svc.Snapshot(c.Request().Context())
	if err != nil {
		if errors.Is(err, osvc.ErrNoSnapshot) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no completed checkout"})
		}
		h.Log.Error("order snapshot", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"order": o})
}
