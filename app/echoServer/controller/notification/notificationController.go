package notification

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	ns "github.com/PKL-SST-2025/camp-rent-sub000/service/notification"
)

type Controller struct {
	Svc ns.Service
	Log *slog.Logger
}

// GET /v1/notifications
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("notification list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// DELETE /v1/notifications
func (h *Controller) Clear(c echo.Context) error {
	if err := h.Svc.Clear(c.Request().Context()); err != nil {
		h.Log.Error("notification clear", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cleared"})
}
