package rental

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	rs "github.com/PKL-SST-2025/camp-rent-sub000/service/rental"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// GET /v1/rentals
func (h *Controller) History(c echo.Context) error {
	rows, err := h.Svc.History(c.Request().Context())
	if err != nil {
		h.Log.Error("rental history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rentals/:id
func (h *Controller) Track(c echo.Context) error {
	e, err := h.Svc.Track(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		default:
			h.Log.Error("rental track", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": e})
}

// POST /v1/rentals/:id/advance
func (h *Controller) Advance(c echo.Context) error {
	e, err := h.Svc.Advance(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		case rs.ErrFinished:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental already completed"})
		default:
			h.Log.Error("rental advance", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":     e.ID,
		"status": e.Status,
	})
}
