package review

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	rvs "github.com/PKL-SST-2025/camp-rent-sub000/service/review"
)

type Controller struct {
	Svc rvs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/products/:id/reviews?rating=5&sort=oldest
func (h *Controller) List(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rating := 0
	if v := c.QueryParam("rating"); v != "" {
		rating, err = strconv.Atoi(v)
		if err != nil || rating < 1 || rating > 5 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid rating filter"})
		}
	}

	ctx := c.Request().Context()
	revs, err := h.Svc.List(ctx, productID, rating, c.QueryParam("sort"))
	if err != nil {
		h.Log.Error("review list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	stats, err := h.Svc.Stats(ctx, productID)
	if err != nil {
		h.Log.Error("review stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":  revs,
		"stats": stats,
	})
}

// POST /v1/products/:id/reviews
func (h *Controller) Submit(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req SubmitReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	user, _ := c.Get("user_name").(string)
	rev, err := h.Svc.Submit(c.Request().Context(), user, productID, req.Rating, req.Comment)
	if err != nil {
		switch rvs.Code(err) {
		case rvs.ErrBadRating, rvs.ErrBadComment:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid review"})
		case rvs.ErrNotEligible:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "product has not been rented"})
		default:
			h.Log.Error("review submit", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"review": rev})
}
