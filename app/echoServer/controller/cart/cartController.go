package cart

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	cs "github.com/PKL-SST-2025/camp-rent-sub000/service/cart"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/cart
func (h *Controller) List(c echo.Context) error {
	items, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("cart list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	sel, err := h.Svc.Selection(c.Request().Context())
	if err != nil {
		h.Log.Error("cart selection", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":    items,
		"selected": sel,
		"subtotal": cs.Subtotal(sel),
	})
}

// POST /v1/cart/items
func (h *Controller) Add(c echo.Context) error {
	var req AddItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	item := model.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Quantity: req.Quantity,
	}
	if err := h.Svc.Add(c.Request().Context(), item); err != nil {
		h.Log.Error("cart add", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "added"})
}

// PATCH /v1/cart/items/:id
func (h *Controller) UpdateQuantity(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	ctx := c.Request().Context()
	var q int
	switch req.Op {
	case "increment":
		q, err = h.Svc.Increment(ctx, id)
	case "decrement":
		q, err = h.Svc.Decrement(ctx, id)
	default:
		q, err = h.Svc.SetQuantity(ctx, id, req.Quantity)
	}
	if err != nil {
		if errors.Is(err, cs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not in cart"})
		}
		h.Log.Error("cart quantity", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"quantity": q})
}

// DELETE /v1/cart/items/:id
func (h *Controller) Remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Remove(c.Request().Context(), id); err != nil {
		if errors.Is(err, cs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not in cart"})
		}
		h.Log.Error("cart remove", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
}

// PUT /v1/cart/selection
func (h *Controller) Select(c echo.Context) error {
	var req SelectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	sel, err := h.Svc.Select(c.Request().Context(), req.IDs)
	if err != nil {
		h.Log.Error("cart select", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"selected": sel,
		"subtotal": cs.Subtotal(sel),
	})
}
