package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hellok1tta/bakery-shop/internal/logging"
	"github.com/hellok1tta/bakery-shop/internal/store"
)

// CatalogHandler обслуживает публичные витринные чтения: товары, команда,
// магазины.
type CatalogHandler struct {
	Store *store.Store
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Store.ListProducts(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_products_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetPopularProducts(c echo.Context) error {
	ctx := c.Request().Context()
	limit := parseIntDefault(c.QueryParam("limit"), store.DefaultPopularLimit)

	items, err := h.Store.PopularProducts(ctx, limit)
	if err != nil {
		logging.FromContext(ctx).Error("popular_products_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Товар не найден")
	}

	product, err := h.Store.ProductByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Товар не найден")
		}
		logging.FromContext(ctx).Error("get_product_failed", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": product})
}

func (h *CatalogHandler) GetTeam(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Store.ListEmployees(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_employees_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

func (h *CatalogHandler) GetShops(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Store.ListShops(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_shops_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}
