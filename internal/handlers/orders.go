package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hellok1tta/bakery-shop/internal/logging"
	"github.com/hellok1tta/bakery-shop/internal/middleware"
	"github.com/hellok1tta/bakery-shop/internal/models"
	"github.com/hellok1tta/bakery-shop/internal/store"
)

type OrderHandler struct {
	Store *store.Store
}

func (h *OrderHandler) identity(c echo.Context) (middleware.Identity, error) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Токен доступа отсутствует")
	}
	return ident, nil
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	ident, err := h.identity(c)
	if err != nil {
		return err
	}

	var req struct {
		Items       json.RawMessage `json:"items"`
		TotalAmount float64         `json:"total_amount"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Товары и общая сумма обязательны")
	}
	if len(req.Items) == 0 || string(req.Items) == "null" || req.TotalAmount == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Товары и общая сумма обязательны")
	}

	// items остаётся непрозрачным блобом: сериализуем как есть.
	order, err := h.Store.CreateOrder(ctx, &models.Order{
		UserID:      ident.ID,
		Items:       string(req.Items),
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "Товары и общая сумма обязательны")
		}
		l.Error("create_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	l.Info("create_order_success", "order_id", order.ID, "user_id", ident.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Заказ успешно создан",
		"orderId": order.ID,
	})
}

func (h *OrderHandler) MyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	ident, err := h.identity(c)
	if err != nil {
		return err
	}

	orders, err := h.Store.UserOrders(ctx, ident.ID)
	if err != nil {
		logging.FromContext(ctx).Error("user_orders_failed", "user_id", ident.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": orders})
}

func (h *OrderHandler) MyStats(c echo.Context) error {
	ctx := c.Request().Context()

	ident, err := h.identity(c)
	if err != nil {
		return err
	}

	stats, err := h.Store.UserStats(ctx, ident.ID)
	if err != nil {
		logging.FromContext(ctx).Error("user_stats_failed", "user_id", ident.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": stats})
}

// UpdateStatus меняет статус заказа; чужой заказ выглядит как отсутствующий.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	ident, err := h.identity(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Заказ не найден")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Статус заказа обязателен")
	}

	order, err := h.Store.UpdateOrderStatus(ctx, uint(id), ident.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "Недопустимый статус заказа")
		case errors.Is(err, store.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Заказ не найден")
		default:
			l.Error("update_status_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
	}

	l.Info("update_status_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": order})
}

func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	ident, err := h.identity(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Заказ не найден")
	}

	if err := h.Store.DeleteOrder(ctx, uint(id), ident.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Заказ не найден")
		}
		l.Error("delete_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	l.Info("delete_order_success", "order_id", id)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Заказ удалён"})
}
