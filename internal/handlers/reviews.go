package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellok1tta/bakery-shop/internal/logging"
	"github.com/hellok1tta/bakery-shop/internal/middleware"
	"github.com/hellok1tta/bakery-shop/internal/models"
	"github.com/hellok1tta/bakery-shop/internal/store"
)

type ReviewHandler struct {
	Store *store.Store
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create")

	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Токен доступа отсутствует")
	}

	var req struct {
		ProductID uint   `json:"product_id"`
		Review    string `json:"review"`
		Stars     int    `json:"stars"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Оценка должна быть от 1 до 5 звезд")
	}

	review, err := h.Store.CreateReview(ctx, &models.Review{
		UserID:    ident.ID,
		ProductID: req.ProductID,
		Review:    req.Review,
		Stars:     req.Stars,
	})
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "Оценка должна быть от 1 до 5 звезд")
		}
		l.Error("create_review_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	l.Info("create_review_success", "review_id", review.ID, "product_id", review.ProductID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Отзыв успешно добавлен",
		"data":    review,
	})
}
