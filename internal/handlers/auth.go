package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellok1tta/bakery-shop/internal/hash"
	"github.com/hellok1tta/bakery-shop/internal/logging"
	"github.com/hellok1tta/bakery-shop/internal/middleware"
	"github.com/hellok1tta/bakery-shop/internal/store"
	"github.com/hellok1tta/bakery-shop/internal/tokens"
)

type AuthHandler struct {
	Store     *store.Store
	JWTSecret []byte
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Все поля обязательны для заполнения")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Все поля обязательны для заполнения")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	user, err := h.Store.Register(ctx, req.Name, req.Email, pwHash)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			l.Warn("register_error", "status", 400, "reason", "duplicate email")
			return echo.NewHTTPError(http.StatusBadRequest, "Пользователь с таким email уже существует")
		case errors.Is(err, store.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "Email и пароль обязательны")
		default:
			l.Error("register_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
	}

	token, err := tokens.SignAccessToken(user.ID, user.Email, user.Name, h.JWTSecret)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	l.Info("register_successful", "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Пользователь успешно зарегистрирован",
		"token":   token,
		"user": echo.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Email и пароль обязательны")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email и пароль обязательны")
	}

	user, err := h.Store.Login(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("login_failed", "status", 400, "reason", "unknown email")
			return echo.NewHTTPError(http.StatusBadRequest, "Пользователь не найден")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 400, "reason", "password mismatch")
		return echo.NewHTTPError(http.StatusBadRequest, "Неверный email или пароль")
	}

	token, err := tokens.SignAccessToken(user.ID, user.Email, user.Name, h.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}

	l.Info("login_successful", "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Успешный вход в систему",
		"token":   token,
		"user": echo.Map{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

// Check отдаёт identity record, положенный в контекст auth-миддлварью.
func (h *AuthHandler) Check(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Токен доступа отсутствует")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    ident,
	})
}
