package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/hellok1tta/bakery-shop/internal/handlers"
	"github.com/hellok1tta/bakery-shop/internal/middleware"
)

type Deps struct {
	DB             *gorm.DB
	AuthHandler    *handlers.AuthHandler
	CatalogHandler *handlers.CatalogHandler
	OrderHandler   *handlers.OrderHandler
	ReviewHandler  *handlers.ReviewHandler
	Auth           *middleware.BearerAuth

	// StaticDir — каталог со страницами витрины; пустая строка отключает
	// раздачу статики.
	StaticDir string
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)

	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/products/popular", d.CatalogHandler.GetPopularProducts)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)
	api.GET("/team", d.CatalogHandler.GetTeam)
	api.GET("/shops", d.CatalogHandler.GetShops)

	private := api.Group("", d.Auth.RequireAuth)

	private.GET("/auth/check", d.AuthHandler.Check)
	private.GET("/user/orders", d.OrderHandler.MyOrders)
	private.GET("/user/stats", d.OrderHandler.MyStats)
	private.POST("/orders", d.OrderHandler.CreateOrder)
	private.PUT("/orders/:id/status", d.OrderHandler.UpdateStatus)
	private.DELETE("/orders/:id", d.OrderHandler.Delete)
	private.POST("/reviews", d.ReviewHandler.CreateReview)

	if d.StaticDir != "" {
		e.Static("/", d.StaticDir)
	}
}

// ErrorHandler приводит любую ошибку к конверту {success:false, error:...},
// который ждёт клиентская обёртка API.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Внутренняя ошибка сервера"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"success": false, "error": msg})
}
