package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hellok1tta/bakery-shop/internal/tokens"
)

// Identity — проверенная личность запроса, кладётся в контекст echo.
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

const identityKey = "identity"

type BearerAuth struct {
	JWTSecret []byte
}

func NewBearerAuth(secret []byte) *BearerAuth {
	return &BearerAuth{JWTSecret: secret}
}

// RequireAuth различает отсутствующий токен (401) и
// недействительный/просроченный (403), как того ждёт клиент: на 401 он
// делает принудительный logout.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Токен доступа отсутствует")
		}

		claims, err := tokens.AccessClaimsFromToken(token, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Недействительный токен")
		}

		c.Set(identityKey, Identity{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
		})
		return next(c)
	}
}

func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
