package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL выдаваемого токена.
const AccessTTL = 24 * time.Hour

// AccessClaims — identity record, зашиваемый в токен при регистрации и входе.
type AccessClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

func SignAccessToken(userID uint, email, name string, secret []byte) (string, error) {
	claims := AccessClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	return &claims, nil
}
