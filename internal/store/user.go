package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

// Register вставляет нового пользователя. Пароль сюда приходит уже
// захешированным, хранилище его не проверяет.
func (s *Store) Register(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	if email == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: email и пароль обязательны", ErrValidation)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	tx := s.DB.WithContext(ctx).Where("email = ?", email).FirstOrCreate(&user)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrDuplicateEmail
	}
	return &user, nil
}

// Login возвращает строку пользователя вместе с хешем пароля; сверка пароля
// остаётся за вызывающим.
func (s *Store) Login(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
