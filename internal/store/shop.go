package store

import (
	"context"
	"fmt"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

func (s *Store) ListShops(ctx context.Context) ([]models.Shop, error) {
	var items []models.Shop
	if err := s.DB.WithContext(ctx).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateShop(ctx context.Context, sh *models.Shop) (*models.Shop, error) {
	if sh.Address == "" {
		return nil, fmt.Errorf("%w: адрес магазина обязателен", ErrValidation)
	}
	if err := s.DB.WithContext(ctx).Create(sh).Error; err != nil {
		return nil, err
	}
	return sh, nil
}
