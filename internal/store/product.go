package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

const DefaultPopularLimit = 4

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) PopularProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	var items []models.Product
	if err := s.DB.WithContext(ctx).
		Where("is_popular = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.Name == "" || p.Price == 0 {
		return nil, fmt.Errorf("%w: название и цена товара обязательны", ErrValidation)
	}
	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
