package store

import (
	"context"
	"fmt"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var items []models.Employee
	if err := s.DB.WithContext(ctx).Order("position, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	if e.Name == "" || e.Position == "" {
		return nil, fmt.Errorf("%w: имя и должность обязательны", ErrValidation)
	}
	if err := s.DB.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}
