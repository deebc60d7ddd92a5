package store

import (
	"context"
	"fmt"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

func (s *Store) CreateOrder(ctx context.Context, o *models.Order) (*models.Order, error) {
	if o.UserID == 0 || o.Items == "" || o.TotalAmount == 0 {
		return nil, fmt.Errorf("%w: товары и общая сумма обязательны", ErrValidation)
	}
	if o.Status == "" {
		o.Status = models.OrderStatusProcessing
	}
	if !models.ValidOrderStatus(o.Status) {
		return nil, fmt.Errorf("%w: недопустимый статус %q", ErrValidation, o.Status)
	}
	if err := s.DB.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Store) UserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus меняет статус только у заказа владельца.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, userID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: недопустимый статус %q", ErrValidation, status)
	}

	res := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var order models.Order
	if err := s.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id, userID uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
