package store

import (
	"context"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type UserStats struct {
	TotalOrders  int64        `json:"totalOrders"`
	TotalAmount  float64      `json:"totalAmount"`
	AverageOrder float64      `json:"averageOrder"`
	StatusStats  []StatusStat `json:"statusStats"`
}

// UserStats собирает сводку из трёх независимых агрегатов по заказам
// пользователя. Снимок не транзакционный: заказ, вставленный между
// запросами, может слегка разойтись со счётчиками — для дашборда этого
// достаточно.
func (s *Store) UserStats(ctx context.Context, userID uint) (*UserStats, error) {
	stats := &UserStats{StatusStats: []StatusStat{}}

	if err := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalAmount).Error; err != nil {
		return nil, err
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrder = stats.TotalAmount / float64(stats.TotalOrders)
	}

	if err := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats.StatusStats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
