package store

import (
	"context"
	"fmt"

	"github.com/hellok1tta/bakery-shop/internal/models"
)

func (s *Store) CreateReview(ctx context.Context, r *models.Review) (*models.Review, error) {
	if r.Stars < 1 || r.Stars > 5 {
		return nil, fmt.Errorf("%w: оценка должна быть от 1 до 5 звезд", ErrValidation)
	}
	if err := s.DB.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}
