// Package store владеет всеми таблицами сущностей и отдаёт типизированные
// ошибки; HTTP-слой превращает их в статусы.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrValidation     = errors.New("validation")      // 400
	ErrDuplicateEmail = errors.New("duplicate email") // 400
	ErrNotFound       = errors.New("not found")       // 404
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}
