package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore is a Repository backed by a gorm database. The table name comes
// from the model's TableName method.
type GormStore[T any] struct {
	db    *gorm.DB
	table string
}

// NewGormStore returns a store for model T. table is used in error messages.
func NewGormStore[T any](db *gorm.DB, table string) *GormStore[T] {
	return &GormStore[T]{db: db, table: table}
}

// Save inserts record and fills its generated id.
func (s *GormStore[T]) Save(ctx context.Context, record *T) (*T, error) {
	if record == nil {
		return nil, fmt.Errorf("save %s: record is nil", s.table)
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, storageErr("save", s.table, err)
	}
	return record, nil
}

func (s *GormStore[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("find", s.table, err)
	}
	return &record, nil
}
