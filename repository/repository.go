// Package repository provides create-and-fetch storage for form records.
//
// Two backends satisfy Repository: MemStore keeps records in a go-memdb
// database and GormStore writes them through gorm. Every backend failure is
// returned as a *StorageError. Callers do not retry.
package repository

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by FindByID when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Repository stores records of type T and fetches them by generated id.
type Repository[T any] interface {
	Save(ctx context.Context, record *T) (*T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
}

// Record is the pointer-side contract MemStore needs to assign ids.
type Record[T any] interface {
	*T
	GetID() uint
	SetID(id uint)
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op    string
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, table string, err error) error {
	return &StorageError{Op: op, Table: table, Err: err}
}
