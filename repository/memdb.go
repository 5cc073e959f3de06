package repository

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

// MemStore is a Repository backed by one go-memdb table with a unique uint
// "id" index over the record's ID field.
type MemStore[T any, P Record[T]] struct {
	db    *memdb.MemDB
	table string
}

// NewMemStore returns a store over table in db.
func NewMemStore[T any, P Record[T]](db *memdb.MemDB, table string) *MemStore[T, P] {
	return &MemStore[T, P]{db: db, table: table}
}

// Save assigns the next id and inserts a copy of record. Write transactions
// in memdb are serialized, so reading the last id and inserting inside one
// transaction cannot hand out the same id twice.
func (s *MemStore[T, P]) Save(ctx context.Context, record *T) (*T, error) {
	if record == nil {
		return nil, fmt.Errorf("save %s: record is nil", s.table)
	}
	if err := ctx.Err(); err != nil {
		return nil, storageErr("save", s.table, err)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	var nextID uint = 1
	last, err := txn.Last(s.table, "id")
	if err != nil {
		return nil, storageErr("save", s.table, err)
	}
	if last != nil {
		nextID = P(last.(*T)).GetID() + 1
	}

	stored := *record
	P(&stored).SetID(nextID)
	if err := txn.Insert(s.table, &stored); err != nil {
		return nil, storageErr("save", s.table, err)
	}
	txn.Commit()

	P(record).SetID(nextID)
	return record, nil
}

// FindByID returns a copy of the stored record.
func (s *MemStore[T, P]) FindByID(ctx context.Context, id uint) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("find", s.table, err)
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(s.table, "id", id)
	if err != nil {
		return nil, storageErr("find", s.table, err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	out := *raw.(*T)
	return &out, nil
}
