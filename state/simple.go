// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*SimpleMutable)(nil)

type change struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers all writes of a single invocation over an
// underlying database. Nothing reaches the database until Commit; a
// SimpleMutable that is dropped without Commit leaves the database
// untouched.
type SimpleMutable struct {
	db database.Database

	changes map[string]*change
}

func NewSimpleMutable(db database.Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]*change)}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return v.value, nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = &change{value: v}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = &change{delete: true}
	return nil
}

func (s *SimpleMutable) Commit(context.Context) error {
	b := s.db.NewBatch()
	for k, v := range s.changes {
		if v.delete {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := b.Put([]byte(k), v.value); err != nil {
			return err
		}
	}
	if err := b.Write(); err != nil {
		return err
	}
	s.changes = make(map[string]*change)
	return nil
}
