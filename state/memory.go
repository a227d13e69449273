// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*InMemoryStore)(nil)

// InMemoryStore is a map-backed Mutable used in tests and examples.
type InMemoryStore struct {
	Storage map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{Storage: make(map[string][]byte)}
}

func (s *InMemoryStore) GetValue(_ context.Context, k []byte) ([]byte, error) {
	v, ok := s.Storage[string(k)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

func (s *InMemoryStore) Insert(_ context.Context, k []byte, v []byte) error {
	s.Storage[string(k)] = v
	return nil
}

func (s *InMemoryStore) Remove(_ context.Context, k []byte) error {
	delete(s.Storage, string(k))
	return nil
}
