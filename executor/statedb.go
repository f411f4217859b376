// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	lru "github.com/hashicorp/golang-lru"
)

// StateDB the state a driver reads during CheckTx and Exec. Reads go through
// an lru of committed values, writes are refused: a driver's writes only
// reach the store as receipt KV, committed by the executor.
type StateDB struct {
	db    db.DB
	cache *lru.Cache
}

// NewStateDB size <= 0 disables the cache
func NewStateDB(backend db.DB, size int) *StateDB {
	s := &StateDB{db: backend}
	if size > 0 {
		cache, err := lru.New(size)
		if err != nil {
			panic(err)
		}
		s.cache = cache
	}
	return s
}

// Get Get
func (s *StateDB) Get(key []byte) ([]byte, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(string(key)); ok {
			return db.CopyBytes(v.([]byte)), nil
		}
	}
	value, err := s.db.Get(key)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(string(key), db.CopyBytes(value))
	}
	return value, nil
}

// Set drivers never write the state directly
func (s *StateDB) Set(key []byte, value []byte) error {
	return types.ErrNotAllowWriteState
}

// commit bring the cache in line with kvs, after kvs reached the store
func (s *StateDB) commit(kvs []*types.KeyValue) {
	if s.cache == nil {
		return
	}
	for _, kv := range kvs {
		if kv.Value == nil {
			s.cache.Remove(string(kv.Key))
			continue
		}
		s.cache.Add(string(kv.Key), db.CopyBytes(kv.Value))
	}
}

// cached number of cached keys
func (s *StateDB) cached() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// LocalDB read only view of the local index. ExecLocal returns its writes as
// KV, queries list through it.
type LocalDB struct {
	db db.DB
}

// NewLocalDB NewLocalDB
func NewLocalDB(backend db.DB) *LocalDB {
	return &LocalDB{db: backend}
}

// Get Get
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	return l.db.Get(key)
}

// Set drivers never write the local index directly
func (l *LocalDB) Set(key []byte, value []byte) error {
	return types.ErrNotAllowWriteState
}

// List List
func (l *LocalDB) List(prefix []byte, count int32) ([][]byte, error) {
	return l.db.List(prefix, count)
}
