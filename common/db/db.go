// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key value store backends
package db

import (
	"errors"
	"fmt"
)

// ErrNotFoundInDb key not present
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV read and write access to a store, what a driver is handed
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// KVDB a store view that can also list by prefix, what a driver's local
// index is handed
type KVDB interface {
	KV
	// values of keys with prefix in key order, count <= 0 means all
	List(prefix []byte, count int32) ([][]byte, error)
}

// DB a store backend
type DB interface {
	KVDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
}

// Batch buffered writes applied together by Write
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// backend names
const (
	LevelDBBackendStr    = "leveldb" // legacy, same as goleveldb
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB open a store with the named backend
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	dbCreator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

// CopyBytes copy b, nil stays nil
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
