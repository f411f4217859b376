// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// memdb needs no sync variants, everything lives in process memory

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB sorted in memory store
type GoMemDB struct {
	db *memdb.DB
	// serializes batch writes against readers
	lock sync.RWMutex
}

//NewGoMemDB new in memory store, name and dir are ignored
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, 0)}, nil
}

//Get Get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	v, err := db.db.Get(key)
	if err == errors.ErrNotFound {
		return nil, ErrNotFoundInDb
	}
	return CopyBytes(v), err
}

//Set Set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	return db.db.Put(key, value)
}

//SetSync Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete Delete
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	err := db.db.Delete(key)
	if err == errors.ErrNotFound {
		return nil
	}
	return err
}

//DeleteSync Delete
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close Close
func (db *GoMemDB) Close() {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db.Reset()
}

//List List
func (db *GoMemDB) List(prefix []byte, count int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return listIterator(db.db.NewIterator(util.BytesPrefix(prefix)), count)
}

//NewBatch NewBatch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memOp struct {
	del   bool
	key   []byte
	value []byte
}

type memBatch struct {
	db   *GoMemDB
	ops  []memOp
	size int
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, memOp{key: CopyBytes(key), value: CopyBytes(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{del: true, key: CopyBytes(key)})
	b.size++
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, op := range b.ops {
		var err error
		if op.del {
			err = b.db.db.Delete(op.key)
			if err == errors.ErrNotFound {
				err = nil
			}
		} else {
			err = b.db.db.Put(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.ops = nil
	b.size = 0
}
