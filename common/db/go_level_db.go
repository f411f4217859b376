// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var dlog = log.New("module", "db")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(LevelDBBackendStr, dbCreator, false)
	registerDBCreator(GoLevelDBBackendStr, dbCreator, false)
}

//GoLevelDB goleveldb backend
type GoLevelDB struct {
	db *leveldb.DB
}

//NewGoLevelDB open or create <dir>/<name>.db
func NewGoLevelDB(name string, dir string, cache int) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache < 16 {
		cache = 16
	}
	handles := cache
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

//Get Get
func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		dlog.Error("Get", "error", err)
		return nil, err
	}
	return res, nil
}

//Set Set
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

//SetSync Set with fsync
func (db *GoLevelDB) SetSync(key []byte, value []byte) error {
	return db.db.Put(key, value, &opt.WriteOptions{Sync: true})
}

//Delete Delete
func (db *GoLevelDB) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

//DeleteSync Delete with fsync
func (db *GoLevelDB) DeleteSync(key []byte) error {
	return db.db.Delete(key, &opt.WriteOptions{Sync: true})
}

//DB underlying leveldb handle
func (db *GoLevelDB) DB() *leveldb.DB {
	return db.db
}

//Close Close
func (db *GoLevelDB) Close() {
	if err := db.db.Close(); err != nil {
		dlog.Error("Close", "error", err)
	}
}

//List List
func (db *GoLevelDB) List(prefix []byte, count int32) ([][]byte, error) {
	return listIterator(db.db.NewIterator(util.BytesPrefix(prefix), nil), count)
}

//NewBatch NewBatch
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	return &goLevelDBBatch{db: db.db, batch: new(leveldb.Batch), wop: &opt.WriteOptions{Sync: sync}}
}

type levelIterator interface {
	Next() bool
	Value() []byte
	Release()
	Error() error
}

func listIterator(it levelIterator, count int32) ([][]byte, error) {
	defer it.Release()
	var values [][]byte
	for it.Next() {
		values = append(values, CopyBytes(it.Value()))
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return values, nil
}

type goLevelDBBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
	size  int
}

func (mBatch *goLevelDBBatch) Set(key, value []byte) {
	mBatch.batch.Put(key, value)
	mBatch.size += len(value)
}

func (mBatch *goLevelDBBatch) Delete(key []byte) {
	mBatch.batch.Delete(key)
	mBatch.size++
}

func (mBatch *goLevelDBBatch) Write() error {
	return mBatch.db.Write(mBatch.batch, mBatch.wop)
}

func (mBatch *goLevelDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goLevelDBBatch) Reset() {
	mBatch.batch.Reset()
	mBatch.size = 0
}
