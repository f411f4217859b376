// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.badger")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// badgerLogger routes badger's own logging into log15
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	blog.Error(fmt.Sprintf(format, args...))
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	blog.Warn(fmt.Sprintf(format, args...))
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	blog.Debug(fmt.Sprintf(format, args...))
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	blog.Debug(fmt.Sprintf(format, args...))
}

//GoBadgerDB badger backend
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB open or create the badger directory <dir>/<name>.db
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get Get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set Set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

//SetSync badger syncs according to its options, same as Set
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete Delete
func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

//DeleteSync same as Delete
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB underlying badger handle
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close Close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//List List
func (db *GoBadgerDB) List(prefix []byte, count int32) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, v)
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

//NewBatch NewBatch, ops are applied in one badger transaction
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db.db}
}

type badgerBatch struct {
	db   *badger.DB
	ops  []memOp
	size int
}

func (b *badgerBatch) Set(key, value []byte) {
	b.ops = append(b.ops, memOp{key: CopyBytes(key), value: CopyBytes(value)})
	b.size += len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{del: true, key: CopyBytes(key)})
	b.size++
}

func (b *badgerBatch) Write() error {
	return b.db.Update(func(txn *badger.Txn) error {
		for _, op := range b.ops {
			var err error
			if op.del {
				err = txn.Delete(op.key)
			} else {
				err = txn.Set(op.key, op.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.ops = nil
	b.size = 0
}
