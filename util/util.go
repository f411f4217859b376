// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util key generation, tx builders and throwaway stores for tests
// and tools
package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/db"
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/system/crypto/secp256k1"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/google/uuid"
)

var ulog = log.New("module", "util")

//Genaddress : generate a address
func Genaddress() (string, crypto.PrivKey) {
	cr, err := crypto.New(secp256k1.Name)
	if err != nil {
		panic(err)
	}
	privto, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	addrto := address.PubKeyToAddress(privto.PubKey().Bytes())
	return addrto.String(), privto
}

// LoadPrivKey secp256k1 key from hex
func LoadPrivKey(hexkey string) (crypto.PrivKey, error) {
	data, err := common.FromHex(hexkey)
	if err != nil {
		return nil, err
	}
	cr, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return cr.PrivKeyFromBytes(data)
}

// CreateTxWithExecer ： Create Tx With Execer
func CreateTxWithExecer(priv crypto.PrivKey, execer string, payload []byte) *types.Transaction {
	tx := &types.Transaction{Execer: []byte(execer), Payload: payload}
	if priv != nil {
		tx.Sign(secp256k1.ID, priv)
	}
	return tx
}

// CreateRpsTx sign a rps tx carrying action. nonce tells apart txs with the
// same action, such as a resubmitted create after a rejection.
func CreateRpsTx(priv crypto.PrivKey, action *rpstypes.RpsAction, nonce int64) *types.Transaction {
	tx := rpstypes.NewTx(action, nonce)
	if priv != nil {
		tx.Sign(secp256k1.ID, priv)
	}
	return tx
}

// RandGameName a fresh game name
func RandGameName() string {
	return "game-" + uuid.New().String()
}

// JSONPrint : print in json format
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		t.Error(err)
		return
	}
	if t == nil {
		fmt.Println(string(data))
		return
	}
	t.Log(string(data))
}

//ResetDatadir 重写datadir
func ResetDatadir(cfg *types.Config, datadir string) string {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(usr.HomeDir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := ioutil.TempDir("", "rpsdatadir-")
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	if cfg.Log.LogFile != "" {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
	cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	return datadir
}

//CreateTestDB 创建一个测试数据库
func CreateTestDB() (string, db.DB) {
	dir, err := ioutil.TempDir("", "goleveldb")
	if err != nil {
		panic(err)
	}
	leveldb, err := db.NewDB("test", db.GoLevelDBBackendStr, dir, 16)
	if err != nil {
		panic(err)
	}
	return dir, leveldb
}

//CloseTestDB 关闭并删除测试数据库
func CloseTestDB(dir string, dbm db.DB) {
	dbm.Close()
	err := os.RemoveAll(dir)
	if err != nil {
		ulog.Info("RemoveAll ", "dir", dir, "err", err)
	}
}

//SaveKVList 保存kvs to database
func SaveKVList(kvdb db.DB, kvs []*types.KeyValue) {
	batch := kvdb.NewBatch(true)
	for i := 0; i < len(kvs); i++ {
		if kvs[i].Value == nil {
			batch.Delete(kvs[i].Key)
			continue
		}
		batch.Set(kvs[i].Key, kvs[i].Value)
	}
	err := batch.Write()
	if err != nil {
		panic(err)
	}
}

//PrintKV 打印KVList
func PrintKV(kvs []*types.KeyValue) {
	for i := 0; i < len(kvs); i++ {
		fmt.Printf("KV %d %s(%s)\n", i, string(kvs[i].Key), common.ToHex(kvs[i].Value))
	}
}
