// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

// executor the environment of one tx
type executor struct {
	exec    *Executor
	stateDB *StateDB
	localDB *LocalDB
}

func newExecutor(exec *Executor) *executor {
	return &executor{
		exec:    exec,
		stateDB: exec.stateDB,
		localDB: exec.localDB,
	}
}

func (e *executor) setEnv(d drivers.Driver) {
	d.SetStateDB(e.stateDB)
	d.SetLocalDB(e.localDB)
}

func (e *executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	d, err := drivers.LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	e.setEnv(d)
	return d, nil
}

// checkTx the checks of a tx that need no apply, the driver is returned for exec
func (e *executor) checkTx(tx *types.Transaction, index int) (drivers.Driver, error) {
	if tx == nil {
		return nil, types.ErrEmptyTx
	}
	if tx.Signature == nil {
		return nil, types.ErrNoSignature
	}
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	hash := tx.Hash()
	_, err := e.exec.db.Get(calcTxKey(hash))
	if err == nil {
		return nil, types.ErrTxDup
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, fatal(err, "load tx result")
	}
	d, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	if err := d.Allow(tx, index); err != nil {
		return nil, err
	}
	if err := d.CheckTx(tx, index); err != nil {
		return nil, err
	}
	return d, nil
}

// execTx only storage failures and apply failures are returned as error
func (e *executor) execTx(tx *types.Transaction) (*Result, error) {
	var hash []byte
	if tx != nil {
		hash = tx.Hash()
	}
	d, err := e.checkTx(tx, 0)
	if err != nil {
		if IsFatal(err) {
			return nil, err
		}
		return rejected(hash, err), nil
	}
	receipt, err := d.Exec(tx, 0)
	if err != nil {
		elog.Crit("exec tx", "hash", common.ToHex(hash), "execer", string(tx.Execer), "err", err)
		return nil, fatal(err, "exec")
	}
	if receipt == nil {
		return nil, fatal(types.ErrActionNotSupport, "exec without receipt")
	}
	if err := checkKeys(tx.Execer, receipt.KV, isAllowKeyWrite); err != nil {
		return nil, fatal(err, "exec")
	}
	batch := e.exec.db.NewBatch(true)
	writeKV(batch, receipt.KV)
	if e.exec.cfg.EnableLocalIndex {
		set, err := d.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
		if err != nil {
			return nil, fatal(err, "exec local")
		}
		if err := checkKeys(tx.Execer, set.KV, isAllowLocalKey); err != nil {
			return nil, fatal(err, "exec local")
		}
		writeKV(batch, set.KV)
	}
	batch.Set(calcTxKey(hash), types.Encode(&types.TxResult{Ty: receipt.Ty}))
	if err := batch.Write(); err != nil {
		return nil, fatal(err, "commit")
	}
	e.stateDB.commit(receipt.KV)
	return &Result{Hash: hash, Ty: receipt.Ty, Receipt: receipt}, nil
}

func writeKV(batch dbm.Batch, kvs []*types.KeyValue) {
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
			continue
		}
		batch.Set(kv.Key, kv.Value)
	}
}
