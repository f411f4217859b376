// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor runs txs through their dapp drivers one at a time and
// commits what they return
package executor

import (
	"sync"
	"time"

	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/pluginmgr"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// Result what happened to one tx. A rejected tx has Ty types.ExecErr and
// the reason in Err, nothing of it is written.
type Result struct {
	Hash    []byte
	Ty      int32
	Err     error
	Receipt *types.Receipt
}

// Executor serializes txs over one store. CheckTx and Exec of a tx see the
// same state, its state and index writes are committed in one batch.
type Executor struct {
	mu      sync.Mutex
	cfg     *types.Exec
	db      dbm.DB
	stateDB *StateDB
	localDB *LocalDB
	metrics *metrics.ExecMetrics
}

// New executor over db, registers the linked plugins on first use
func New(cfg *types.Config, db dbm.DB) *Executor {
	pluginmgr.InitExec()
	exec := &Executor{
		cfg:     cfg.Exec,
		db:      db,
		stateDB: NewStateDB(db, int(cfg.Exec.StateCacheSize)),
		localDB: NewLocalDB(db),
		metrics: metrics.NewExecMetrics(nil),
	}
	metrics.StartMetrics(cfg.Metrics, exec.metrics.Registry())
	return exec
}

// Metrics Metrics
func (exec *Executor) Metrics() *metrics.ExecMetrics {
	return exec.metrics
}

// ExecTx check, apply and commit tx. The error is fatal: the tx passed its
// checks and could not be applied, or the store failed. Rejections come
// back in the Result.
func (exec *Executor) ExecTx(tx *types.Transaction) (*Result, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.execTx(tx)
}

// ExecTxs run txs in order, stopping at the first fatal error
func (exec *Executor) ExecTxs(txs []*types.Transaction) ([]*Result, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	results := make([]*Result, 0, len(txs))
	for i, tx := range txs {
		r, err := exec.execTx(tx)
		if err != nil {
			elog.Error("ExecTxs", "index", i, "err", err)
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// CheckTx check tx against the current state without applying it
func (exec *Executor) CheckTx(tx *types.Transaction) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	e := newExecutor(exec)
	_, err := e.checkTx(tx, 0)
	return err
}

// Query run a query function of an executor against the committed state
func (exec *Executor) Query(execer, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	d, err := drivers.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(exec.stateDB)
	d.SetLocalDB(exec.localDB)
	var params []byte
	if param != nil {
		params = types.Encode(param)
	}
	return d.Query(funcName, params)
}

// GetTxResult committed result of the tx with hash
func (exec *Executor) GetTxResult(hash []byte) (*types.TxResult, error) {
	value, err := exec.db.Get(calcTxKey(hash))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var r types.TxResult
	if err := types.Decode(value, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Close close the store
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.db.Close()
	elog.Info("executor module closed")
}

func (exec *Executor) execTx(tx *types.Transaction) (*Result, error) {
	begin := time.Now()
	e := newExecutor(exec)
	r, err := e.execTx(tx)
	if err != nil {
		exec.metrics.Fatal.Inc(1)
		return nil, err
	}
	if r.Ty != types.ExecOk {
		exec.metrics.Reject(r.Err)
		elog.Debug("exec tx rejected", "hash", common.ToHex(r.Hash), "err", r.Err)
		return r, nil
	}
	exec.metrics.Accepted.Inc(1)
	exec.metrics.ExecTime.UpdateSince(begin)
	elog.Debug("exec tx", "hash", common.ToHex(r.Hash), "execer", string(tx.Execer), "cost", time.Since(begin))
	return r, nil
}

func rejected(hash []byte, err error) *Result {
	return &Result{Hash: hash, Ty: types.ExecErr, Err: err}
}

// fatalError a failure after a tx was accepted, or of the store itself
type fatalError struct {
	error
}

// Cause keeps errors.Cause working through the wrapper
func (f *fatalError) Cause() error {
	return errors.Cause(f.error)
}

func fatal(err error, msg string) error {
	return &fatalError{errors.Wrap(err, msg)}
}

// IsFatal err is an apply or storage failure, not a rejection
func IsFatal(err error) bool {
	_, ok := err.(*fatalError)
	return ok
}
