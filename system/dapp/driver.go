// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp executor driver interface and the shared DriverBase
package dapp

import (
	"bytes"
	"reflect"

	dbm "github.com/33cn/rps/common/db"
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
)

var blog = log.New("module", "execs.base")

// Driver an executor. The executor host calls CheckTx and Exec with the same
// state view for one tx; writes only reach the store through the returned
// receipt.
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	// fixed name of the code
	GetDriverName() string
	// name this instance executes under
	GetName() string
	SetName(string)
	Allow(tx *types.Transaction, index int) error
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase default behaviour, embedded by every driver
type DriverBase struct {
	statedb    dbm.KV
	localdb    dbm.KVDB
	name       string
	child      Driver
	childValue reflect.Value
}

// SetChild set the embedding driver, needed for Query dispatch
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

// SetStateDB set the state view
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

// GetStateDB state view
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set the local index view
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB local index view
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetName name of the executor, driver name unless renamed
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName SetName
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// Allow a tx is allowed when its execer is this executor
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if bytes.Equal(tx.Execer, []byte(d.GetName())) {
		return nil
	}
	return types.ErrExecNameNotAllow
}

// CheckTx accepts everything
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// Exec no actions by default
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrActionNotSupport
}

// ExecLocal no local index by default
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query call the child method Query_<funcName>(in *T) (types.Message, error)
// with params decoded into a new T
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	if d.child == nil {
		return nil, types.ErrQueryNotSupport
	}
	method, ok := queryMethod(d.childValue, funcName)
	if !ok {
		blog.Debug("Query", "funcname not found", funcName)
		return nil, types.ErrQueryNotSupport
	}
	in := reflect.New(method.Type().In(0).Elem())
	msg, ok := in.Interface().(types.Message)
	if !ok {
		return nil, types.ErrQueryNotSupport
	}
	if err := types.Decode(params, msg); err != nil {
		return nil, err
	}
	out := method.Call([]reflect.Value{in})
	if errv := out[1].Interface(); errv != nil {
		return nil, errv.(error)
	}
	if out[0].IsNil() {
		return nil, nil
	}
	return out[0].Interface().(types.Message), nil
}
