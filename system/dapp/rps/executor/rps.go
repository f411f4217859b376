// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor the rock-paper-scissors executor.
//
// CheckTx validates a tx against the current state without writing, Exec
// applies an accepted tx and returns the replacement record of its game as
// the only state write. Both are deterministic: the same state and tx give
// the same result on every node.
package executor

import (
	log "github.com/33cn/rps/common/log"
	drivers "github.com/33cn/rps/system/dapp"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
)

var (
	rlog       = log.New("module", "execs.rps")
	driverName = rpstypes.RpsX
)

// Init register the driver under name
func Init(name string) {
	driverName = name
	drivers.Register(name, newRps)
}

// GetName GetName
func GetName() string {
	return newRps().GetName()
}

// Rps the executor
type Rps struct {
	drivers.DriverBase
}

func newRps() drivers.Driver {
	r := &Rps{}
	r.SetChild(r)
	return r
}

// GetDriverName GetDriverName
func (r *Rps) GetDriverName() string {
	return driverName
}
