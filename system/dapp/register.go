// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
)

var elog = log.New("module", "execs")

// DriverCreate creates a fresh driver instance
type DriverCreate func() Driver

var (
	registedExecDriver = make(map[string]DriverCreate)
	registerLock       sync.RWMutex
)

// Register register a driver under name
func Register(name string, create DriverCreate) {
	registerLock.Lock()
	defer registerLock.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
}

// LoadDriver new instance of the driver registered under name
func LoadDriver(name string) (Driver, error) {
	registerLock.RLock()
	defer registerLock.RUnlock()
	c, ok := registedExecDriver[name]
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnknowDriver
	}
	return c(), nil
}

// ListDrivers names of every registered driver, sorted
func ListDrivers() []string {
	registerLock.RLock()
	defer registerLock.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
