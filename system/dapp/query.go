// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/rps/types"
)

// ListLocal values of the local index under prefix, in key order
func (d *DriverBase) ListLocal(prefix []byte, count int32) ([][]byte, error) {
	db := d.GetLocalDB()
	if db == nil {
		return nil, types.ErrQueryNotSupport
	}
	values, err := db.List(prefix, count)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}
