// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/rps/types"
)

// isAllowKeyWrite an executor only writes state under mavl-<execer>-
func isAllowKeyWrite(key, execer []byte) bool {
	return bytes.HasPrefix(key, types.CalcStatePrefix(execer))
}

// isAllowLocalKey an executor only writes its index under LODB-<execer>-
func isAllowLocalKey(key, execer []byte) bool {
	return bytes.HasPrefix(key, types.CalcLocalPrefix(execer))
}

func checkKeys(execer []byte, kvs []*types.KeyValue, allow func(key, execer []byte) bool) error {
	for _, kv := range kvs {
		if !allow(kv.Key, execer) {
			elog.Error("err receipt key", "key", string(kv.Key), "tx.exec", string(execer))
			return types.ErrNotAllowKey
		}
	}
	return nil
}

func calcTxKey(hash []byte) []byte {
	return append([]byte(types.TxResultPrefix), hash...)
}
