// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	drivers "github.com/33cn/rps/system/dapp"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
)

func localPrefix() string {
	return string(types.CalcLocalPrefix(rpstypes.ExecerRps))
}

func calcStatePrefix(state rpstypes.GameState) []byte {
	return []byte(fmt.Sprintf("%sstate:%s:", localPrefix(), state))
}

func calcStateKey(state rpstypes.GameState, name string) []byte {
	return append(calcStatePrefix(state), name...)
}

func calcAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%saddr:%s:", localPrefix(), addr))
}

func calcAddrKey(addr, name string) []byte {
	return append(calcAddrPrefix(addr), name...)
}

// ExecLocal index games by state and by the addresses that played them
func (r *Rps) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	kv := drivers.NewKVCreator()
	for _, item := range receipt.Logs {
		var log rpstypes.ReceiptRps
		switch item.Ty {
		case rpstypes.TyLogRpsCreate, rpstypes.TyLogRpsShoot, rpstypes.TyLogRpsComplete:
			if err := types.Decode(item.Log, &log); err != nil {
				return nil, err
			}
		default:
			continue
		}
		name := []byte(log.Name)
		switch item.Ty {
		case rpstypes.TyLogRpsCreate:
			kv.Add(calcStateKey(log.State, log.Name), name)
			kv.Add(calcAddrKey(log.Addr, log.Name), name)
		case rpstypes.TyLogRpsShoot:
			kv.Add(calcAddrKey(log.Addr, log.Name), name)
		case rpstypes.TyLogRpsComplete:
			if log.PrevState != rpstypes.StateUnknown {
				kv.Del(calcStateKey(log.PrevState, log.Name))
			}
			kv.Add(calcStateKey(log.State, log.Name), name)
		}
	}
	return &types.LocalDBSet{KV: kv.KVList()}, nil
}
