// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// ReceiptRps log of one rps tx, indexed by ExecLocal
type ReceiptRps struct {
	Name      string
	Addr      string
	Hand      Hand
	PrevState GameState
	State     GameState
}

// Marshal Marshal
func (r *ReceiptRps) Marshal() []byte {
	var b []byte
	b = types.AppendString(b, 1, r.Name)
	b = types.AppendString(b, 2, r.Addr)
	b = types.AppendVarint(b, 3, uint64(r.Hand))
	b = types.AppendVarint(b, 4, uint64(r.PrevState))
	b = types.AppendVarint(b, 5, uint64(r.State))
	return b
}

// Unmarshal Unmarshal
func (r *ReceiptRps) Unmarshal(data []byte) error {
	*r = ReceiptRps{}
	return types.DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			r.Name = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 2:
			r.Addr = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 3:
			r.Hand = Hand(x)
		case 4:
			r.PrevState = GameState(x)
		case 5:
			r.State = GameState(x)
		default:
			return nil
		}
		return types.CheckType(num, typ, protowire.VarintType)
	})
}
