// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types transactions, receipts, configuration and errors shared by
// the executor and every dapp
package types

import (
	"github.com/33cn/rps/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// KeyValue a single store write, nil Value deletes
type KeyValue struct {
	Key   []byte
	Value []byte
}

// Marshal Marshal
func (kv *KeyValue) Marshal() []byte {
	var b []byte
	b = AppendBytes(b, 1, kv.Key)
	if kv.Value != nil {
		b = AppendBytes(b, 2, kv.Value)
	}
	return b
}

// Unmarshal Unmarshal
func (kv *KeyValue) Unmarshal(data []byte) error {
	*kv = KeyValue{}
	return DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			kv.Key = common.CopyBytes(v)
			return CheckType(num, typ, protowire.BytesType)
		case 2:
			kv.Value = common.CopyBytes(v)
			return CheckType(num, typ, protowire.BytesType)
		}
		return nil
	})
}

// ReceiptLog typed log emitted by Exec, consumed by ExecLocal
type ReceiptLog struct {
	Ty  int32
	Log []byte
}

// Receipt result of Exec: the state writes and logs of one tx
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

// ReceiptData receipt without KV, what ExecLocal sees
type ReceiptData struct {
	Ty   int32
	Logs []*ReceiptLog
}

// LocalDBSet local index writes
type LocalDBSet struct {
	KV []*KeyValue
}

// TxResult committed outcome of one tx, stored under TX-<hash>
type TxResult struct {
	Ty    int32  `json:"ty"`
	Error string `json:"error,omitempty"`
}

// Marshal Marshal
func (r *TxResult) Marshal() []byte {
	var b []byte
	b = AppendVarint(b, 1, uint64(r.Ty))
	if r.Error != "" {
		b = AppendString(b, 2, r.Error)
	}
	return b
}

// Unmarshal Unmarshal
func (r *TxResult) Unmarshal(data []byte) error {
	*r = TxResult{}
	return DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			r.Ty = int32(x)
			return CheckType(num, typ, protowire.VarintType)
		case 2:
			r.Error = string(v)
			return CheckType(num, typ, protowire.BytesType)
		}
		return nil
	})
}

// ReqString single string query parameter
type ReqString struct {
	Data string
}

// Marshal Marshal
func (r *ReqString) Marshal() []byte {
	return AppendString(nil, 1, r.Data)
}

// Unmarshal Unmarshal
func (r *ReqString) Unmarshal(data []byte) error {
	*r = ReqString{}
	return DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		if num == 1 {
			r.Data = string(v)
			return CheckType(num, typ, protowire.BytesType)
		}
		return nil
	})
}
