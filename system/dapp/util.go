// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/rps/types"
)

// KVCreator collects the KV a driver returns from Exec or ExecLocal
type KVCreator struct {
	kvs []*types.KeyValue
}

// NewKVCreator NewKVCreator
func NewKVCreator() *KVCreator {
	return &KVCreator{}
}

// Add add a write
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	if value == nil {
		value = []byte{}
	}
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	return c
}

// Del add a delete
func (c *KVCreator) Del(key []byte) *KVCreator {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key})
	return c
}

// KVList all writes in the order they were added
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}
