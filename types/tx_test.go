// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"testing"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/system/crypto/secp256k1"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New(secp256k1.Name)
	require.Nil(t, err)
	priv, err := c.GenKey()
	require.Nil(t, err)
	return priv
}

func TestTxSign(t *testing.T) {
	priv := genKey(t)
	tx := &types.Transaction{Execer: []byte("rps"), Payload: []byte("payload"), Nonce: 7}
	assert.False(t, tx.CheckSign())
	assert.Equal(t, "", tx.From())

	hash := tx.Hash()
	tx.Sign(secp256k1.ID, priv)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, address.PubKeyToAddr(priv.PubKey().Bytes()), tx.From())

	tx.Nonce = 8
	assert.False(t, tx.CheckSign())
	assert.NotEqual(t, hash, tx.Hash())
}

func TestTxEncode(t *testing.T) {
	priv := genKey(t)
	tx := &types.Transaction{Execer: []byte("rps"), Payload: []byte{1, 2, 3}, Nonce: 1}
	tx.Sign(secp256k1.ID, priv)

	var tx2 types.Transaction
	require.Nil(t, types.Decode(types.Encode(tx), &tx2))
	assert.Equal(t, tx.Hash(), tx2.Hash())
	assert.True(t, tx2.CheckSign())
	assert.Equal(t, tx.From(), tx2.From())
	assert.Contains(t, tx2.JSON(), tx.From())

	assert.NotNil(t, types.Decode([]byte{0x0a, 0x05, 0x01}, &tx2))
}

func TestTxBadSignature(t *testing.T) {
	priv := genKey(t)
	tx := &types.Transaction{Execer: []byte("rps")}
	tx.Sign(secp256k1.ID, priv)
	tx.Signature.Ty = 99
	assert.False(t, tx.CheckSign())
	tx.Signature.Ty = secp256k1.ID
	tx.Signature.Pubkey = []byte{1}
	assert.False(t, tx.CheckSign())
}

func TestTxResult(t *testing.T) {
	r := &types.TxResult{Ty: types.ExecErr, Error: "ErrUnknownGame"}
	var r2 types.TxResult
	require.Nil(t, types.Decode(types.Encode(r), &r2))
	assert.Equal(t, *r, r2)

	kv := &types.KeyValue{Key: []byte("k")}
	var kv2 types.KeyValue
	require.Nil(t, types.Decode(types.Encode(kv), &kv2))
	assert.Nil(t, kv2.Value)
	assert.Equal(t, []byte("k"), kv2.Key)
}
