// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/rps/common/crypto"
	_ "github.com/33cn/rps/system/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genPubKey(t *testing.T) []byte {
	c, err := crypto.New("secp256k1")
	require.Nil(t, err)
	priv, err := c.GenKey()
	require.Nil(t, err)
	return priv.PubKey().Bytes()
}

func TestAddress(t *testing.T) {
	pub := genPubKey(t)
	addr := PubKeyToAddr(pub)
	assert.Equal(t, addr, PubKeyToAddress(pub).String())
	assert.Equal(t, addr, PubKeyToAddr(pub))
	require.Nil(t, CheckAddress(addr))

	a, err := NewAddrFromString(addr)
	require.Nil(t, err)
	assert.Equal(t, PubKeyToAddress(pub).Hash160, a.Hash160)
	assert.NotEqual(t, addr, PubKeyToAddr(genPubKey(t)))
}

func TestCheckAddressErrors(t *testing.T) {
	assert.Equal(t, ErrDecodeBase58, CheckAddress("0OIl"))
	assert.NotNil(t, CheckAddress("1abc"))

	addr := PubKeyToAddr(genPubKey(t))
	last := addr[len(addr)-1]
	repl := byte('2')
	if last == repl {
		repl = '3'
	}
	bad := addr[:len(addr)-1] + string(repl)
	assert.Equal(t, ErrCheckSum, CheckAddress(bad))
	// cached result
	assert.Equal(t, ErrCheckSum, CheckAddress(bad))
}
