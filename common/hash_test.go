// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0a0b", ToHex([]byte{10, 11}))

	b, err := FromHex("0x0a0b")
	require.Nil(t, err)
	assert.Equal(t, []byte{10, 11}, b)

	b, err = FromHex("a0b")
	require.Nil(t, err)
	assert.Equal(t, []byte{10, 11}, b)

	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte("abc")
	dst := CopyBytes(src)
	dst[0] = 'x'
	assert.Equal(t, "abc", string(src))
}

func TestHashes(t *testing.T) {
	assert.Equal(t, "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ToHex(Sha256([]byte("abc"))))
	double := Sha2Sum([]byte("abc"))
	assert.Equal(t, Sha256(Sha256([]byte("abc"))), double[:])
	rim := Rimp160AfterSha256([]byte("abc"))
	assert.Len(t, rim, 20)
}
