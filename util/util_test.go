// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenaddress(t *testing.T) {
	addr, priv := Genaddress()
	assert.Nil(t, address.CheckAddress(addr))
	assert.Equal(t, addr, address.PubKeyToAddr(priv.PubKey().Bytes()))

	loaded, err := LoadPrivKey(common.ToHex(priv.Bytes()))
	require.Nil(t, err)
	assert.True(t, loaded.Equals(priv))
	_, err = LoadPrivKey("0xzz")
	assert.NotNil(t, err)
}

func TestCreateRpsTx(t *testing.T) {
	addr, priv := Genaddress()
	tx := CreateRpsTx(priv, rpstypes.NewShootAction("g", rpstypes.Rock), 1)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, addr, tx.From())
	assert.Equal(t, rpstypes.ExecerRps, tx.Execer)

	unsigned := CreateRpsTx(nil, rpstypes.NewShootAction("g", rpstypes.Rock), 1)
	assert.False(t, unsigned.CheckSign())
	assert.Equal(t, "", unsigned.From())

	none := CreateTxWithExecer(priv, "none", []byte("x"))
	assert.True(t, none.CheckSign())

	assert.True(t, strings.HasPrefix(RandGameName(), "game-"))
	assert.NotEqual(t, RandGameName(), RandGameName())
}

func TestResetDatadir(t *testing.T) {
	cfg := types.MustNewConfig(types.GetDefaultCfgstring())
	datadir := ResetDatadir(cfg, "$TEMP/rps")
	assert.True(t, strings.HasSuffix(datadir, "rps"))
	assert.Equal(t, filepath.Join(datadir, "datadir"), cfg.Store.DbPath)
}

func TestTestDB(t *testing.T) {
	dir, db := CreateTestDB()
	defer CloseTestDB(dir, db)
	SaveKVList(db, []*types.KeyValue{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	})
	SaveKVList(db, []*types.KeyValue{{Key: []byte("a")}})
	_, err := db.Get([]byte("a"))
	assert.NotNil(t, err)
	v, err := db.Get([]byte("b"))
	require.Nil(t, err)
	assert.Equal(t, []byte("2"), v)
}
