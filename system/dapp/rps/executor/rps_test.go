// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/common/crypto"
	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/33cn/rps/util"
	"github.com/stretchr/testify/require"
)

type player struct {
	addr string
	priv crypto.PrivKey
}

func newPlayer() player {
	addr, priv := util.Genaddress()
	return player{addr: addr, priv: priv}
}

type testEnv struct {
	t     *testing.T
	db    dbm.DB
	rps   *Rps
	nonce int64
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := dbm.NewDB("rps", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	t.Cleanup(db.Close)
	r := newRps().(*Rps)
	r.SetStateDB(db)
	r.SetLocalDB(db)
	return &testEnv{t: t, db: db, rps: r}
}

func (e *testEnv) tx(p player, action *rpstypes.RpsAction) *types.Transaction {
	e.nonce++
	return util.CreateRpsTx(p.priv, action, e.nonce)
}

// send check, exec and commit one tx the way the executor host does
func (e *testEnv) send(p player, action *rpstypes.RpsAction) (*types.Receipt, error) {
	tx := e.tx(p, action)
	if err := e.rps.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	receipt, err := e.rps.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	util.SaveKVList(e.db, receipt.KV)
	set, err := e.rps.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.Nil(e.t, err)
	util.SaveKVList(e.db, set.KV)
	return receipt, nil
}

func (e *testEnv) mustSend(p player, action *rpstypes.RpsAction) *types.Receipt {
	receipt, err := e.send(p, action)
	require.Nil(e.t, err)
	return receipt
}

func (e *testEnv) game(name string) *rpstypes.Game {
	game, err := newGameDB(e.db).Get(name)
	require.Nil(e.t, err)
	return game
}

func (e *testEnv) putGame(game *rpstypes.Game) {
	util.SaveKVList(e.db, []*types.KeyValue{newGameDB(e.db).Set(game)})
}

// snapshot every value in the store, in key order
func (e *testEnv) snapshot() [][]byte {
	values, err := e.db.List(nil, 0)
	require.Nil(e.t, err)
	return values
}
