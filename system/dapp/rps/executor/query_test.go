// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	drivers "github.com/33cn/rps/system/dapp"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(t *testing.T, msg types.Message) []string {
	reply, ok := msg.(*rpstypes.ReplyGameList)
	require.True(t, ok)
	var out []string
	for _, g := range reply.Games {
		out = append(out, g.Name)
	}
	return out
}

func query(env *testEnv, funcName, param string) (types.Message, error) {
	return env.rps.Query(funcName, types.Encode(&types.ReqString{Data: param}))
}

func TestExecLocalIndex(t *testing.T) {
	env := newTestEnv(t)
	a, b := newPlayer(), newPlayer()
	env.mustSend(a, rpstypes.NewCreateAction("g1", 2))
	env.mustSend(a, rpstypes.NewCreateAction("g2", 2))
	env.mustSend(b, rpstypes.NewCreateAction("g3", 2))
	env.mustSend(a, rpstypes.NewShootAction("g1", rpstypes.Rock))

	msg, err := query(env, rpstypes.FuncNameListGamesByState, "OPEN")
	require.Nil(t, err)
	assert.Equal(t, []string{"g1", "g2", "g3"}, names(t, msg))
	_, err = query(env, rpstypes.FuncNameListGamesByState, "COMPLETE")
	assert.Equal(t, types.ErrNotFound, err)

	env.mustSend(b, rpstypes.NewShootAction("g1", rpstypes.Scissors))

	msg, err = query(env, rpstypes.FuncNameListGamesByState, "OPEN")
	require.Nil(t, err)
	assert.Equal(t, []string{"g2", "g3"}, names(t, msg))
	msg, err = query(env, rpstypes.FuncNameListGamesByState, "COMPLETE")
	require.Nil(t, err)
	assert.Equal(t, []string{"g1"}, names(t, msg))
	assert.Equal(t, rpstypes.Win, msg.(*rpstypes.ReplyGameList).Games[0].Results[b.addr])

	msg, err = query(env, rpstypes.FuncNameListGamesByAddr, a.addr)
	require.Nil(t, err)
	assert.Equal(t, []string{"g1", "g2"}, names(t, msg))
	msg, err = query(env, rpstypes.FuncNameListGamesByAddr, b.addr)
	require.Nil(t, err)
	assert.Equal(t, []string{"g1", "g3"}, names(t, msg))

	_, err = query(env, rpstypes.FuncNameListGamesByState, "DONE")
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = query(env, rpstypes.FuncNameListGamesByAddr, "")
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestExecLocalSkipsForeignLogs(t *testing.T) {
	r := newRps()
	set, err := r.ExecLocal(&types.Transaction{}, &types.ReceiptData{Logs: []*types.ReceiptLog{{Ty: 1, Log: []byte{0xff}}}}, 0)
	require.Nil(t, err)
	assert.Empty(t, set.KV)

	_, err = r.ExecLocal(&types.Transaction{}, &types.ReceiptData{Logs: []*types.ReceiptLog{{Ty: rpstypes.TyLogRpsShoot, Log: []byte{0xff}}}}, 0)
	assert.NotNil(t, err)
}

func TestQueryGetGame(t *testing.T) {
	env := newTestEnv(t)
	a := newPlayer()
	env.mustSend(a, rpstypes.NewCreateAction("g", 1))

	msg, err := query(env, rpstypes.FuncNameGetGame, "g")
	require.Nil(t, err)
	g := msg.(*rpstypes.Game)
	assert.Equal(t, a.addr, g.InitialID)
	assert.True(t, g.Computer)

	_, err = query(env, rpstypes.FuncNameGetGame, "missing")
	assert.Equal(t, types.ErrNotFound, err)
	_, err = query(env, rpstypes.FuncNameGetGame, "")
	assert.Equal(t, types.ErrInvalidParam, err)

	assert.ElementsMatch(t, []string{
		rpstypes.FuncNameGetGame,
		rpstypes.FuncNameListGamesByState,
		rpstypes.FuncNameListGamesByAddr,
	}, drivers.ListQuery(env.rps))
}

func TestInit(t *testing.T) {
	Init("rps-test")
	defer func() { driverName = rpstypes.RpsX }()
	d, err := drivers.LoadDriver("rps-test")
	require.Nil(t, err)
	assert.Equal(t, "rps-test", d.GetName())
	assert.Equal(t, "rps-test", GetName())
}
