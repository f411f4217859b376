// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"

	"github.com/33cn/rps/common/crypto"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/executor"
	_ "github.com/33cn/rps/system"
	drivers "github.com/33cn/rps/system/dapp"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/33cn/rps/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

// badexec writes outside its own state prefix
type badexec struct {
	drivers.DriverBase
}

func newBadexec() drivers.Driver {
	d := &badexec{}
	d.SetChild(d)
	return d
}

func (d *badexec) GetDriverName() string { return "badexec" }

func (d *badexec) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: []byte("mavl-rps-game-x"), Value: []byte("x")}}}, nil
}

func init() {
	drivers.Register("badexec", newBadexec)
}

type ExecutorSuite struct {
	suite.Suite
	dir   string
	db    dbm.DB
	exec  *executor.Executor
	nonce int64
	privA crypto.PrivKey
	privB crypto.PrivKey
	addrA string
	addrB string
}

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(ExecutorSuite))
}

func (s *ExecutorSuite) SetupSuite() {
	s.addrA, s.privA = util.Genaddress()
	s.addrB, s.privB = util.Genaddress()
}

func (s *ExecutorSuite) SetupTest() {
	s.dir, s.db = util.CreateTestDB()
	cfg := types.MustNewConfig(types.GetDefaultCfgstring())
	s.exec = executor.New(cfg, s.db)
}

func (s *ExecutorSuite) TearDownTest() {
	util.CloseTestDB(s.dir, s.db)
}

func (s *ExecutorSuite) tx(priv crypto.PrivKey, action *rpstypes.RpsAction) *types.Transaction {
	s.nonce++
	return util.CreateRpsTx(priv, action, s.nonce)
}

func (s *ExecutorSuite) send(priv crypto.PrivKey, action *rpstypes.RpsAction) *executor.Result {
	r, err := s.exec.ExecTx(s.tx(priv, action))
	s.Require().Nil(err)
	return r
}

func (s *ExecutorSuite) game(name string) *rpstypes.Game {
	msg, err := s.exec.Query(rpstypes.RpsX, rpstypes.FuncNameGetGame, &types.ReqString{Data: name})
	s.Require().Nil(err)
	return msg.(*rpstypes.Game)
}

func (s *ExecutorSuite) snapshot() [][]byte {
	values, err := s.db.List(nil, 0)
	s.Require().Nil(err)
	return values
}

func (s *ExecutorSuite) TestPlayGame() {
	r := s.send(s.privA, rpstypes.NewCreateAction("g1", 2))
	s.Equal(int32(types.ExecOk), r.Ty)
	s.Nil(r.Err)
	r = s.send(s.privA, rpstypes.NewShootAction("g1", rpstypes.Rock))
	s.Equal(int32(types.ExecOk), r.Ty)
	r = s.send(s.privB, rpstypes.NewShootAction("g1", rpstypes.Scissors))
	s.Equal(int32(types.ExecOk), r.Ty)

	g := s.game("g1")
	s.Equal(rpstypes.StateComplete, g.State)
	s.Equal(s.addrA, g.InitialID)
	s.Equal(map[string]rpstypes.Outcome{s.addrB: rpstypes.Win}, g.Results)

	res, err := s.exec.GetTxResult(r.Hash)
	s.Require().Nil(err)
	s.Equal(int32(types.ExecOk), res.Ty)

	msg, err := s.exec.Query(rpstypes.RpsX, rpstypes.FuncNameListGamesByState, &types.ReqString{Data: "COMPLETE"})
	s.Require().Nil(err)
	s.Len(msg.(*rpstypes.ReplyGameList).Games, 1)

	m := s.exec.Metrics()
	s.Equal(int64(3), m.Accepted.Count())
	s.Equal(int64(0), m.Rejected.Count())
}

func (s *ExecutorSuite) TestRejectionLeavesStoreUnchanged() {
	s.send(s.privA, rpstypes.NewCreateAction("g1", 2))
	s.send(s.privA, rpstypes.NewShootAction("g1", rpstypes.Rock))
	before := s.snapshot()

	tx := s.tx(s.privA, rpstypes.NewShootAction("g1", rpstypes.Paper))
	for i := 0; i < 2; i++ {
		r, err := s.exec.ExecTx(tx)
		s.Require().Nil(err)
		s.Equal(int32(types.ExecErr), r.Ty)
		s.Equal(rpstypes.ErrDuplicateHandSubmission, errors.Cause(r.Err))
		s.Equal(before, s.snapshot())
	}
	_, err := s.exec.GetTxResult(tx.Hash())
	s.Equal(types.ErrNotFound, err)

	s.Equal(rpstypes.ErrDuplicateHandSubmission, errors.Cause(s.exec.CheckTx(tx)))
	s.Equal(int64(2), s.exec.Metrics().RejectedBy(rpstypes.ErrDuplicateHandSubmission).Count())
}

func (s *ExecutorSuite) TestTxChecks() {
	unsigned := util.CreateRpsTx(nil, rpstypes.NewCreateAction("g", 2), 1)
	r, err := s.exec.ExecTx(unsigned)
	s.Require().Nil(err)
	s.Equal(types.ErrNoSignature, r.Err)

	bad := s.tx(s.privA, rpstypes.NewCreateAction("g", 2))
	bad.Payload = rpstypes.NewCreateAction("h", 2).Marshal()
	r, err = s.exec.ExecTx(bad)
	s.Require().Nil(err)
	s.Equal(types.ErrSign, r.Err)

	r, err = s.exec.ExecTx(util.CreateTxWithExecer(s.privA, "coins", []byte("x")))
	s.Require().Nil(err)
	s.Equal(types.ErrUnknowDriver, r.Err)

	r, err = s.exec.ExecTx(nil)
	s.Require().Nil(err)
	s.Equal(types.ErrEmptyTx, r.Err)

	tx := s.tx(s.privA, rpstypes.NewCreateAction("g", 2))
	r, err = s.exec.ExecTx(tx)
	s.Require().Nil(err)
	s.Equal(int32(types.ExecOk), r.Ty)
	r, err = s.exec.ExecTx(tx)
	s.Require().Nil(err)
	s.Equal(types.ErrTxDup, r.Err)
}

func (s *ExecutorSuite) TestExecTxs() {
	txs := []*types.Transaction{
		s.tx(s.privA, rpstypes.NewCreateAction("g", 1)),
		s.tx(s.privB, rpstypes.NewShootAction("ghost", rpstypes.Rock)),
		s.tx(s.privA, rpstypes.NewShootAction("g", rpstypes.Paper)),
		s.tx(s.privB, rpstypes.NewShootAction("g", rpstypes.Rock)),
		s.tx(s.privB, rpstypes.NewShootAction("g", rpstypes.Scissors)),
	}
	results, err := s.exec.ExecTxs(txs)
	s.Require().Nil(err)
	s.Require().Len(results, 5)
	s.Equal(int32(types.ExecOk), results[0].Ty)
	s.Equal(rpstypes.ErrUnknownGame, errors.Cause(results[1].Err))
	s.Equal(int32(types.ExecOk), results[2].Ty)
	s.Equal(int32(types.ExecOk), results[3].Ty)
	s.Equal(rpstypes.ErrGameComplete, errors.Cause(results[4].Err))

	g := s.game("g")
	s.True(g.Computer)
	s.Equal(rpstypes.Win, g.Results[s.addrB])
}

func (s *ExecutorSuite) TestUnknownStoredState() {
	s.send(s.privA, rpstypes.NewCreateAction("g", 2))
	g := rpstypes.NewGame("g", 2, s.addrA)
	g.State = rpstypes.StateUnknown
	key := []byte("mavl-rps-game-g")
	s.Require().Nil(s.db.Set(key, g.Marshal()))
	fresh := executor.New(types.MustNewConfig(types.GetDefaultCfgstring()), s.db)

	r, err := fresh.ExecTx(s.tx(s.privB, rpstypes.NewShootAction("g", rpstypes.Rock)))
	s.Require().Nil(err)
	s.Equal(rpstypes.ErrInconsistentState, errors.Cause(r.Err))
}

func (s *ExecutorSuite) TestFatalKeyOutsidePrefix() {
	before := s.snapshot()
	_, err := s.exec.ExecTx(util.CreateTxWithExecer(s.privA, "badexec", []byte("x")))
	s.Require().NotNil(err)
	s.True(executor.IsFatal(err))
	s.Equal(types.ErrNotAllowKey, errors.Cause(err))
	s.Equal(before, s.snapshot())
	s.Equal(int64(1), s.exec.Metrics().Fatal.Count())

	results, err := s.exec.ExecTxs([]*types.Transaction{
		s.tx(s.privA, rpstypes.NewCreateAction("g", 2)),
		util.CreateTxWithExecer(s.privA, "badexec", []byte("y")),
		s.tx(s.privA, rpstypes.NewCreateAction("h", 2)),
	})
	s.NotNil(err)
	s.Len(results, 1)
	_, err = s.exec.Query(rpstypes.RpsX, rpstypes.FuncNameGetGame, &types.ReqString{Data: "h"})
	s.Equal(types.ErrNotFound, err)
}
