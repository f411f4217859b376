// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

func calcGameKey(name string) []byte {
	return append(types.CalcStatePrefix(rpstypes.ExecerRps), "game-"+name...)
}

// gameDB the game records of the state store. Reads go to the view the
// driver was given, writes are only returned as KV.
type gameDB struct {
	db dbm.KV
}

func newGameDB(db dbm.KV) *gameDB {
	return &gameDB{db: db}
}

// Get types.ErrNotFound when there is no record for name
func (g *gameDB) Get(name string) (*rpstypes.Game, error) {
	value, err := g.db.Get(calcGameKey(name))
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	game := &rpstypes.Game{}
	if err := types.Decode(value, game); err != nil {
		return nil, errors.Wrapf(err, "game %s", name)
	}
	return game, nil
}

// Contains a record exists for name, whether or not it decodes
func (g *gameDB) Contains(name string) (bool, error) {
	value, err := g.db.Get(calcGameKey(name))
	if err == dbm.ErrNotFoundInDb {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value != nil, nil
}

// Set the write replacing the record of game.Name
func (g *gameDB) Set(game *rpstypes.Game) *types.KeyValue {
	return &types.KeyValue{Key: calcGameKey(game.Name), Value: types.Encode(game)}
}
