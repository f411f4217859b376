// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
)

// Query_GetGame the record of one game
func (r *Rps) Query_GetGame(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, types.ErrInvalidParam
	}
	game, err := newGameDB(r.GetStateDB()).Get(in.Data)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Query_ListGamesByState OPEN or COMPLETE games in name order
func (r *Rps) Query_ListGamesByState(in *types.ReqString) (types.Message, error) {
	state, err := rpstypes.ParseState(in.Data)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	return r.listGames(calcStatePrefix(state))
}

// Query_ListGamesByAddr games addr created or played, in name order
func (r *Rps) Query_ListGamesByAddr(in *types.ReqString) (types.Message, error) {
	if in.Data == "" {
		return nil, types.ErrInvalidParam
	}
	return r.listGames(calcAddrPrefix(in.Data))
}

func (r *Rps) listGames(prefix []byte) (types.Message, error) {
	names, err := r.ListLocal(prefix, 0)
	if err != nil {
		return nil, err
	}
	db := newGameDB(r.GetStateDB())
	reply := &rpstypes.ReplyGameList{}
	for _, name := range names {
		game, err := db.Get(string(name))
		if err != nil {
			rlog.Error("listGames", "name", string(name), "err", err)
			return nil, err
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}
