// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

// CheckTx reject a tx that must not be applied to the current state
func (r *Rps) CheckTx(tx *types.Transaction, index int) error {
	action, err := rpstypes.DecodeAction(tx.Payload)
	if err != nil {
		rlog.Debug("CheckTx decode", "err", err)
		return err
	}
	db := newGameDB(r.GetStateDB())
	if create := action.GetCreate(); create != nil {
		exists, err := db.Contains(action.Name)
		if err != nil {
			return err
		}
		return checkCreate(exists, create)
	}
	game, err := db.Get(action.Name)
	switch {
	case err == types.ErrNotFound:
		game = nil
	case errors.Cause(err) == types.ErrDecode:
		rlog.Error("CheckTx stored game", "name", action.Name, "err", err)
		return errors.Wrap(rpstypes.ErrInconsistentState, err.Error())
	case err != nil:
		return err
	}
	return checkGame(game, action, tx.From())
}

// checkGame game is nil when no record exists under the action's name
func checkGame(game *rpstypes.Game, action *rpstypes.RpsAction, from string) error {
	switch action.Ty {
	case rpstypes.RpsActionCreate:
		return checkCreate(game != nil, action.GetCreate())
	case rpstypes.RpsActionShoot:
		return checkShoot(game, action.GetShoot(), from)
	}
	return rpstypes.ErrUnknownAction
}

// checkCreate the name is checked before the player count
func checkCreate(exists bool, create *rpstypes.RpsCreate) error {
	if exists {
		return rpstypes.ErrDuplicateGame
	}
	if create == nil || create.Players <= 0 {
		return rpstypes.ErrInvalidPlayerCount
	}
	return nil
}

func checkShoot(game *rpstypes.Game, shoot *rpstypes.RpsShoot, from string) error {
	if shoot == nil || shoot.Hand == rpstypes.HandNone {
		return rpstypes.ErrMissingHand
	}
	if !shoot.Hand.Valid() {
		return rpstypes.ErrInvalidHand
	}
	if game == nil {
		return rpstypes.ErrUnknownGame
	}
	if game.State == rpstypes.StateComplete {
		return rpstypes.ErrGameComplete
	}
	if int64(len(game.Hands)) >= game.Players {
		return rpstypes.ErrInconsistentState
	}
	if game.State != rpstypes.StateOpen {
		return rpstypes.ErrInconsistentState
	}
	if game.HasHand(from) {
		return rpstypes.ErrDuplicateHandSubmission
	}
	// the last seat completes the game, which needs the creator's hand
	if int64(len(game.Hands))+1 == game.Players && from != game.InitialID && !game.HasHand(game.InitialID) {
		return rpstypes.ErrCreatorHandPending
	}
	return nil
}
