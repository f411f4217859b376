// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
)

// Exec apply an accepted tx. Every error here is fatal: the tx passed CheckTx
// against the same state, so a failure means the state or the code is wrong.
func (r *Rps) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := rpstypes.DecodeAction(tx.Payload)
	if err != nil {
		return nil, rpstypes.Internalf("decode accepted tx: %v", err)
	}
	db := newGameDB(r.GetStateDB())
	old, err := db.Get(action.Name)
	if err == types.ErrNotFound {
		old = nil
	} else if err != nil {
		return nil, rpstypes.Internalf("load game %s: %v", action.Name, err)
	}
	game, err := applyGame(old, action, tx.From())
	if err != nil {
		rlog.Crit("Exec", "name", action.Name, "action", action.ActionName(), "from", tx.From(), "err", err)
		return nil, err
	}
	rlog.Debug("Exec", "name", game.Name, "action", action.ActionName(), "state", game.State, "hands", len(game.Hands))
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, db.Set(game))
	receipt.Logs = receiptLogs(old, game, action, tx.From())
	return receipt, nil
}

// applyGame the record after action, old is never modified. old is nil when
// the name has no record.
func applyGame(old *rpstypes.Game, action *rpstypes.RpsAction, from string) (*rpstypes.Game, error) {
	hand := action.GetHand()
	var game *rpstypes.Game
	switch {
	case old != nil && action.Ty == rpstypes.RpsActionCreate:
		return nil, rpstypes.Internalf("create over existing game %s", action.Name)
	case old != nil:
		game = old.Clone()
	case hand != rpstypes.HandNone:
		return nil, rpstypes.Internalf("hand without a registered game %s", action.Name)
	case action.Ty != rpstypes.RpsActionCreate:
		return nil, rpstypes.Internalf("%s without a registered game %s", action.ActionName(), action.Name)
	default:
		game = rpstypes.NewGame(action.Name, action.GetCreate().Players, from)
		if game.Players < 2 {
			return nil, rpstypes.Internalf("game %s for %d players", game.Name, game.Players)
		}
	}

	if hand != rpstypes.HandNone {
		if game.State != rpstypes.StateOpen {
			return nil, rpstypes.Internalf("hand for game %s in state %s", game.Name, game.State)
		}
		if game.HasHand(from) {
			return nil, rpstypes.Internalf("second hand from %s in game %s", from, game.Name)
		}
		if !hand.Valid() {
			return nil, rpstypes.Internalf("invalid hand %s in game %s", hand, game.Name)
		}
		game.Hands[from] = hand
	}

	count := int64(len(game.Hands))
	switch {
	case count > game.Players:
		return nil, rpstypes.Internalf("game %s has %d hands for %d players", game.Name, count, game.Players)
	case game.State != rpstypes.StateOpen && count < game.Players:
		return nil, rpstypes.Internalf("game %s in state %s with %d of %d hands", game.Name, game.State, count, game.Players)
	case count == game.Players:
		if err := resolveGame(game); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// resolveGame fill Results against the initial player's hand and complete the game
func resolveGame(game *rpstypes.Game) error {
	initial, ok := game.Hands[game.InitialID]
	if !ok {
		return rpstypes.Internalf("game %s is full without the creator's hand", game.Name)
	}
	results := make(map[string]rpstypes.Outcome, len(game.Hands)-1)
	for _, p := range game.Participants() {
		if p == game.InitialID {
			continue
		}
		o, err := Resolve(initial, game.Hands[p])
		if err != nil {
			return err
		}
		results[p] = o
	}
	game.Results = results
	game.State = rpstypes.StateComplete
	return nil
}

func receiptLogs(old, game *rpstypes.Game, action *rpstypes.RpsAction, from string) []*types.ReceiptLog {
	prev := rpstypes.StateUnknown
	if old != nil {
		prev = old.State
	}
	r := &rpstypes.ReceiptRps{
		Name:      game.Name,
		Addr:      from,
		Hand:      action.GetHand(),
		PrevState: prev,
		State:     game.State,
	}
	ty := int32(rpstypes.TyLogRpsShoot)
	if action.Ty == rpstypes.RpsActionCreate {
		ty = rpstypes.TyLogRpsCreate
	}
	logs := []*types.ReceiptLog{{Ty: ty, Log: types.Encode(r)}}
	if prev != game.State && game.State == rpstypes.StateComplete {
		logs = append(logs, &types.ReceiptLog{Ty: rpstypes.TyLogRpsComplete, Log: types.Encode(r)})
	}
	return logs
}
