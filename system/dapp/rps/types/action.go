// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// RpsAction the payload of a rps tx. Value is one of *RpsAction_Create or
// *RpsAction_Shoot and always agrees with Ty.
type RpsAction struct {
	Ty    int32
	Name  string
	Value isRpsActionValue
}

type isRpsActionValue interface {
	isRpsActionValue()
}

// RpsAction_Create create a game
type RpsAction_Create struct {
	Create *RpsCreate
}

// RpsAction_Shoot submit a hand
type RpsAction_Shoot struct {
	Shoot *RpsShoot
}

func (*RpsAction_Create) isRpsActionValue() {}
func (*RpsAction_Shoot) isRpsActionValue()  {}

// RpsCreate Players is kept as sent, the count is checked against the store
// after the name
type RpsCreate struct {
	Players int64
}

// RpsShoot RpsShoot
type RpsShoot struct {
	Hand Hand
}

// NewCreateAction NewCreateAction
func NewCreateAction(name string, players int64) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionCreate,
		Name:  name,
		Value: &RpsAction_Create{Create: &RpsCreate{Players: players}},
	}
}

// NewShootAction NewShootAction
func NewShootAction(name string, hand Hand) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionShoot,
		Name:  name,
		Value: &RpsAction_Shoot{Shoot: &RpsShoot{Hand: hand}},
	}
}

// GetCreate nil unless a create
func (a *RpsAction) GetCreate() *RpsCreate {
	if v, ok := a.GetValue().(*RpsAction_Create); ok {
		return v.Create
	}
	return nil
}

// GetShoot nil unless a shoot
func (a *RpsAction) GetShoot() *RpsShoot {
	if v, ok := a.GetValue().(*RpsAction_Shoot); ok {
		return v.Shoot
	}
	return nil
}

// GetValue GetValue
func (a *RpsAction) GetValue() isRpsActionValue {
	if a != nil {
		return a.Value
	}
	return nil
}

// GetHand the hand the action carries, HandNone if it carries none
func (a *RpsAction) GetHand() Hand {
	if s := a.GetShoot(); s != nil {
		return s.Hand
	}
	return HandNone
}

// ActionName the action string of the payload
func (a *RpsAction) ActionName() string {
	switch a.Ty {
	case RpsActionCreate:
		return ActionCreate
	case RpsActionShoot:
		return ActionShoot
	}
	return ""
}

// Marshal payload fields: 1 name, 2 action, 3 hand, 4 players
func (a *RpsAction) Marshal() []byte {
	var b []byte
	b = types.AppendString(b, 1, a.Name)
	b = types.AppendString(b, 2, a.ActionName())
	if h := a.GetHand(); h != HandNone {
		b = types.AppendString(b, 3, h.String())
	}
	if c := a.GetCreate(); c != nil {
		b = types.AppendVarint(b, 4, uint64(c.Players))
	}
	return b
}

// Unmarshal decode the payload and check its shape. Checks that need the
// store are left to the executor. A players field that is not a varint
// counts as no count, a hand field that is not a string as an invalid hand.
func (a *RpsAction) Unmarshal(data []byte) error {
	*a = RpsAction{}
	var (
		name, action, hand string
		hasHand, handIsStr bool
		players            int64
	)
	err := types.DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			name = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 2:
			action = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 3:
			hasHand = true
			handIsStr = typ == protowire.BytesType
			hand = string(v)
		case 4:
			players = 0
			if typ == protowire.VarintType {
				players = int64(x)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if name == "" {
		return errors.Wrap(ErrMissingField, "name")
	}
	if action == "" {
		return errors.Wrap(ErrMissingField, "action")
	}
	a.Name = name
	switch action {
	case ActionCreate:
		if hasHand {
			return errors.Wrap(ErrInvalidHand, "CREATE carries no hand")
		}
		a.Ty = RpsActionCreate
		a.Value = &RpsAction_Create{Create: &RpsCreate{Players: players}}
	case ActionShoot:
		if !hasHand || (handIsStr && hand == "") {
			return ErrMissingHand
		}
		if !handIsStr {
			return errors.Wrap(ErrInvalidHand, "hand is not a string")
		}
		h, err := ParseHand(hand)
		if err != nil {
			return err
		}
		a.Ty = RpsActionShoot
		a.Value = &RpsAction_Shoot{Shoot: &RpsShoot{Hand: h}}
	default:
		return errors.Wrapf(ErrUnknownAction, "%q", action)
	}
	return nil
}

// DecodeAction DecodeAction
func DecodeAction(payload []byte) (*RpsAction, error) {
	action := &RpsAction{}
	if err := action.Unmarshal(payload); err != nil {
		return nil, err
	}
	return action, nil
}

// NewTx an unsigned rps tx carrying action
func NewTx(action *RpsAction, nonce int64) *types.Transaction {
	return &types.Transaction{
		Execer:  ExecerRps,
		Payload: action.Marshal(),
		Nonce:   nonce,
	}
}

// EncodeRaw encode payload fields as given, for clients that build a payload
// without the typed action
func EncodeRaw(name, action, hand string, players int64) []byte {
	var b []byte
	if name != "" {
		b = types.AppendString(b, 1, name)
	}
	if action != "" {
		b = types.AppendString(b, 2, action)
	}
	if hand != "" {
		b = types.AppendString(b, 3, hand)
	}
	if players != 0 {
		b = types.AppendVarint(b, 4, uint64(players))
	}
	return b
}
