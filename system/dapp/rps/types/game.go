// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sort"

	"github.com/33cn/rps/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// Game the persisted record of one game.
//
// Results holds one outcome per participant other than InitialID, computed as
// Resolve(Hands[InitialID], Hands[participant]). The value is the initial
// player's result against that participant, not the participant's own result.
type Game struct {
	Name      string             `json:"name"`
	State     GameState          `json:"state"`
	Players   int64              `json:"players"`
	Computer  bool               `json:"computer"`
	InitialID string             `json:"initialId"`
	Hands     map[string]Hand    `json:"hands"`
	Results   map[string]Outcome `json:"results"`
}

// NewGame an OPEN game without hands. A request for one player is a game
// against the computer and reserves two seats.
func NewGame(name string, players int64, creator string) *Game {
	game := &Game{
		Name:      name,
		State:     StateOpen,
		Players:   players,
		InitialID: creator,
		Hands:     make(map[string]Hand),
		Results:   make(map[string]Outcome),
	}
	if players == 1 {
		game.Players = 2
		game.Computer = true
	}
	return game
}

// Clone deep copy, the maps are never shared
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	c := *g
	c.Hands = make(map[string]Hand, len(g.Hands))
	for k, v := range g.Hands {
		c.Hands[k] = v
	}
	c.Results = make(map[string]Outcome, len(g.Results))
	for k, v := range g.Results {
		c.Results[k] = v
	}
	return &c
}

// HasHand addr already submitted a hand
func (g *Game) HasHand(addr string) bool {
	_, ok := g.Hands[addr]
	return ok
}

// Participants hand owners in byte order
func (g *Game) Participants() []string {
	return sortedKeys(g.Hands)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Marshal deterministic encoding: fields in number order, map entries in key order
func (g *Game) Marshal() []byte {
	var b []byte
	b = types.AppendString(b, 1, g.Name)
	b = types.AppendVarint(b, 2, uint64(g.State))
	b = types.AppendVarint(b, 3, uint64(g.Players))
	b = types.AppendBool(b, 4, g.Computer)
	b = types.AppendString(b, 5, g.InitialID)
	for _, k := range sortedKeys(g.Hands) {
		b = types.AppendBytes(b, 6, appendEntry(nil, k, uint64(g.Hands[k])))
	}
	for _, k := range sortedKeys(g.Results) {
		b = types.AppendBytes(b, 7, appendEntry(nil, k, uint64(g.Results[k])))
	}
	return b
}

// Unmarshal Unmarshal. Enum values are not range checked here, a record
// holding an unknown state or hand is reported by the caller that uses it.
func (g *Game) Unmarshal(data []byte) error {
	*g = Game{
		Hands:   make(map[string]Hand),
		Results: make(map[string]Outcome),
	}
	return types.DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			g.Name = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 2:
			g.State = GameState(x)
			return types.CheckType(num, typ, protowire.VarintType)
		case 3:
			g.Players = int64(x)
			return types.CheckType(num, typ, protowire.VarintType)
		case 4:
			g.Computer = protowire.DecodeBool(x)
			return types.CheckType(num, typ, protowire.VarintType)
		case 5:
			g.InitialID = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 6, 7:
			if err := types.CheckType(num, typ, protowire.BytesType); err != nil {
				return err
			}
			k, val, err := decodeEntry(v)
			if err != nil {
				return err
			}
			if num == 6 {
				g.Hands[k] = Hand(val)
			} else {
				g.Results[k] = Outcome(val)
			}
		}
		return nil
	})
}

func appendEntry(b []byte, key string, value uint64) []byte {
	b = types.AppendString(b, 1, key)
	return types.AppendVarint(b, 2, value)
}

func decodeEntry(data []byte) (key string, value uint64, err error) {
	err = types.DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			key = string(v)
			return types.CheckType(num, typ, protowire.BytesType)
		case 2:
			value = x
			return types.CheckType(num, typ, protowire.VarintType)
		}
		return nil
	})
	return key, value, err
}

// ReplyGameList query reply
type ReplyGameList struct {
	Games []*Game `json:"games"`
}

// Marshal Marshal
func (r *ReplyGameList) Marshal() []byte {
	var b []byte
	for _, g := range r.Games {
		b = types.AppendMessage(b, 1, g)
	}
	return b
}

// Unmarshal Unmarshal
func (r *ReplyGameList) Unmarshal(data []byte) error {
	*r = ReplyGameList{}
	return types.DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		if num != 1 {
			return nil
		}
		if err := types.CheckType(num, typ, protowire.BytesType); err != nil {
			return err
		}
		g := &Game{}
		if err := g.Unmarshal(v); err != nil {
			return err
		}
		r.Games = append(r.Games, g)
		return nil
	})
}
