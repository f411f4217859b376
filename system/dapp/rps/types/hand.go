// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Hand one of ROCK, PAPER, SCISSORS; HandNone marks an absent hand
type Hand int32

// hands
const (
	HandNone Hand = iota
	Rock
	Paper
	Scissors
)

var handNames = map[Hand]string{
	Rock:     "ROCK",
	Paper:    "PAPER",
	Scissors: "SCISSORS",
}

// ParseHand exact, case sensitive
func ParseHand(s string) (Hand, error) {
	for h, name := range handNames {
		if name == s {
			return h, nil
		}
	}
	return HandNone, errors.Wrapf(ErrInvalidHand, "%q", s)
}

// Valid h is in the closed set
func (h Hand) Valid() bool {
	_, ok := handNames[h]
	return ok
}

func (h Hand) String() string {
	if name, ok := handNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Hand(%d)", int32(h))
}

// MarshalText MarshalText
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText UnmarshalText
func (h *Hand) UnmarshalText(text []byte) error {
	v, err := ParseHand(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Outcome WIN, LOSE or TIE, always from the reference hand's perspective
type Outcome int32

// outcomes
const (
	OutcomeNone Outcome = iota
	Win
	Lose
	Tie
)

var outcomeNames = map[Outcome]string{
	Win:  "WIN",
	Lose: "LOSE",
	Tie:  "TIE",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int32(o))
}

// MarshalText MarshalText
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText UnmarshalText
func (o *Outcome) UnmarshalText(text []byte) error {
	for v, name := range outcomeNames {
		if name == string(text) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("invalid outcome %q", text)
}

// Inverse the same result seen from the other hand
func (o Outcome) Inverse() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	}
	return o
}

// GameState OPEN until every hand is in, then COMPLETE
type GameState int32

// states, zero is never written and reads as an inconsistent record
const (
	StateUnknown GameState = iota
	StateOpen
	StateComplete
)

var stateNames = map[GameState]string{
	StateOpen:     "OPEN",
	StateComplete: "COMPLETE",
}

// ParseState OPEN or COMPLETE
func ParseState(s string) (GameState, error) {
	for st, name := range stateNames {
		if name == s {
			return st, nil
		}
	}
	return StateUnknown, fmt.Errorf("invalid state %q", s)
}

func (s GameState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GameState(%d)", int32(s))
}

// MarshalText MarshalText
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText UnmarshalText
func (s *GameState) UnmarshalText(text []byte) error {
	v, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
