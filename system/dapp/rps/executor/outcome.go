// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
)

type handPair struct {
	a, b rpstypes.Hand
}

var outcomes = map[handPair]rpstypes.Outcome{
	{rpstypes.Rock, rpstypes.Rock}:         rpstypes.Tie,
	{rpstypes.Rock, rpstypes.Paper}:        rpstypes.Lose,
	{rpstypes.Rock, rpstypes.Scissors}:     rpstypes.Win,
	{rpstypes.Paper, rpstypes.Rock}:        rpstypes.Win,
	{rpstypes.Paper, rpstypes.Paper}:       rpstypes.Tie,
	{rpstypes.Paper, rpstypes.Scissors}:    rpstypes.Lose,
	{rpstypes.Scissors, rpstypes.Rock}:     rpstypes.Lose,
	{rpstypes.Scissors, rpstypes.Paper}:    rpstypes.Win,
	{rpstypes.Scissors, rpstypes.Scissors}: rpstypes.Tie,
}

// Resolve the outcome of a against b, from a's side
func Resolve(a, b rpstypes.Hand) (rpstypes.Outcome, error) {
	o, ok := outcomes[handPair{a, b}]
	if !ok {
		return rpstypes.OutcomeNone, rpstypes.Internalf("resolve %s against %s", a, b)
	}
	return o, nil
}
