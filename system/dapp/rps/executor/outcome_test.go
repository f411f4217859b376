// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allHands = []rpstypes.Hand{rpstypes.Rock, rpstypes.Paper, rpstypes.Scissors}

func TestResolve(t *testing.T) {
	cases := []struct {
		a, b rpstypes.Hand
		want rpstypes.Outcome
	}{
		{rpstypes.Rock, rpstypes.Rock, rpstypes.Tie},
		{rpstypes.Rock, rpstypes.Paper, rpstypes.Lose},
		{rpstypes.Rock, rpstypes.Scissors, rpstypes.Win},
		{rpstypes.Paper, rpstypes.Rock, rpstypes.Win},
		{rpstypes.Paper, rpstypes.Paper, rpstypes.Tie},
		{rpstypes.Paper, rpstypes.Scissors, rpstypes.Lose},
		{rpstypes.Scissors, rpstypes.Rock, rpstypes.Lose},
		{rpstypes.Scissors, rpstypes.Paper, rpstypes.Win},
		{rpstypes.Scissors, rpstypes.Scissors, rpstypes.Tie},
	}
	for _, c := range cases {
		got, err := Resolve(c.a, c.b)
		require.Nil(t, err)
		assert.Equal(t, c.want, got, "%s vs %s", c.a, c.b)
	}
}

func TestResolveInverse(t *testing.T) {
	for _, a := range allHands {
		for _, b := range allHands {
			ab, err := Resolve(a, b)
			require.Nil(t, err)
			ba, err := Resolve(b, a)
			require.Nil(t, err)
			assert.Equal(t, ab.Inverse(), ba)
			if a == b {
				assert.Equal(t, rpstypes.Tie, ab)
			} else {
				assert.NotEqual(t, rpstypes.Tie, ab)
			}
		}
	}
}

func TestResolveOutsideTable(t *testing.T) {
	_, err := Resolve(rpstypes.HandNone, rpstypes.Rock)
	assert.True(t, rpstypes.IsInternal(err))
	_, err = Resolve(rpstypes.Rock, rpstypes.Hand(42))
	assert.True(t, rpstypes.IsInternal(err))
}
