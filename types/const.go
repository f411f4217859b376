// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// receipt ty
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// key prefixes, a driver may only write keys under its own prefix
const (
	StatePrefix = "mavl-"
	LocalPrefix = "LODB-"
	// tx hash -> tx result, written by the executor
	TxResultPrefix = "TX-"
)

// CalcStatePrefix state key prefix of execer
func CalcStatePrefix(execer []byte) []byte {
	return []byte(StatePrefix + string(execer) + "-")
}

// CalcLocalPrefix local key prefix of execer
func CalcLocalPrefix(execer []byte) []byte {
	return []byte(LocalPrefix + string(execer) + "-")
}
