// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// executor name
const (
	RpsX        = "rps"
	PackageName = "chain33.rps"
)

// action ty
const (
	RpsActionCreate = iota + 1
	RpsActionShoot
)

// action names as they appear in the payload
const (
	ActionCreate = "CREATE"
	ActionShoot  = "SHOOT"
)

// log ty
const (
	TyLogRpsCreate   = 3001
	TyLogRpsShoot    = 3002
	TyLogRpsComplete = 3003
)

// query function names
const (
	FuncNameGetGame          = "GetGame"
	FuncNameListGamesByState = "ListGamesByState"
	FuncNameListGamesByAddr  = "ListGamesByAddr"
)

// ExecerRps execer bytes of a rps tx
var ExecerRps = []byte(RpsX)
