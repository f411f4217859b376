// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system links the built-in crypto and dapp plugins
package system

import (
	_ "github.com/33cn/rps/system/crypto/secp256k1" //register crypto
	_ "github.com/33cn/rps/system/dapp/rps"         //register dapp
)
