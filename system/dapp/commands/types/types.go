// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult a generated or loaded key pair
type AccountResult struct {
	Addr    string `json:"addr"`
	PubKey  string `json:"pubkey,omitempty"`
	PrivKey string `json:"privkey,omitempty"`
}

// TxResult defines txresult command
type TxResult struct {
	Hash   string      `json:"hash"`
	Execer string      `json:"execer"`
	From   string      `json:"from"`
	Nonce  int64       `json:"nonce"`
	Ok     bool        `json:"ok"`
	Error  string      `json:"error,omitempty"`
	Result interface{} `json:"result,omitempty"`
}
