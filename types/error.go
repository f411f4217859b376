// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// framework errors
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrDecode             = errors.New("ErrDecode")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrNotSupport         = errors.New("ErrNotSupport")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrUnknowDriver       = errors.New("ErrUnknowDriver")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSign               = errors.New("ErrSign")
	ErrNoSignature        = errors.New("ErrNoSignature")
	ErrEmptyTx            = errors.New("ErrEmptyTx")
	ErrTxDup              = errors.New("ErrTxDup")
	ErrNotAllowKey        = errors.New("ErrNotAllowKey")
	ErrNotAllowWriteState = errors.New("ErrNotAllowWriteState")
)
