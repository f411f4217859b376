// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps rock paper scissors dapp
package rps

import (
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/rps/commands"
	"github.com/33cn/rps/system/dapp/rps/executor"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rpstypes.PackageName,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RpsCmd,
	})
}
