// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// Plugin a dapp bundle: executor driver plus its client commands
type Plugin interface {
	// unique package name of the plugin
	GetName() string
	// name of the executor the plugin provides
	GetExecutorName() string
	// called once when executors are initialised
	InitExec()
	AddCmd(rootCmd *cobra.Command)
}
