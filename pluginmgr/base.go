// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// PluginBase Plugin built from plain functions
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string)
	Cmd      func() *cobra.Command
}

// GetName GetName
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName GetExecutorName
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec InitExec
func (p *PluginBase) InitExec() {
	if p.Exec != nil {
		p.Exec(p.ExecName)
	}
}

// AddCmd AddCmd
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
