// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr registry of the dapp plugins linked into the binary
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/spf13/cobra"
)

var (
	pluginItems = make(map[string]Plugin)
	once        = &sync.Once{}
)

// InitExec initialise every registered executor, once per process
func InitExec() {
	once.Do(func() {
		for _, item := range sortedItems() {
			item.InitExec()
		}
	})
}

// HasExec an executor named name is registered
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register register a plugin, called from the plugin init
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd add the commands of every plugin to rootCmd
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range sortedItems() {
		item.AddCmd(rootCmd)
	}
}

func sortedItems() []Plugin {
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]Plugin, 0, len(names))
	for _, name := range names {
		items = append(items, pluginItems[name])
	}
	return items
}
