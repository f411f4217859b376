// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/pluginmgr"
	_ "github.com/33cn/rps/system"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "rock paper scissors on a local ledger",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "", "config file, the built-in config when empty")
	rootCmd.PersistentFlags().String("datadir", "", "data dir, relative store and log paths are placed under it")

	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.TxCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
