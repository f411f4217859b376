// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		QueryTxCmd(),
	)

	return cmd
}

// QueryTxCmd  get tx by hash
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the committed result of a transaction by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	hashstr, _ := cmd.Flags().GetString("hash")
	hash, err := common.FromHex(hashstr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	exec, err := commandtypes.OpenExecutor(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	r, err := exec.GetTxResult(hash)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.PrintJSON(r)
}
