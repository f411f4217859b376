// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/33cn/rps/util"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenKeyCmd(),
		PrivKeyToAddrCmd(),
		PubKeyToAddrCmd(),
	)

	return cmd
}

// GenKeyCmd generate a key pair
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a secp256k1 private key and its address",
		Run:   genKey,
	}
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	addr, priv := util.Genaddress()
	commandtypes.PrintJSON(&commandtypes.AccountResult{
		Addr:    addr,
		PubKey:  common.ToHex(priv.PubKey().Bytes()),
		PrivKey: common.ToHex(priv.Bytes()),
	})
}

// PrivKeyToAddrCmd address of a private key
func PrivKeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get the address of a private key",
		Run:   privKeyToAddr,
	}
	cmd.Flags().StringP("key", "k", "", "private key (hex)")
	cmd.MarkFlagRequired("key")
	return cmd
}

func privKeyToAddr(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	priv, err := util.LoadPrivKey(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pub := priv.PubKey().Bytes()
	commandtypes.PrintJSON(&commandtypes.AccountResult{
		Addr:   address.PubKeyToAddr(pub),
		PubKey: common.ToHex(pub),
	})
}

// PubKeyToAddrCmd address of a public key
func PubKeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pub2addr",
		Short: "Get the address of a public key",
		Run:   pubKeyToAddr,
	}
	cmd.Flags().StringP("pub", "p", "", "public key (hex)")
	cmd.MarkFlagRequired("pub")
	return cmd
}

func pubKeyToAddr(cmd *cobra.Command, args []string) {
	pubstr, _ := cmd.Flags().GetString("pub")
	pub, err := common.FromHex(pubstr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.PrintJSON(&commandtypes.AccountResult{
		Addr:   address.PubKeyToAddr(pub),
		PubKey: common.ToHex(pub),
	})
}
