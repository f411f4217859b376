// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps game commands
package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	rpstypes "github.com/33cn/rps/system/dapp/rps/types"
	"github.com/33cn/rps/types"
	"github.com/33cn/rps/util"
	"github.com/spf13/cobra"
)

// RpsCmd rps command
func RpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Rock paper scissors games",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateGameCmd(),
		ShootCmd(),
		GetGameCmd(),
		ListGamesCmd(),
	)
	return cmd
}

// CreateGameCmd create a game
func CreateGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game",
		Run:   createGame,
	}
	addCreateGameFlags(cmd)
	return cmd
}

func addCreateGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name, a random one when empty")
	cmd.Flags().Int64P("players", "p", 2, "number of players, 1 plays against the computer")
	addKeyFlag(cmd)
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key (hex) signing the tx")
	cmd.MarkFlagRequired("key")
}

func createGame(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	players, _ := cmd.Flags().GetInt64("players")
	if name == "" {
		name = util.RandGameName()
	}
	sendAction(cmd, rpstypes.NewCreateAction(name, players))
}

// ShootCmd submit a hand
func ShootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shoot",
		Short: "Submit a hand to a game",
		Run:   shoot,
	}
	addShootFlags(cmd)
	return cmd
}

func addShootFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")
	cmd.Flags().StringP("hand", "d", "", "rock, paper or scissors")
	cmd.MarkFlagRequired("hand")
	addKeyFlag(cmd)
}

func shoot(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	handstr, _ := cmd.Flags().GetString("hand")
	hand, err := rpstypes.ParseHand(strings.ToUpper(handstr))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	sendAction(cmd, rpstypes.NewShootAction(name, hand))
}

func sendAction(cmd *cobra.Command, action *rpstypes.RpsAction) {
	key, _ := cmd.Flags().GetString("key")
	priv, err := util.LoadPrivKey(key)
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
	tx := util.CreateRpsTx(priv, action, time.Now().UnixNano())
	r, err := exec.ExecTx(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	result := commandtypes.DecodeTxResult(tx, r)
	if r.Ty == types.ExecOk {
		if game, err := exec.Query(rpstypes.RpsX, rpstypes.FuncNameGetGame, &types.ReqString{Data: action.Name}); err == nil {
			result.Result = game
		}
	}
	commandtypes.PrintJSON(result)
}

// GetGameCmd show a game
func GetGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a game",
		Run:   getGame,
	}
	cmd.Flags().StringP("name", "n", "", "game name")
	cmd.MarkFlagRequired("name")
	return cmd
}

func getGame(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	query(cmd, rpstypes.FuncNameGetGame, name)
}

// ListGamesCmd list games by state or address
func ListGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by state or by address",
		Run:   listGames,
	}
	cmd.Flags().StringP("state", "s", "", "OPEN or COMPLETE")
	cmd.Flags().StringP("addr", "a", "", "address that created or played the games")
	return cmd
}

func listGames(cmd *cobra.Command, args []string) {
	state, _ := cmd.Flags().GetString("state")
	addr, _ := cmd.Flags().GetString("addr")
	switch {
	case state != "" && addr == "":
		query(cmd, rpstypes.FuncNameListGamesByState, strings.ToUpper(state))
	case addr != "" && state == "":
		query(cmd, rpstypes.FuncNameListGamesByAddr, addr)
	default:
		fmt.Fprintln(os.Stderr, "one of --state or --addr is required")
	}
}

func query(cmd *cobra.Command, funcName, param string) {
	exec, err := commandtypes.OpenExecutor(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer exec.Close()
	reply, err := exec.Query(rpstypes.RpsX, funcName, &types.ReqString{Data: param})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commandtypes.PrintJSON(reply)
}
