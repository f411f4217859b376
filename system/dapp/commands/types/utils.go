// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/config"
	dbm "github.com/33cn/rps/common/db"
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/types"
	"github.com/33cn/rps/util"
	"github.com/spf13/cobra"
)

// LoadConfig config of the --conf file, default config when none is given,
// with every path moved under --datadir
func LoadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("conf")
	datadir, _ := cmd.Flags().GetString("datadir")
	cfg, err := config.Init(path)
	if err != nil {
		return nil, err
	}
	if datadir != "" {
		util.ResetDatadir(cfg, datadir)
	}
	return cfg, nil
}

// OpenExecutor an executor over the store of the command's config
func OpenExecutor(cmd *cobra.Command) (*executor.Executor, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	return executor.New(cfg, db), nil
}

// DecodeTxResult printable form of an exec result
func DecodeTxResult(tx *types.Transaction, r *executor.Result) *TxResult {
	result := &TxResult{
		Hash:   common.ToHex(r.Hash),
		Execer: string(tx.Execer),
		From:   tx.From(),
		Nonce:  tx.Nonce,
		Ok:     r.Ty == types.ExecOk,
	}
	if r.Err != nil {
		result.Error = r.Err.Error()
	}
	return result
}

// PrintJSON print v as indented json to stdout
func PrintJSON(v interface{}) {
	FprintJSON(os.Stdout, v)
}

// FprintJSON FprintJSON
func FprintJSON(w io.Writer, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(w, string(data))
}
