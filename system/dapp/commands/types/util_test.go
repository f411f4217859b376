// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("conf", "", "")
	cmd.Flags().String("datadir", "", "")
	return cmd
}

func TestLoadConfig(t *testing.T) {
	cmd := newCmd()
	cfg, err := LoadConfig(cmd)
	require.Nil(t, err)
	assert.Equal(t, "datadir", cfg.Store.DbPath)

	dir := t.TempDir()
	require.Nil(t, cmd.Flags().Set("datadir", dir))
	cfg, err = LoadConfig(cmd)
	require.Nil(t, err)
	assert.Equal(t, filepath.Join(dir, "datadir"), cfg.Store.DbPath)

	require.Nil(t, cmd.Flags().Set("conf", filepath.Join(dir, "missing.toml")))
	_, err = LoadConfig(cmd)
	assert.NotNil(t, err)
}

func TestDecodeTxResult(t *testing.T) {
	tx := &types.Transaction{Execer: []byte("rps"), Nonce: 3}
	r := DecodeTxResult(tx, &executor.Result{Hash: []byte{1, 2}, Ty: types.ExecErr, Err: errors.New("ErrGameComplete")})
	assert.Equal(t, "0x0102", r.Hash)
	assert.False(t, r.Ok)
	assert.Equal(t, "ErrGameComplete", r.Error)
	assert.Equal(t, int64(3), r.Nonce)

	var buf bytes.Buffer
	FprintJSON(&buf, r)
	assert.Contains(t, buf.String(), `"error": "ErrGameComplete"`)
}
