// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nonsense"))
}

func TestFillDefault(t *testing.T) {
	l := &types.Log{}
	fillDefaultValue(l)
	assert.Equal(t, "eror", l.Loglevel)
	assert.Equal(t, "eror", l.LogConsoleLevel)
}

func TestSetFileLog(t *testing.T) {
	defer Discard()
	file := filepath.Join(t.TempDir(), "rps.log")
	SetFileLog(&types.Log{LogFile: file, Loglevel: "info", CallerFile: true, CallerFunction: true})
	New("module", "test").Info("hello", "k", "v")

	data, err := os.ReadFile(file)
	require.Nil(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "module=test")
}
