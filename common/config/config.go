// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the node configuration file
package config

import (
	"os"

	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

//Init read the toml file at path, empty path gives the built-in configuration
func Init(path string) (*types.Config, error) {
	if path == "" {
		return types.NewConfig(types.GetDefaultCfgstring())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return types.NewConfig(string(data))
}
