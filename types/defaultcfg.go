// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var cfgstring = `
Title="local"

[log]
# debug(dbug)/info/warn/error(eror)/crit
loglevel = "error"
logConsoleLevel = "error"
# empty: console only
logFile = ""
# MB
maxFileSize = 300
maxBackups = 100
# days
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
name="rps"
# leveldb / goleveldb / memdb / gobadgerdb
driver="leveldb"
dbPath="datadir"
dbCache=128

[exec]
stateCacheSize=1024
enableLocalIndex=true

[metrics]
enableMetrics=false
dataEmitMode="log"
duration=60
`

//GetDefaultCfgstring built-in configuration
func GetDefaultCfgstring() string {
	return cfgstring
}
