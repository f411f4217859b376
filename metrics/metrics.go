// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics executor counters and their periodic report
package metrics

import (
	"fmt"
	"time"

	rpslog "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = rpslog.New("module", "rps metrics")
)

// metric names
const (
	TxAccepted     = "rps.tx.accepted"
	TxRejected     = "rps.tx.rejected"
	TxFatal        = "rps.tx.fatal"
	TxExecTime     = "rps.tx.exec"
	RejectedPrefix = "rps.tx.rejected."
)

// ExecMetrics counters of the executor host
type ExecMetrics struct {
	registry go_metrics.Registry
	Accepted go_metrics.Counter
	Rejected go_metrics.Counter
	Fatal    go_metrics.Counter
	ExecTime go_metrics.Timer
}

// NewExecMetrics register the executor metrics in r, nil r means a fresh registry
func NewExecMetrics(r go_metrics.Registry) *ExecMetrics {
	if r == nil {
		r = go_metrics.NewRegistry()
	}
	return &ExecMetrics{
		registry: r,
		Accepted: go_metrics.GetOrRegisterCounter(TxAccepted, r),
		Rejected: go_metrics.GetOrRegisterCounter(TxRejected, r),
		Fatal:    go_metrics.GetOrRegisterCounter(TxFatal, r),
		ExecTime: go_metrics.GetOrRegisterTimer(TxExecTime, r),
	}
}

// Registry Registry
func (m *ExecMetrics) Registry() go_metrics.Registry {
	return m.registry
}

// Reject count a rejected tx, also per reason
func (m *ExecMetrics) Reject(reason error) {
	m.Rejected.Inc(1)
	if reason != nil {
		m.RejectedBy(reason).Inc(1)
	}
}

// RejectedBy counter of txs rejected for reason
func (m *ExecMetrics) RejectedBy(reason error) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(RejectedPrefix+errors.Cause(reason).Error(), m.registry)
}

type printer struct {
	l log15.Logger
}

func (p printer) Printf(format string, v ...interface{}) {
	p.l.Info(fmt.Sprintf(format, v...))
}

//StartMetrics 根据配置文件相关参数启动m
func StartMetrics(cfg *types.Metrics, r go_metrics.Registry) bool {
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return false
	}
	switch cfg.DataEmitMode {
	case "log":
		duration := time.Duration(cfg.Duration) * time.Second
		if duration <= 0 {
			log.Error("startMetrics", "invalid duration", cfg.Duration)
			return false
		}
		log.Info("StartMetrics with log", "duration", duration)
		go go_metrics.Log(r, duration, printer{l: log})
		return true
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return false
	}
}
