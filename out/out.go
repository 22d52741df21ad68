// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements extraction and tabular reporting of run results
package out

import (
	"github.com/acanino561/thermosat-sub000/sol"
	"github.com/cpmech/gosl/chk"
)

// NodeSeries returns the shared time points and the temperature series of
// one node
func NodeSeries(res *sol.Results, nodeId string) (times, temps []float64, err error) {
	temps, ok := res.NodeTemps[nodeId]
	if !ok {
		return nil, nil, chk.Err("results do not contain node %q", nodeId)
	}
	return res.Times, temps, nil
}

// CondSeries returns the shared time points and the flow series of one
// conductor (positive: from → to)
func CondSeries(res *sol.Results, condId string) (times, flows []float64, err error) {
	flows, ok := res.CondFlows[condId]
	if !ok {
		return nil, nil, chk.Err("results do not contain conductor %q", condId)
	}
	return res.Times, flows, nil
}

// FinalTemps returns the last recorded temperature of every node
func FinalTemps(res *sol.Results) map[string]float64 {
	temps := make(map[string]float64, len(res.NodeTemps))
	for id, series := range res.NodeTemps {
		if n := len(series); n > 0 {
			temps[id] = series[n-1]
		}
	}
	return temps
}
