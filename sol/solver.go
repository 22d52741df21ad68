// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"context"

	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// Solver implements one solution method (time loop or nonlinear solve)
type Solver interface {
	Run(ctx context.Context, cfg *inp.SimConfig) *Results
}

// allocators holds all available solvers
var allocators = make(map[string]func(dom *Domain) Solver)

// Results holds the outcome of one run
type Results struct {
	Times      []float64            // shared ordered time points
	NodeTemps  map[string][]float64 // node id → temperature series [K]
	CondFlows  map[string][]float64 // conductor id → flow series [W], from → to
	EnergyErr  float64              // energy balance relative error (transient)
	Converged  bool                 // whether the run converged / completed
	Iterations int                  // Newton iterations (steady)
}

// newResults allocates the result buffers for a domain
func newResults(dom *Domain) *Results {
	r := &Results{
		NodeTemps: make(map[string][]float64, len(dom.NodeIds)),
		CondFlows: make(map[string][]float64, len(dom.Conductors)),
	}
	for _, id := range dom.NodeIds {
		r.NodeTemps[id] = nil
	}
	for _, c := range dom.Conductors {
		r.CondFlows[c.Id] = nil
	}
	return r
}

// record appends one time point with every node temperature and every
// conductor flow computed from the given state
func (o *Results) record(dom *Domain, t float64, tmap map[string]float64) {
	o.Times = append(o.Times, t)
	for _, id := range dom.NodeIds {
		o.NodeTemps[id] = append(o.NodeTemps[id], tmap[id])
	}
	for _, c := range dom.Conductors {
		o.CondFlows[c.Id] = append(o.CondFlows[c.Id], CondFlow(c, tmap[c.NodeFrom], tmap[c.NodeTo]))
	}
}

// copyTemps clones a working temperature map
func copyTemps(tmap map[string]float64) map[string]float64 {
	c := make(map[string]float64, len(tmap))
	for k, v := range tmap {
		c[k] = v
	}
	return c
}

// Run dispatches a simulation on an assembled domain. Steady
// configurations use the Newton steady-state solver; transient ones use
// the method named in the configuration (rk4 by default). Cancellation
// through ctx returns partial results with Converged set to false.
// Transient results carry the energy balance relative error.
func Run(ctx context.Context, dom *Domain, cfg *inp.SimConfig) (res *Results, err error) {
	cfg.PostProcess()
	key := cfg.Method
	if cfg.Kind == inp.SimSteady {
		key = inp.SimSteady
	}
	alloc, ok := allocators[key]
	if !ok {
		return nil, chk.Err("cannot find solver named %q", key)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	res = alloc(dom).Run(ctx, cfg)
	if cfg.Kind != inp.SimSteady {
		res.EnergyErr = dom.EnergyBalance(res, 0).RelErr
	}
	return
}

// cancelled tells whether the context has been cancelled
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
