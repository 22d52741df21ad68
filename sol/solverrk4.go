// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"context"
	"math"

	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/cpmech/gosl/io"
)

// RK4 implements the explicit classical Runge-Kutta integrator with
// adaptive stepping by step doubling: one step of size h is compared
// against two steps of size h/2 started from the same state; the
// difference over the diffusion nodes is the error estimate and the
// double-step result is the one accepted.
type RK4 struct {
	dom *Domain
}

// add solver to factory
func init() {
	allocators[inp.MethodRK4] = func(dom *Domain) Solver { return &RK4{dom: dom} }
}

// Run runs the transient time loop
func (o *RK4) Run(ctx context.Context, cfg *inp.SimConfig) *Results {

	dom := o.dom
	res := newResults(dom)
	res.Converged = true

	// initial state
	t := cfg.T0
	tmap := dom.IniTemps()
	dom.RelaxArithmetic(t, tmap)
	res.record(dom, t, tmap)

	h := cfg.Dt
	for t < cfg.Tf {

		// cancellation is honoured at the start of every outer step
		if cancelled(ctx) {
			res.Converged = false
			break
		}

		// step size for this attempt
		if cfg.DtFunc != nil {
			if hcap := cfg.DtFunc.F(t, nil); hcap > 0 && hcap < h {
				h = hcap
			}
		}
		hs := math.Min(h, cfg.Tf-t)

		// one full step and two half steps from the same start
		single := o.step(t, hs, copyTemps(tmap))
		double := o.step(t, hs/2.0, copyTemps(tmap))
		double = o.step(t+hs/2.0, hs/2.0, double)

		// error estimate over diffusion nodes
		errEst := 0.0
		for _, id := range dom.DiffIds {
			if d := math.Abs(single[id] - double[id]); d > errEst {
				errEst = d
			}
		}

		// reject: halve and retry, unless already at the floor
		if errEst >= cfg.Tol && hs > cfg.DtMin {
			h = math.Max(hs/2.0, cfg.DtMin)
			continue
		}

		// accept the (more accurate) double-step result
		t += hs
		tmap = double
		dom.AssertBoundary(tmap)
		dom.RelaxArithmetic(t, tmap)
		res.record(dom, t, tmap)
		if cfg.Verbose {
			io.Pf("rk4: t=%g h=%g err=%g\n", t, hs, errEst)
		}

		// grow the step
		if errEst > 0 {
			fac := math.Min(2.0, 0.9*math.Pow(cfg.Tol/errEst, 0.25))
			h = math.Min(hs*fac, cfg.DtMax)
		} else {
			h = math.Min(hs*2.0, cfg.DtMax)
		}
	}
	return res
}

// step advances one classical RK4 step of size h in place. Arithmetic
// nodes are equilibrated before every slope evaluation; boundary nodes
// are re-asserted at the end.
func (o *RK4) step(t, h float64, tmap map[string]float64) map[string]float64 {
	dom := o.dom
	k1 := o.slopes(t, tmap)
	k2 := o.slopes(t+h/2.0, shifted(tmap, dom.DiffIds, k1, h/2.0))
	k3 := o.slopes(t+h/2.0, shifted(tmap, dom.DiffIds, k2, h/2.0))
	k4 := o.slopes(t+h, shifted(tmap, dom.DiffIds, k3, h))
	for i, id := range dom.DiffIds {
		tmap[id] += h * (k1[i] + 2.0*k2[i] + 2.0*k3[i] + k4[i]) / 6.0
	}
	dom.AssertBoundary(tmap)
	return tmap
}

// slopes equilibrates arithmetic nodes at the trial state and evaluates
// the diffusion-node derivatives
func (o *RK4) slopes(t float64, tmap map[string]float64) []float64 {
	o.dom.RelaxArithmetic(t, tmap)
	k := make([]float64, len(o.dom.DiffIds))
	for i, id := range o.dom.DiffIds {
		k[i] = o.dom.NodeDeriv(id, t, tmap)
	}
	return k
}

// shifted clones the state with diffusion temperatures displaced by dt·k
func shifted(base map[string]float64, ids []string, k []float64, dt float64) map[string]float64 {
	c := copyTemps(base)
	for i, id := range ids {
		c[id] = base[id] + dt*k[i]
	}
	return c
}
