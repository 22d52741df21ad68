// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"context"
	"math"

	"github.com/Konstantin8105/pow"
	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/cpmech/gosl/io"
)

// implicit Euler constants
const (
	implMaxIt  = 10    // Newton iterations per step
	implTol    = 1e-4  // max |ΔT| Newton convergence tolerance [K]
	implJacMin = 1e-30 // diagonal guard: smaller |J| skips the node update
)

// ImplicitEuler implements the backward-Euler integrator. Each step
// solves C·(T_{n+1} − T_n)/h = Q_net(T_{n+1}) per diffusion node by
// Newton-Raphson on the diagonal of the Jacobian only; off-diagonal
// coupling is deliberately dropped and step adaptation by iteration
// count carries the stability burden.
type ImplicitEuler struct {
	dom *Domain
}

// add solver to factory
func init() {
	allocators[inp.MethodImplicitEuler] = func(dom *Domain) Solver { return &ImplicitEuler{dom: dom} }
}

// Run runs the transient time loop
func (o *ImplicitEuler) Run(ctx context.Context, cfg *inp.SimConfig) *Results {

	dom := o.dom
	res := newResults(dom)
	res.Converged = true

	t := cfg.T0
	tmap := dom.IniTemps()
	dom.RelaxArithmetic(t, tmap)
	res.record(dom, t, tmap)

	h := cfg.Dt
	for t < cfg.Tf {

		if cancelled(ctx) {
			res.Converged = false
			break
		}

		if cfg.DtFunc != nil {
			if hcap := cfg.DtFunc.F(t, nil); hcap > 0 && hcap < h {
				h = hcap
			}
		}
		hs := math.Min(h, cfg.Tf-t)

		// Newton solve on a trial state; tmap stays untouched for rollback
		trial := copyTemps(tmap)
		it, ok := o.newton(t+hs, hs, tmap, trial)
		if !ok {
			h = hs / 2.0
			if h < 0.01*cfg.DtMin {
				res.Converged = false
				break
			}
			continue
		}

		t += hs
		tmap = trial
		dom.AssertBoundary(tmap)
		res.record(dom, t, tmap)
		if cfg.Verbose {
			io.Pf("implicit_euler: t=%g h=%g it=%d\n", t, hs, it)
		}

		// adapt the step by iteration count
		if it <= 3 {
			h = math.Min(2.0*hs, cfg.DtMax)
		} else if it >= 7 {
			h = math.Max(hs/2.0, cfg.DtMin)
		} else {
			h = hs
		}
	}
	return res
}

// newton iterates the diagonal Newton-Raphson update on the trial state
// for the step ending at time tnew. Returns the iteration count and
// whether max |ΔT| fell below the tolerance.
func (o *ImplicitEuler) newton(tnew, h float64, told, trial map[string]float64) (it int, ok bool) {
	dom := o.dom
	for it = 1; it <= implMaxIt; it++ {
		dom.RelaxArithmetic(tnew, trial)
		maxDelta := 0.0
		for _, id := range dom.DiffIds {
			cnode := dom.Nodes[id].Capacitance
			f := cnode*(trial[id]-told[id])/h - dom.CondHeat(id, trial) - dom.LoadHeat(id, tnew)
			jac := cnode/h - o.dQdT(id, trial)
			if math.Abs(jac) < implJacMin {
				continue
			}
			delta := f / jac
			trial[id] -= delta
			if d := math.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}
		if maxDelta < implTol {
			return it, true
		}
	}
	return implMaxIt, false
}

// dQdT accumulates ∂Q_net/∂T_i over the conductors incident to node i.
// Heat-pipe conductance is held frozen at the current average temperature
// across the Newton step.
func (o *ImplicitEuler) dQdT(id string, tmap map[string]float64) (d float64) {
	for _, e := range o.dom.NodeConds[id] {
		c := e.Cond
		switch c.Kind {
		case inp.CondRadiation:
			d -= 4.0 * Sigma * c.Emissivity * c.Area * c.ViewFactor * pow.En(tmap[id], 3)
		case inp.CondHeatPipe:
			d -= PipeConductance(c.Curve, (tmap[c.NodeFrom]+tmap[c.NodeTo])/2.0)
		default:
			d -= c.Conductance
		}
	}
	return
}
