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
	"github.com/cpmech/gosl/la"
)

// steady solver constants
const (
	steadyDTmax = 100.0 // per-iteration temperature update clamp [K]
	steadyTmin  = 1.0   // temperature floor [K]
)

// Steady implements the nonlinear steady-state solver: Newton-Raphson
// with a dense Jacobian over the diffusion and arithmetic unknowns,
// falling back to gradient relaxation when the Jacobian is singular.
type Steady struct {
	dom *Domain
}

// add solver to factory
func init() {
	allocators[inp.SimSteady] = func(dom *Domain) Solver { return &Steady{dom: dom} }
}

// Run solves the steady-state balance
func (o *Steady) Run(ctx context.Context, cfg *inp.SimConfig) *Results {

	dom := o.dom
	res := newResults(dom)

	// unknowns: diffusion then arithmetic nodes, input order
	unknowns := append(append([]string{}, dom.DiffIds...), dom.ArithIds...)
	n := len(unknowns)
	row := make(map[string]int, n)
	for i, id := range unknowns {
		row[id] = i
	}

	tmap := dom.IniTemps()
	if n == 0 {
		dom.AssertBoundary(tmap)
		res.Converged = true
		res.record(dom, cfg.T0, tmap)
		return res
	}

	fres := make([]float64, n)
	dT := make([]float64, n)
	jac := la.MatAlloc(n, n)
	jacInv := la.MatAlloc(n, n)

	for it := 1; it <= cfg.NmaxIt; it++ {

		if cancelled(ctx) {
			break
		}
		res.Iterations = it

		// residual: net heat into every unknown node
		maxF := 0.0
		for i, id := range unknowns {
			fres[i] = dom.CondHeat(id, tmap) + dom.LoadHeat(id, cfg.T0)
			if a := math.Abs(fres[i]); a > maxF {
				maxF = a
			}
		}
		if cfg.Verbose {
			io.Pf("steady: it=%d max|F|=%g\n", it, maxF)
		}
		if maxF < cfg.Tol {
			res.Converged = true
			break
		}

		// dense Jacobian over the unknowns
		la.MatFill(jac, 0)
		for _, c := range dom.Conductors {
			iFrom, okFrom := row[c.NodeFrom]
			iTo, okTo := row[c.NodeTo]
			if c.Kind == inp.CondRadiation {
				k := 4.0 * Sigma * c.Emissivity * c.Area * c.ViewFactor
				gFrom := k * pow.En(tmap[c.NodeFrom], 3)
				gTo := k * pow.En(tmap[c.NodeTo], 3)
				if okFrom {
					jac[iFrom][iFrom] -= gFrom
					if okTo {
						jac[iFrom][iTo] += gTo
					}
				}
				if okTo {
					jac[iTo][iTo] -= gTo
					if okFrom {
						jac[iTo][iFrom] += gFrom
					}
				}
				continue
			}
			g := c.Conductance
			if c.Kind == inp.CondHeatPipe {
				g = PipeConductance(c.Curve, (tmap[c.NodeFrom]+tmap[c.NodeTo])/2.0)
			}
			if okFrom {
				jac[iFrom][iFrom] -= g
				if okTo {
					jac[iFrom][iTo] += g
				}
			}
			if okTo {
				jac[iTo][iTo] -= g
				if okFrom {
					jac[iTo][iFrom] += g
				}
			}
		}

		// Newton update: J·δT = −F, by dense inversion; gradient
		// relaxation with step 0.01·F when the Jacobian is singular
		if err := la.MatInvG(jacInv, jac, 1e-10); err != nil {
			for i := range dT {
				dT[i] = 0.01 * fres[i]
			}
		} else {
			la.MatVecMul(dT, -1, jacInv, fres)
		}

		// clamp, damp, floor
		for i, id := range unknowns {
			d := clampAbs(dT[i], steadyDTmax) * cfg.Damping
			tmap[id] += d
			if tmap[id] < steadyTmin {
				tmap[id] = steadyTmin
			}
		}
	}

	dom.AssertBoundary(tmap)
	res.record(dom, cfg.T0, tmap)
	return res
}

// clampAbs limits x to the interval [−lim, +lim]
func clampAbs(x, lim float64) float64 {
	if x > lim {
		return lim
	}
	if x < -lim {
		return -lim
	}
	return x
}
