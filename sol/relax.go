// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"

	"github.com/Konstantin8105/pow"
	"github.com/acanino561/thermosat-sub000/inp"
)

// relaxer constants
const (
	relaxMaxSweeps = 100  // maximum Gauss-Seidel sweeps per call
	relaxTol       = 1e-4 // max |ΔT| convergence tolerance [K]
)

// RelaxArithmetic runs Gauss-Seidel sweeps enforcing the algebraic heat
// balance on arithmetic nodes at time t, with radiation linearised about
// the average of the node's current temperature and its neighbour's.
// Updates are written in place so later nodes in the same sweep see them.
func (o *Domain) RelaxArithmetic(t float64, tmap map[string]float64) {
	if len(o.ArithIds) == 0 {
		return
	}
	for sweep := 0; sweep < relaxMaxSweeps; sweep++ {
		maxDelta := 0.0
		for _, id := range o.ArithIds {
			tNode := tmap[id]
			var sumG, sumGT, sumGrad, sumGradT float64
			for _, e := range o.NodeConds[id] {
				c := e.Cond
				tOther := tmap[e.Other]
				switch c.Kind {
				case inp.CondRadiation:
					tavg := (tNode + tOther) / 2.0
					grad := 4.0 * Sigma * c.Emissivity * c.Area * c.ViewFactor * pow.En(tavg, 3)
					sumGrad += grad
					sumGradT += grad * tOther
				case inp.CondHeatPipe:
					geff := PipeConductance(c.Curve, (tNode+tOther)/2.0)
					sumG += geff
					sumGT += geff * tOther
				default: // linear and contact
					sumG += c.Conductance
					sumGT += c.Conductance * tOther
				}
			}
			den := sumG + sumGrad
			if den == 0 {
				continue
			}
			q := o.LoadHeat(id, t)
			tNew := (sumGT + sumGradT + q) / den
			delta := math.Abs(tNew - tNode)
			if delta > maxDelta {
				maxDelta = delta
			}
			tmap[id] = tNew
		}
		if maxDelta < relaxTol {
			return
		}
	}
}
