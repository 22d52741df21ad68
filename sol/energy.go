// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"

	"github.com/acanino561/thermosat-sub000/inp"
)

// EnergyThreshold is the default relative error below which a transient
// run is reported as balanced
const EnergyThreshold = 0.05

// EnergyReport holds the energy balance audit of a transient run
type EnergyReport struct {
	Stored     float64 // ΔE: change of stored energy over diffusion nodes [J]
	External   float64 // energy injected by constant and time-varying loads [J]
	Boundary   float64 // energy exchanged through boundary conductors [J]
	RelErr     float64 // |External + Boundary − Stored| / max(...)
	IsBalanced bool    // RelErr below the threshold
}

// EnergyBalance audits a completed transient result by trapezoidal
// integration over its time points. Orbital heat loads are excluded from
// the external term, so orbital runs are not expected to balance. The
// audit never fails; callers consult IsBalanced.
func (o *Domain) EnergyBalance(res *Results, threshold float64) (rep *EnergyReport) {

	rep = new(EnergyReport)
	if threshold <= 0 {
		threshold = EnergyThreshold
	}
	np := len(res.Times)
	if np < 2 {
		rep.IsBalanced = true
		return
	}

	// stored energy change over diffusion nodes
	for _, id := range o.DiffIds {
		series := res.NodeTemps[id]
		rep.Stored += o.Nodes[id].Capacitance * (series[np-1] - series[0])
	}

	// external input from constant and time-varying loads
	for _, l := range o.Loads {
		if l.Kind == inp.LoadOrbital {
			continue
		}
		for k := 0; k < np-1; k++ {
			dt := res.Times[k+1] - res.Times[k]
			q0 := o.loadValue(l, res.Times[k])
			q1 := o.loadValue(l, res.Times[k+1])
			rep.External += 0.5 * (q0 + q1) * dt
		}
	}

	// exchange through conductors touching a boundary node; signed so
	// that boundary → interior flow is a positive contribution
	for _, c := range o.Conductors {
		fromBnd := o.Nodes[c.NodeFrom].IsBoundary()
		toBnd := o.Nodes[c.NodeTo].IsBoundary()
		if !fromBnd && !toBnd {
			continue
		}
		if fromBnd && toBnd {
			continue
		}
		sign := 1.0 // positive flow leaves a from-boundary into the interior
		if toBnd {
			sign = -1.0
		}
		flows := res.CondFlows[c.Id]
		for k := 0; k < np-1; k++ {
			dt := res.Times[k+1] - res.Times[k]
			rep.Boundary += sign * 0.5 * (flows[k] + flows[k+1]) * dt
		}
	}

	den := math.Max(math.Abs(rep.Stored), math.Abs(rep.External+rep.Boundary))
	den = math.Max(den, 1e-10)
	rep.RelErr = math.Abs(rep.External+rep.Boundary-rep.Stored) / den
	rep.IsBalanced = rep.RelErr < threshold
	return
}
