// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"sort"

	"github.com/Konstantin8105/pow"
	"github.com/acanino561/thermosat-sub000/inp"
)

// Sigma is the Stefan-Boltzmann constant [W/(m²·K⁴)]
const Sigma = 5.670374419e-8

// PipeConductance interpolates a heat-pipe conductance curve at the given
// average temperature. The curve is clamped outside its domain; an empty
// curve gives zero.
func PipeConductance(curve []inp.CurvePoint, tavg float64) float64 {
	n := len(curve)
	if n == 0 {
		return 0
	}
	if tavg <= curve[0].T {
		return curve[0].G
	}
	if tavg >= curve[n-1].T {
		return curve[n-1].G
	}
	i := sort.Search(n, func(k int) bool { return curve[k].T > tavg }) - 1
	frac := (tavg - curve[i].T) / (curve[i+1].T - curve[i].T)
	return curve[i].G + frac*(curve[i+1].G-curve[i].G)
}

// CondFlow computes the signed conductor flow from → to given the
// endpoint temperatures. Positive flow means heat moving from the
// from-node to the to-node.
func CondFlow(c *inp.Conductor, tFrom, tTo float64) float64 {
	switch c.Kind {
	case inp.CondRadiation:
		return Sigma * c.Emissivity * c.Area * c.ViewFactor * (pow.En(tFrom, 4) - pow.En(tTo, 4))
	case inp.CondHeatPipe:
		geff := PipeConductance(c.Curve, (tFrom+tTo)/2.0)
		return geff * (tFrom - tTo)
	}
	return c.Conductance * (tFrom - tTo) // linear and contact
}

// CondHeat sums the conductor heat flowing into one node at the given
// temperature state, walking the node's adjacency entries.
func (o *Domain) CondHeat(id string, tmap map[string]float64) (q float64) {
	for _, e := range o.NodeConds[id] {
		c := e.Cond
		q += e.Sign * CondFlow(c, tmap[c.NodeFrom], tmap[c.NodeTo])
	}
	return
}

// LoadHeat sums the external heat loads on one node at time t
func (o *Domain) LoadHeat(id string, t float64) (q float64) {
	for _, l := range o.NodeLoads[id] {
		q += o.loadValue(l, t)
	}
	return
}

// loadValue evaluates one heat load at time t
func (o *Domain) loadValue(l *inp.HeatLoad, t float64) float64 {
	switch l.Kind {
	case inp.LoadConstant:
		return l.Value
	case inp.LoadTimeVarying:
		return interpPoints(l.Points, t)
	case inp.LoadOrbital:
		return o.orbitalLoad(l, t)
	}
	return 0
}

// interpPoints evaluates a sorted (t, Q) table with linear interpolation,
// clamped at the endpoints
func interpPoints(pts []inp.TimePoint, t float64) float64 {
	n := len(pts)
	if n == 0 {
		return 0
	}
	if t <= pts[0].T {
		return pts[0].Q
	}
	if t >= pts[n-1].T {
		return pts[n-1].Q
	}
	i := sort.Search(n, func(k int) bool { return pts[k].T > t }) - 1
	frac := (t - pts[i].T) / (pts[i+1].T - pts[i].T)
	return pts[i].Q + frac*(pts[i+1].Q-pts[i].Q)
}

// orbitalLoad evaluates an orbital heat load at time t from the attached
// periodic profile. Without a profile the load contributes nothing.
func (o *Domain) orbitalLoad(l *inp.HeatLoad, t float64) (q float64) {
	if o.Prof == nil || l.Orbital == nil {
		return 0
	}
	p := l.Orbital
	solar, albedo, earthIR, sunlit := o.Prof.At(t)
	switch p.Surface {
	case inp.SurfEarthFacing:
		if sunlit {
			q += p.Alpha * albedo * p.Area
		}
		q += p.Epsilon * earthIR * p.Area
	case inp.SurfAntiEarth:
		if sunlit {
			q += p.Alpha * solar * p.Area
		}
	default: // solar and custom
		if sunlit {
			q += p.Alpha * (solar + albedo) * p.Area
		}
		q += p.Epsilon * earthIR * p.Area
	}
	return
}

// NodeDeriv computes dT/dt of one node. Only diffusion nodes have a
// nonzero derivative; arithmetic and boundary nodes return zero.
func (o *Domain) NodeDeriv(id string, t float64, tmap map[string]float64) float64 {
	n := o.Nodes[id]
	if !n.IsDiffusion() {
		return 0
	}
	return (o.CondHeat(id, tmap) + o.LoadHeat(id, t)) / n.Capacitance
}
