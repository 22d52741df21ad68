// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sens implements the steady-state sensitivity engine: it
// enumerates the perturbable design parameters of a network and
// finite-differences the steady-state solver at ±5 % of each
package sens

import (
	"context"
	"math"

	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/acanino561/thermosat-sub000/sol"
)

// relative perturbation and its absolute floor
const (
	relStep = 0.05
	absStep = 1e-10
)

// Entry holds the sensitivity of one output node to one parameter
type Entry struct {
	Param  string  // parameter name, e.g. "node.alpha", "conductor.g", "load.value"
	Target string  // id of the perturbed record
	Base   float64 // baseline parameter value
	Delta  float64 // perturbation actually applied
	Node   string  // output node id
	DTdp   float64 // central difference dT/dp
	D2Tdp2 float64 // second-order estimate (T⁺ − 2T₀ + T⁻)/Δ²
}

// param is one perturbable parameter with a setter acting on cloned records
type param struct {
	name   string
	target string
	base   float64
	apply  func(nodes []*inp.Node, conductors []*inp.Conductor, loads []*inp.HeatLoad, v float64)
}

// Analyze enumerates the perturbable parameters of the given records and
// computes, for every (parameter, non-boundary node) pair, the central
// finite difference of the steady-state temperature. Each solve owns a
// private deep copy of the records.
func Analyze(ctx context.Context, nodes []*inp.Node, conductors []*inp.Conductor, loads []*inp.HeatLoad, ocfg *inp.OrbitalConfig, cfg *inp.SimConfig) (entries []*Entry, err error) {

	// output node set: every non-boundary node
	var outIds []string
	for _, n := range nodes {
		if !n.IsBoundary() {
			outIds = append(outIds, n.Id)
		}
	}

	// baseline solve
	tBase, err := solveSteady(ctx, inp.CopyNodes(nodes), inp.CopyConductors(conductors), inp.CopyLoads(loads), inp.CopyOrbitalConfig(ocfg), cfg)
	if err != nil {
		return nil, err
	}

	for _, p := range enumerate(nodes, conductors, loads) {
		delta := math.Max(math.Abs(p.base)*relStep, absStep)

		tMinus, e := solveAt(ctx, nodes, conductors, loads, ocfg, cfg, p, p.base-delta)
		if e != nil {
			return nil, e
		}
		tPlus, e := solveAt(ctx, nodes, conductors, loads, ocfg, cfg, p, p.base+delta)
		if e != nil {
			return nil, e
		}

		for _, id := range outIds {
			entries = append(entries, &Entry{
				Param:  p.name,
				Target: p.target,
				Base:   p.base,
				Delta:  delta,
				Node:   id,
				DTdp:   (tPlus[id] - tMinus[id]) / (2.0 * delta),
				D2Tdp2: (tPlus[id] - 2.0*tBase[id] + tMinus[id]) / (delta * delta),
			})
		}
	}
	return
}

// enumerate lists the perturbable parameters: α, ε, C (>0) and mass (>0)
// per non-boundary node; G per linear/contact conductor with G > 0; F per
// radiation conductor with F > 0; value per constant heat load.
// Time-varying and orbital load magnitudes are deliberately excluded.
func enumerate(nodes []*inp.Node, conductors []*inp.Conductor, loads []*inp.HeatLoad) (prms []*param) {

	for i, n := range nodes {
		if n.IsBoundary() {
			continue
		}
		k := i
		prms = append(prms, &param{"node.alpha", n.Id, n.Alpha,
			func(ns []*inp.Node, _ []*inp.Conductor, _ []*inp.HeatLoad, v float64) { ns[k].Alpha = v }})
		prms = append(prms, &param{"node.epsilon", n.Id, n.Epsilon,
			func(ns []*inp.Node, _ []*inp.Conductor, _ []*inp.HeatLoad, v float64) { ns[k].Epsilon = v }})
		if n.Capacitance > 0 {
			prms = append(prms, &param{"node.capacitance", n.Id, n.Capacitance,
				func(ns []*inp.Node, _ []*inp.Conductor, _ []*inp.HeatLoad, v float64) { ns[k].Capacitance = v }})
		}
		if n.Mass > 0 {
			prms = append(prms, &param{"node.mass", n.Id, n.Mass,
				func(ns []*inp.Node, _ []*inp.Conductor, _ []*inp.HeatLoad, v float64) { ns[k].Mass = v }})
		}
	}

	for i, c := range conductors {
		k := i
		switch c.Kind {
		case inp.CondLinear, inp.CondContact:
			if c.Conductance > 0 {
				prms = append(prms, &param{"conductor.g", c.Id, c.Conductance,
					func(_ []*inp.Node, cs []*inp.Conductor, _ []*inp.HeatLoad, v float64) { cs[k].Conductance = v }})
			}
		case inp.CondRadiation:
			if c.ViewFactor > 0 {
				prms = append(prms, &param{"conductor.viewFactor", c.Id, c.ViewFactor,
					func(_ []*inp.Node, cs []*inp.Conductor, _ []*inp.HeatLoad, v float64) { cs[k].ViewFactor = v }})
			}
		}
	}

	for i, l := range loads {
		if l.Kind != inp.LoadConstant {
			continue
		}
		k := i
		prms = append(prms, &param{"load.value", l.Id, l.Value,
			func(_ []*inp.Node, _ []*inp.Conductor, ls []*inp.HeatLoad, v float64) { ls[k].Value = v }})
	}
	return
}

// solveAt clones the records, sets the parameter and solves steady state
func solveAt(ctx context.Context, nodes []*inp.Node, conductors []*inp.Conductor, loads []*inp.HeatLoad, ocfg *inp.OrbitalConfig, cfg *inp.SimConfig, p *param, v float64) (map[string]float64, error) {
	ns := inp.CopyNodes(nodes)
	cs := inp.CopyConductors(conductors)
	ls := inp.CopyLoads(loads)
	p.apply(ns, cs, ls, v)
	return solveSteady(ctx, ns, cs, ls, inp.CopyOrbitalConfig(ocfg), cfg)
}

// solveSteady builds a domain from the records and returns the final
// steady temperatures of every node
func solveSteady(ctx context.Context, nodes []*inp.Node, conductors []*inp.Conductor, loads []*inp.HeatLoad, ocfg *inp.OrbitalConfig, cfg *inp.SimConfig) (map[string]float64, error) {
	dom, err := sol.NewDomain(nodes, conductors, loads, ocfg)
	if err != nil {
		return nil, err
	}
	scfg := *cfg
	scfg.Kind = inp.SimSteady
	res, err := sol.Run(ctx, dom, &scfg)
	if err != nil {
		return nil, err
	}
	temps := make(map[string]float64, len(dom.NodeIds))
	for _, id := range dom.NodeIds {
		series := res.NodeTemps[id]
		temps[id] = series[len(series)-1]
	}
	return temps, nil
}
