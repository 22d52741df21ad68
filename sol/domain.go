// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sol implements the lumped-parameter thermal network solvers:
// network assembly, the heat-flow kernel, transient integrators (explicit
// RK4 and implicit Euler), the steady-state Newton solver and the energy
// balance audit
package sol

import (
	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/acanino561/thermosat-sub000/orb"
	"github.com/cpmech/gosl/io"
)

// build error kinds
const (
	InvalidReference = "invalid_reference" // conductor or load names an unknown node
	EmptyNetwork     = "empty_network"     // zero nodes
	InvalidOrbital   = "invalid_orbital"   // bad orbital configuration
)

// BuildError indicates invalid input records given to NewDomain
type BuildError struct {
	Kind string // one of: invalid_reference, empty_network, invalid_orbital
	Msg  string
}

// Error returns the message
func (e *BuildError) Error() string { return e.Msg }

// buildErr creates a BuildError with formatted message
func buildErr(kind, msg string, prm ...interface{}) *BuildError {
	return &BuildError{Kind: kind, Msg: io.Sf(msg, prm...)}
}

// ConductorEnd is one entry of the per-node adjacency index. Sign is +1
// when the node is the conductor's to-endpoint and −1 when it is the
// from-endpoint, so that sign·flow is the heat into the node.
type ConductorEnd struct {
	Cond  *inp.Conductor // the conductor
	Other string         // id of the other endpoint
	Sign  float64        // +1 at the to-endpoint, −1 at the from-endpoint
}

// Domain holds one assembled thermal network. It is built once and never
// mutated by the solvers; the working temperature map is owned by each run.
type Domain struct {

	// records
	Nodes      map[string]*inp.Node // node id → node
	Conductors []*inp.Conductor     // all conductors, input order
	Loads      []*inp.HeatLoad      // all heat loads, input order

	// ordered id lists (input order)
	NodeIds  []string // all nodes
	DiffIds  []string // diffusion nodes (finite capacitance)
	ArithIds []string // arithmetic nodes, including zero-capacitance diffusion
	BndIds   []string // boundary nodes

	// derived indices, immutable after build
	NodeConds map[string][]*ConductorEnd // node id → incident conductor entries
	NodeLoads map[string][]*inp.HeatLoad // node id → attached heat loads

	// orbital environment; nil when no orbital configuration was given
	Env  *orb.Environment
	Prof *orb.Profile
}

// NewDomain validates the input records and assembles the network:
// per-node conductor and heat-load indices plus the ordered id lists.
// When an orbital configuration is present, the environment and the
// periodic flux profile are computed and attached.
func NewDomain(nodes []*inp.Node, conductors []*inp.Conductor, loads []*inp.HeatLoad, ocfg *inp.OrbitalConfig) (o *Domain, err error) {

	if len(nodes) == 0 {
		return nil, buildErr(EmptyNetwork, "cannot build network with zero nodes")
	}

	o = &Domain{
		Nodes:      make(map[string]*inp.Node, len(nodes)),
		Conductors: conductors,
		Loads:      loads,
		NodeConds:  make(map[string][]*ConductorEnd, len(nodes)),
		NodeLoads:  make(map[string][]*inp.HeatLoad),
	}

	// nodes and ordered id lists
	for _, n := range nodes {
		o.Nodes[n.Id] = n
		o.NodeIds = append(o.NodeIds, n.Id)
		switch {
		case n.IsBoundary():
			o.BndIds = append(o.BndIds, n.Id)
		case n.IsDiffusion():
			o.DiffIds = append(o.DiffIds, n.Id)
		default:
			o.ArithIds = append(o.ArithIds, n.Id)
		}
	}

	// adjacency index
	for _, c := range o.Conductors {
		if _, ok := o.Nodes[c.NodeFrom]; !ok {
			return nil, buildErr(InvalidReference, "conductor %q references unknown node %q", c.Id, c.NodeFrom)
		}
		if _, ok := o.Nodes[c.NodeTo]; !ok {
			return nil, buildErr(InvalidReference, "conductor %q references unknown node %q", c.Id, c.NodeTo)
		}
		o.NodeConds[c.NodeFrom] = append(o.NodeConds[c.NodeFrom], &ConductorEnd{Cond: c, Other: c.NodeTo, Sign: -1})
		o.NodeConds[c.NodeTo] = append(o.NodeConds[c.NodeTo], &ConductorEnd{Cond: c, Other: c.NodeFrom, Sign: +1})
		if c.Kind == inp.CondHeatPipe && pipeCurveUseless(c.Curve) {
			io.Pfred("heat-pipe conductor %q has no usable curve points; its conductance is zero\n", c.Id)
		}
	}

	// heat-load index
	for _, l := range o.Loads {
		if _, ok := o.Nodes[l.Node]; !ok {
			return nil, buildErr(InvalidReference, "heat load %q references unknown node %q", l.Id, l.Node)
		}
		o.NodeLoads[l.Node] = append(o.NodeLoads[l.Node], l)
	}

	// orbital environment
	if ocfg != nil {
		o.Env, err = orb.NewEnvironment(ocfg)
		if err != nil {
			return nil, buildErr(InvalidOrbital, "%v", err)
		}
		o.Prof = o.Env.GenProfile(orb.NprofileDefault)
	}
	return
}

// IniTemps builds the initial working temperature map: diffusion nodes at
// T0, boundary nodes at their fixed value, arithmetic nodes at T0 when
// given and at room temperature otherwise (the transient solvers relax
// them before the first step; the steady solver starts Newton from them).
func (o *Domain) IniTemps() map[string]float64 {
	tmap := make(map[string]float64, len(o.NodeIds))
	for _, id := range o.NodeIds {
		n := o.Nodes[id]
		switch {
		case n.IsBoundary() && n.BoundaryTemp != nil:
			tmap[id] = *n.BoundaryTemp
		case n.T0 > 0:
			tmap[id] = n.T0
		default:
			tmap[id] = 293.15
		}
	}
	return tmap
}

// AssertBoundary re-imposes the fixed boundary temperatures on a working map
func (o *Domain) AssertBoundary(tmap map[string]float64) {
	for _, id := range o.BndIds {
		if bt := o.Nodes[id].BoundaryTemp; bt != nil {
			tmap[id] = *bt
		}
	}
}

// pipeCurveUseless tells whether a heat-pipe curve has no points or only
// zero conductance values
func pipeCurveUseless(curve []inp.CurvePoint) bool {
	for _, p := range curve {
		if p.G != 0 {
			return false
		}
	}
	return true
}
