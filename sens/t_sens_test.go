// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sens

import (
	"context"
	"math"
	"testing"

	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// bathFixture: one heated capacitance against a 200 K bath, so the
// steady temperature has the closed form T(G) = 200 + Q/G
func bathFixture() ([]*inp.Node, []*inp.Conductor, []*inp.HeatLoad, *inp.SimConfig) {
	bt := 200.0
	nodes := []*inp.Node{
		{Id: "box", Kind: inp.KindDiffusion, Capacitance: 100, T0: 250},
		{Id: "bath", Kind: inp.KindBoundary, BoundaryTemp: &bt},
	}
	conductors := []*inp.Conductor{
		{Id: "g", Kind: inp.CondLinear, NodeFrom: "box", NodeTo: "bath", Conductance: 10},
	}
	loads := []*inp.HeatLoad{{Id: "q", Node: "box", Kind: inp.LoadConstant, Value: 100}}
	var cfg inp.SimConfig
	cfg.SetDefault()
	cfg.Kind = inp.SimSteady
	cfg.Tol = 1e-9
	return nodes, conductors, loads, &cfg
}

func Test_sens01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sens01. parameter enumeration")

	nodes, conductors, loads, cfg := bathFixture()
	entries, err := Analyze(context.Background(), nodes, conductors, loads, nil, cfg)
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}

	// one output node; parameters: alpha, epsilon, capacitance, G, value
	chk.IntAssert(len(entries), 5)
	byName := map[string]*Entry{}
	for _, e := range entries {
		byName[e.Param] = e
		chk.StrAssert(e.Node, "box")
	}
	for _, name := range []string{"node.alpha", "node.epsilon", "node.capacitance", "conductor.g", "load.value"} {
		if byName[name] == nil {
			tst.Errorf("missing parameter %q\n", name)
			return
		}
	}

	// capacitance does not move the steady solution
	chk.Scalar(tst, "dT/dC", 1e-6, byName["node.capacitance"].DTdp, 0.0)

	// the load slope is exactly 1/G
	chk.Scalar(tst, "dT/dQ", 1e-5, byName["load.value"].DTdp, 0.1)
}

func Test_sens02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sens02. conductance slope against the closed form")

	nodes, conductors, loads, cfg := bathFixture()
	entries, err := Analyze(context.Background(), nodes, conductors, loads, nil, cfg)
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}

	var eg *Entry
	for _, e := range entries {
		if e.Param == "conductor.g" {
			eg = e
		}
	}
	if eg == nil {
		tst.Errorf("missing conductance entry\n")
		return
	}
	chk.Scalar(tst, "base", 1e-15, eg.Base, 10.0)
	chk.Scalar(tst, "delta", 1e-15, eg.Delta, 0.5)

	// T(G) = 200 + 100/G: dT/dG = −1, d²T/dG² = 0.2, up to the O(Δ²)
	// truncation of the central differences
	chk.Scalar(tst, "dT/dG", 3e-3, eg.DTdp, -1.0)
	chk.Scalar(tst, "d2T/dG2", 1e-3, eg.D2Tdp2, 0.2)

	// the slope predicts a finite change to second order
	dg := 0.5
	actual := 100.0/(10.0+dg) - 100.0/10.0
	predicted := eg.DTdp * dg
	if math.Abs(predicted-actual) > 0.6*dg*dg*eg.D2Tdp2+1e-4 {
		tst.Errorf("slope prediction too far off: %g vs %g\n", predicted, actual)
	}

	// unperturbable records never appear
	for _, e := range entries {
		if e.Param == "node.mass" {
			tst.Errorf("mass of a massless node must not be enumerated\n")
		}
	}
}
