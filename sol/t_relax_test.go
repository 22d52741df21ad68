// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sol

import (
	"math"
	"testing"

	"github.com/Konstantin8105/pow"
	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

func Test_relax01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax01. linear balance")

	bt1, bt2 := 400.0, 300.0
	nodes := []*inp.Node{
		{Id: "b1", Kind: inp.KindBoundary, BoundaryTemp: &bt1},
		{Id: "a1", Kind: inp.KindArithmetic},
		{Id: "a2", Kind: inp.KindArithmetic},
		{Id: "b2", Kind: inp.KindBoundary, BoundaryTemp: &bt2},
	}
	conductors := []*inp.Conductor{
		{Id: "c1", Kind: inp.CondLinear, NodeFrom: "b1", NodeTo: "a1", Conductance: 1},
		{Id: "c2", Kind: inp.CondLinear, NodeFrom: "a1", NodeTo: "a2", Conductance: 1},
		{Id: "c3", Kind: inp.CondLinear, NodeFrom: "a2", NodeTo: "b2", Conductance: 1},
	}
	dom, err := NewDomain(nodes, conductors, nil, nil)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}

	tmap := dom.IniTemps()
	dom.RelaxArithmetic(0, tmap)

	// equal conductances: the chain interpolates the boundaries
	chk.Scalar(tst, "a1", 1e-3, tmap["a1"], 400.0-100.0/3.0)
	chk.Scalar(tst, "a2", 1e-3, tmap["a2"], 300.0+100.0/3.0)

	// boundary values are never touched by the sweep
	chk.Scalar(tst, "b1 fixed", 1e-15, tmap["b1"], 400.0)
	chk.Scalar(tst, "b2 fixed", 1e-15, tmap["b2"], 300.0)
}

func Test_relax02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax02. linearised radiation balance")

	bt := 300.0
	nodes := []*inp.Node{
		{Id: "a", Kind: inp.KindArithmetic},
		{Id: "sink", Kind: inp.KindBoundary, BoundaryTemp: &bt},
	}
	conductors := []*inp.Conductor{
		{Id: "r", Kind: inp.CondRadiation, NodeFrom: "a", NodeTo: "sink", Emissivity: 0.9, Area: 1, ViewFactor: 1},
	}
	loads := []*inp.HeatLoad{{Id: "q", Node: "a", Kind: inp.LoadConstant, Value: 100}}
	dom, err := NewDomain(nodes, conductors, loads, nil)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}

	tmap := dom.IniTemps()
	dom.RelaxArithmetic(0, tmap)

	// the converged temperature satisfies the linearised balance
	// G_rad(T_avg)·(T − T_sink) = Q with G_rad = 4σεAF·T_avg³
	ta := tmap["a"]
	tavg := (ta + bt) / 2.0
	grad := 4.0 * Sigma * 0.9 * pow.En(tavg, 3)
	chk.Scalar(tst, "linearised balance", 0.1, grad*(ta-bt), 100.0)
	if ta <= bt {
		tst.Errorf("heated node must end above the sink: %g\n", ta)
	}
}

func Test_relax03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax03. isolated node and heat pipe")

	bt := 350.0
	nodes := []*inp.Node{
		{Id: "alone", Kind: inp.KindArithmetic, T0: 275},
		{Id: "a", Kind: inp.KindArithmetic},
		{Id: "b", Kind: inp.KindBoundary, BoundaryTemp: &bt},
	}
	conductors := []*inp.Conductor{
		{Id: "hp", Kind: inp.CondHeatPipe, NodeFrom: "a", NodeTo: "b", Curve: []inp.CurvePoint{{T: 250, G: 5}, {T: 350, G: 15}}},
	}
	dom, err := NewDomain(nodes, conductors, nil, nil)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}

	tmap := dom.IniTemps()
	dom.RelaxArithmetic(0, tmap)

	// no incident conductors: the sweep must leave the node alone
	chk.Scalar(tst, "isolated", 1e-15, tmap["alone"], 275.0)

	// a single pipe with no load pulls the node onto the boundary
	if math.Abs(tmap["a"]-350.0) > 1e-3 {
		tst.Errorf("pipe-coupled node must settle on the boundary: %g\n", tmap["a"])
	}
}
