// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// failureFixture builds a small record set exercised by every mode
func failureFixture() (nodes []*Node, conductors []*Conductor, loads []*HeatLoad) {
	nodes = []*Node{
		{Id: "panel", Kind: KindDiffusion, Capacitance: 200, Alpha: 0.3, Epsilon: 0.05},
		{Id: "radiator", Kind: KindDiffusion, Capacitance: 150, Alpha: 0.2, Epsilon: 0.85},
	}
	conductors = []*Conductor{
		{Id: "c1", Name: "strap", Kind: CondLinear, NodeFrom: "panel", NodeTo: "radiator", Conductance: 2.5},
	}
	loads = []*HeatLoad{
		{Id: "h1", Name: "heater", Node: "radiator", Kind: LoadConstant, Value: 25},
		{Id: "h2", Name: "duty", Node: "radiator", Kind: LoadTimeVarying, Points: []TimePoint{{T: 0, Q: 10}, {T: 100, Q: 20}}},
		{Id: "h3", Name: "sun", Node: "panel", Kind: LoadOrbital, Orbital: &OrbitalLoadPrms{Alpha: 0.3, Epsilon: 0.8, Area: 1.5, Surface: SurfSolar}},
	}
	return
}

func Test_failure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure01. heater and conductor failures")

	nodes, conductors, loads := failureFixture()

	_, _, rloads, err := ApplyFailure(FailHeater, &FailurePrms{LoadName: "heater"}, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "heater value", 1e-15, rloads[0].Value, 0.0)
	chk.Scalar(tst, "original untouched", 1e-15, loads[0].Value, 25.0)

	_, rconductors, _, err := ApplyFailure(FailConductor, &FailurePrms{CondName: "strap"}, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dead conductor", 1e-15, rconductors[0].Conductance, 0.0)
	chk.Scalar(tst, "original conductance", 1e-15, conductors[0].Conductance, 2.5)
}

func Test_failure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure02. surface degradations")

	nodes, conductors, loads := failureFixture()

	// only the low-emissivity (MLI) node degrades
	rnodes, _, _, err := ApplyFailure(FailMli, &FailurePrms{Factor: 3}, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "mli epsilon", 1e-15, rnodes[0].Epsilon, 0.15)
	chk.Scalar(tst, "radiator epsilon", 1e-15, rnodes[1].Epsilon, 0.85)

	// coating degradation raises absorptivity on orbital surfaces
	rnodes, _, rloads, err := ApplyFailure(FailCoating, &FailurePrms{Delta: 0.1}, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "panel alpha", 1e-15, rnodes[0].Alpha, 0.4)
	chk.Scalar(tst, "load alpha", 1e-15, rloads[2].Orbital.Alpha, 0.4)

	// tumbling averages the sun over six faces
	_, _, rloads, err = ApplyFailure(FailTumble, nil, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.StrAssert(rloads[2].Orbital.Surface, SurfCustom)
	chk.Scalar(tst, "tumble alpha", 1e-15, rloads[2].Orbital.Alpha, 0.05)
}

func Test_failure03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure03. power modes")

	nodes, conductors, loads := failureFixture()

	_, _, rloads, err := ApplyFailure(FailPower, &FailurePrms{Factor: 0.4}, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "reduced heater", 1e-15, rloads[0].Value, 10.0)
	chk.Scalar(tst, "reduced point", 1e-15, rloads[1].Points[1].Q, 8.0)

	_, _, rloads, err = ApplyFailure(FailSpike, &FailurePrms{NodeId: "radiator", SpikeFactor: 3}, nodes, conductors, loads)
	if err != nil {
		tst.Errorf("ApplyFailure failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "spiked heater", 1e-15, rloads[0].Value, 75.0)
	chk.Scalar(tst, "spiked point", 1e-15, rloads[1].Points[0].Q, 30.0)

	// unknown kinds are rejected
	_, _, _, err = ApplyFailure("meteorite", nil, nodes, conductors, loads)
	if err == nil {
		tst.Errorf("unknown failure kind must fail\n")
	}
}
