// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions of small thermal networks,
// used as references by the solver tests
package ana

import "github.com/cpmech/gosl/fun"

// TwoBoundaryChain computes the solution of one interior node connected
// by two linear conductors to two fixed-temperature boundaries
//
//	TA ──G1── (middle) ──G2── TB
//
type TwoBoundaryChain struct {
	// input
	TA float64 // first boundary temperature [K]
	TB float64 // second boundary temperature [K]
	G1 float64 // conductance to the first boundary [W/K]
	G2 float64 // conductance to the second boundary [W/K]
	Q  float64 // extra power injected at the middle node [W]
}

// Init initialises this structure
func (o *TwoBoundaryChain) Init(prms fun.Prms) {

	// default values
	o.TA = 400.0
	o.TB = 300.0
	o.G1 = 1.0
	o.G2 = 1.0
	o.Q = 0.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "TA":
			o.TA = p.V
		case "TB":
			o.TB = p.V
		case "G1":
			o.G1 = p.V
		case "G2":
			o.G2 = p.V
		case "Q":
			o.Q = p.V
		}
	}
}

// Middle returns the steady temperature of the interior node
func (o *TwoBoundaryChain) Middle() float64 {
	return (o.G1*o.TA + o.G2*o.TB + o.Q) / (o.G1 + o.G2)
}
