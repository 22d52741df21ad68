// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// LumpedStep computes the first-order response of a single capacitive
// node coupled by a linear conductance to a fixed-temperature bath, with
// constant power injection:
//
//	C dT/dt = Q + G (Tinf − T)
//
type LumpedStep struct {
	// input
	C    float64 // capacitance [J/K]
	G    float64 // conductance to the bath [W/K]
	Tinf float64 // bath temperature [K]
	Q    float64 // injected power [W]
	T0   float64 // initial temperature [K]
}

// Init initialises this structure
func (o *LumpedStep) Init(prms fun.Prms) {

	// default values
	o.C = 100.0
	o.G = 10.0
	o.Tinf = 200.0
	o.Q = 0.0
	o.T0 = 200.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "C":
			o.C = p.V
		case "G":
			o.G = p.V
		case "Tinf":
			o.Tinf = p.V
		case "Q":
			o.Q = p.V
		case "T0":
			o.T0 = p.V
		}
	}
}

// Teq returns the asymptotic temperature
func (o *LumpedStep) Teq() float64 {
	return o.Tinf + o.Q/o.G
}

// Temp returns the temperature at time t
func (o *LumpedStep) Temp(t float64) float64 {
	teq := o.Teq()
	return teq + (o.T0-teq)*math.Exp(-o.G*t/o.C)
}
