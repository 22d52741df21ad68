// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// σ here must match the solver's Stefan-Boltzmann constant
const sigma = 5.670374419e-8

// RadEquilibrium computes the equilibrium temperature of one node with
// constant absorbed power Q radiating through a view factor F to a sink:
//
//	Q = σ ε A F (T⁴ − Tsink⁴)
//
type RadEquilibrium struct {
	// input
	Q     float64 // absorbed power [W]
	Eps   float64 // emissivity
	A     float64 // radiating area [m²]
	F     float64 // view factor
	Tsink float64 // sink temperature [K]
}

// Init initialises this structure
func (o *RadEquilibrium) Init(prms fun.Prms) {

	// default values
	o.Q = 100.0
	o.Eps = 0.9
	o.A = 1.0
	o.F = 1.0
	o.Tsink = 3.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Q":
			o.Q = p.V
		case "eps":
			o.Eps = p.V
		case "A":
			o.A = p.V
		case "F":
			o.F = p.V
		case "Tsink":
			o.Tsink = p.V
		}
	}
}

// Temp returns the equilibrium temperature
func (o *RadEquilibrium) Temp() float64 {
	t4 := o.Q/(sigma*o.Eps*o.A*o.F) + math.Pow(o.Tsink, 4)
	return math.Pow(t4, 0.25)
}
