// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/fun"

// simulation kinds
const (
	SimTransient = "transient"
	SimSteady    = "steady"
)

// transient solver methods
const (
	MethodRK4           = "rk4"            // explicit Runge-Kutta 4 with step doubling
	MethodImplicitEuler = "implicit_euler" // backward Euler with diagonal Newton
)

// SimConfig holds solver configuration data
type SimConfig struct {

	// problem definition
	Kind   string `json:"kind"`   // transient or steady
	Method string `json:"method"` // transient solver method; default rk4

	// time window
	T0 float64 `json:"t0"` // initial time [s]
	Tf float64 `json:"tf"` // final time [s]

	// stepping
	Dt    float64 `json:"dt"`    // initial step size [s]
	DtMin float64 `json:"dtmin"` // minimum step size [s]
	DtMax float64 `json:"dtmax"` // maximum step size [s]

	// nonlinear solver
	NmaxIt  int     `json:"nmaxit"`  // maximum number of iterations
	Tol     float64 `json:"tol"`     // convergence tolerance
	Damping float64 `json:"damping"` // steady-state Newton damping factor

	// output
	Verbose bool `json:"verbose"` // print progress messages

	// derived
	DtFunc fun.Func // optional step-size cap function of time; nil means none
}

// SetDefault sets default values
func (o *SimConfig) SetDefault() {
	o.Kind = SimTransient
	o.Method = MethodRK4
	o.T0 = 0
	o.Tf = 3600
	o.Dt = 10
	o.DtMin = 1e-3
	o.DtMax = 60
	o.NmaxIt = 100
	o.Tol = 1e-3
	o.Damping = 1.0
}

// PostProcess fixes inconsistent values after reading or partial filling
func (o *SimConfig) PostProcess() {
	if o.Kind == "" {
		o.Kind = SimTransient
	}
	if o.Method == "" {
		o.Method = MethodRK4
	}
	if o.Dt <= 0 {
		o.Dt = 10
	}
	if o.DtMin <= 0 {
		o.DtMin = 1e-3
	}
	if o.DtMax <= 0 {
		o.DtMax = 60
	}
	if o.DtMin > o.DtMax {
		o.DtMin = o.DtMax
	}
	if o.Dt < o.DtMin {
		o.Dt = o.DtMin
	}
	if o.Dt > o.DtMax {
		o.Dt = o.DtMax
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 100
	}
	if o.Tol <= 0 {
		o.Tol = 1e-3
	}
	if o.Damping <= 0 {
		o.Damping = 1.0
	}
}
