// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

func Test_twoboundary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twoboundary01")

	var ref TwoBoundaryChain
	ref.Init(fun.Prms{
		&fun.P{N: "TA", V: 400},
		&fun.P{N: "TB", V: 300},
		&fun.P{N: "G1", V: 1},
		&fun.P{N: "G2", V: 1},
	})
	chk.Scalar(tst, "middle", 1e-15, ref.Middle(), 350.0)

	ref.Init(fun.Prms{
		&fun.P{N: "TA", V: 200},
		&fun.P{N: "TB", V: 200},
		&fun.P{N: "G1", V: 10},
		&fun.P{N: "G2", V: 0},
		&fun.P{N: "Q", V: 100},
	})
	chk.Scalar(tst, "middle with source", 1e-12, ref.Middle(), 210.0)
}

func Test_radeq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("radeq01")

	var ref RadEquilibrium
	ref.Init(nil)
	t := ref.Temp()

	// the root must satisfy Q = σ ε A F (T⁴ − Tsink⁴)
	q := sigma * ref.Eps * ref.A * ref.F * (t*t*t*t - ref.Tsink*ref.Tsink*ref.Tsink*ref.Tsink)
	chk.Scalar(tst, "residual", 1e-9, q, ref.Q)

	// dT/dQ = 1/(4 σ ε A F T³) along a sweep of loads
	k := sigma * ref.Eps * ref.A * ref.F
	for _, qval := range utl.LinSpace(50, 500, 5) {
		teq := math.Pow(qval/k+math.Pow(ref.Tsink, 4), 0.25)
		dana := 1.0 / (4.0 * k * teq * teq * teq)
		chk.DerivScaSca(tst, "dTdQ", 1e-7, dana, qval, 1e-2, chk.Verbose, func(x float64) (float64, error) {
			return math.Pow(x/k+math.Pow(ref.Tsink, 4), 0.25), nil
		})
	}
}

func Test_lumpedstep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumpedstep01")

	var ref LumpedStep
	ref.Init(fun.Prms{
		&fun.P{N: "C", V: 100},
		&fun.P{N: "G", V: 10},
		&fun.P{N: "Tinf", V: 200},
		&fun.P{N: "Q", V: 100},
		&fun.P{N: "T0", V: 200},
	})
	chk.Scalar(tst, "Teq", 1e-15, ref.Teq(), 210.0)
	chk.Scalar(tst, "T(0)", 1e-15, ref.Temp(0), 200.0)

	// after ten time constants the response has settled
	tau := ref.C / ref.G
	chk.Scalar(tst, "T(10τ)", 1e-3, ref.Temp(10*tau), 210.0)
}
