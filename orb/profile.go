// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orb

import "math"

// NprofileDefault is the default number of samples per orbit
const NprofileDefault = 360

// Profile holds one orbit of environment fluxes as parallel arrays, one
// sample per step, all indexed in lockstep
type Profile struct {
	Period  float64   // orbital period [s]
	Time    []float64 // sample times from the start of the orbit [s]
	Solar   []float64 // direct solar flux [W/m²]
	Albedo  []float64 // albedo flux [W/m²]
	EarthIR []float64 // Earth IR flux [W/m²]
	Sunlit  []bool    // whether the step is outside the eclipse window
}

// GenProfile samples one orbit into n steps. The eclipse window is
// symmetric about the half-period; the albedo follows the cosine of the
// orbit phase to model the subsolar dependence, with the subsolar point
// at the start of the orbit. Earth IR is constant throughout.
func (o *Environment) GenProfile(n int) (p *Profile) {
	if n <= 0 {
		n = NprofileDefault
	}
	p = &Profile{
		Period:  o.PeriodSec,
		Time:    make([]float64, n),
		Solar:   make([]float64, n),
		Albedo:  make([]float64, n),
		EarthIR: make([]float64, n),
		Sunlit:  make([]bool, n),
	}
	tt := o.PeriodSec
	half := o.EclipseFrac * tt / 2.0
	for i := 0; i < n; i++ {
		t := float64(i) * tt / float64(n)
		p.Time[i] = t
		p.EarthIR[i] = o.EarthIR
		sunlit := math.Abs(t-tt/2.0) >= half
		p.Sunlit[i] = sunlit
		if sunlit {
			p.Solar[i] = o.SolarFlux
			p.Albedo[i] = EarthAlbedo * o.SolarFlux * o.EarthViewFactor * math.Max(0, math.Cos(2.0*math.Pi*t/tt))
		}
	}
	return
}

// At evaluates the profile at an arbitrary time by wrapping t into the
// orbit phase, locating the bin and interpolating the fluxes linearly.
// The sunlit flag uses the nearest sample.
func (p *Profile) At(t float64) (solar, albedo, earthIR float64, sunlit bool) {
	n := len(p.Time)
	if n == 0 || p.Period <= 0 {
		return
	}
	tp := math.Mod(t, p.Period)
	if tp < 0 {
		tp += p.Period
	}

	// locate bin i such that Time[i] <= tp < next bin start
	dt := p.Period / float64(n)
	i := int(tp / dt)
	if i >= n {
		i = n - 1
	}
	j := (i + 1) % n // wraps to the start: the profile is periodic
	frac := (tp - p.Time[i]) / dt

	solar = p.Solar[i] + frac*(p.Solar[j]-p.Solar[i])
	albedo = p.Albedo[i] + frac*(p.Albedo[j]-p.Albedo[i])
	earthIR = p.EarthIR[i] + frac*(p.EarthIR[j]-p.EarthIR[i])
	if frac < 0.5 {
		sunlit = p.Sunlit[i]
	} else {
		sunlit = p.Sunlit[j]
	}
	return
}
