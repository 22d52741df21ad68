// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orb

import (
	"math"

	"github.com/acanino561/thermosat-sub000/inp"
	"github.com/cpmech/gosl/chk"
)

// Environment holds the derived orbital thermal environment
type Environment struct {
	AltitudeKm      float64 // effective circular altitude [km]
	PeriodSec       float64 // orbital period [s]
	BetaDeg         float64 // beta angle [deg]
	EclipseFrac     float64 // fraction of the orbit in shadow ∈ [0, 0.5]
	SunlitFrac      float64 // 1 − EclipseFrac
	SolarFlux       float64 // direct solar flux [W/m²]
	AlbedoFlux      float64 // peak (subsolar) albedo flux [W/m²]
	EarthIR         float64 // Earth IR flux [W/m²]
	EarthViewFactor float64 // view factor to Earth ∈ [0, 1]
}

// NewEnvironment derives the thermal environment from an orbital
// configuration. The altitude comes from, in order of precedence: TLE
// propagation at epoch, the circularised apogee/perigee pair, or the
// explicit circular altitude.
func NewEnvironment(cfg *inp.OrbitalConfig) (o *Environment, err error) {

	// effective altitude
	alt := cfg.AltitudeKm
	if cfg.TLE1 != "" && cfg.TLE2 != "" {
		alt, err = AltitudeFromTLE(cfg.TLE1, cfg.TLE2, cfg.Epoch)
		if err != nil {
			return nil, err
		}
	} else if cfg.ApogeeKm > 0 || cfg.PerigeeKm > 0 {
		if cfg.PerigeeKm >= cfg.ApogeeKm {
			return nil, chk.Err("invalid HEO configuration: perigee (%g km) must be below apogee (%g km)", cfg.PerigeeKm, cfg.ApogeeKm)
		}
		alt = (cfg.ApogeeKm + cfg.PerigeeKm) / 2.0
	}
	if alt <= 0 {
		return nil, chk.Err("orbital altitude must be positive; got %g km", alt)
	}

	o = new(Environment)
	o.AltitudeKm = alt

	// period from the semi-major axis
	a := (EarthRadiusKm + alt) * 1e3
	o.PeriodSec = 2.0 * math.Pi * math.Sqrt(a*a*a/EarthMu)

	// beta angle
	sun := SunPosition(cfg.Epoch)
	inc := cfg.IncDeg * math.Pi / 180.0
	raan := cfg.RaanDeg * math.Pi / 180.0
	sinBeta := math.Cos(sun.DeclRad)*math.Sin(inc)*math.Sin(raan-sun.RaRad) + math.Sin(sun.DeclRad)*math.Cos(inc)
	o.BetaDeg = math.Asin(clamp(sinBeta, -1, 1)) * 180.0 / math.Pi

	// Earth view factor
	sinRho := clamp(EarthRadiusKm/(EarthRadiusKm+alt), 0, 1)
	rho := math.Asin(sinRho)
	sr := math.Sin(rho)
	o.EarthViewFactor = sr * sr

	// eclipse fraction
	o.EclipseFrac = eclipseFraction(alt, o.BetaDeg*math.Pi/180.0, rho)
	o.SunlitFrac = 1.0 - o.EclipseFrac

	// fluxes
	o.SolarFlux = SolarConstant / (sun.DistAU * sun.DistAU)
	o.AlbedoFlux = EarthAlbedo * o.SolarFlux * o.EarthViewFactor
	o.EarthIR = EarthIRFlux * o.EarthViewFactor
	return
}

// eclipseFraction computes the fraction of the orbit spent in the
// cylindrical Earth shadow. alt in km, beta and rho in radians.
func eclipseFraction(alt, beta, rho float64) float64 {
	absBeta := math.Abs(beta)
	if absBeta >= math.Pi/2.0-rho {
		return 0
	}
	r := EarthRadiusKm
	c := math.Sqrt(alt*alt+2.0*r*alt) / ((r + alt) * math.Cos(absBeta))
	if c >= 1 {
		return 0
	}
	return clamp(math.Acos(c)/math.Pi, 0, 0.5)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
