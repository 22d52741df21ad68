// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package orb implements the orbital environment model: sun position,
// orbital period, beta angle, eclipse fraction and the time-periodic
// solar / albedo / Earth-IR flux profile
package orb

import (
	"math"
	"time"
)

// physical constants shared at the boundary
const (
	SolarConstant = 1361.0         // solar flux at 1 AU [W/m²]
	EarthRadiusKm = 6371.0         // mean Earth radius [km]
	EarthMu       = 3.986004418e14 // Earth gravitational parameter [m³/s²]
	EarthAlbedo   = 0.3            // bond albedo coefficient
	EarthIRFlux   = 237.0          // mean Earth IR emission [W/m²]
	Obliquity     = 23.4393        // obliquity of the ecliptic [deg]
)

// SunPos holds the apparent sun position derived from an epoch
type SunPos struct {
	DeclRad float64 // declination δ [rad]
	RaRad   float64 // right ascension α [rad]
	DistAU  float64 // Earth-Sun distance [AU]
}

// SunPosition computes a low-precision sun position at the given epoch.
// Mean anomaly and equation of centre follow the standard simplified
// solar model; accuracy is at the fraction-of-a-degree level, enough for
// beta-angle and flux work.
func SunPosition(epoch time.Time) (s SunPos) {
	doy := float64(epoch.YearDay())
	m := 2.0 * math.Pi * (doy - 2.0) / 365.25
	c := 0.0334*math.Sin(m) + 0.000349*math.Sin(2.0*m)
	lam := m + c + math.Pi + 2.0*math.Pi*102.9/360.0
	eps := Obliquity * math.Pi / 180.0
	s.DeclRad = math.Asin(math.Sin(eps) * math.Sin(lam))
	s.RaRad = math.Atan2(math.Cos(eps)*math.Sin(lam), math.Cos(lam))
	s.DistAU = 1.0 - 0.0167*math.Cos(m)
	return
}
