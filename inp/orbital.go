// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "time"

// attitude modes
const (
	AttNadir = "nadir" // nadir-pointing
	AttSun   = "sun"   // sun-pointing
)

// OrbitalConfig holds the orbit definition used to derive the thermal
// environment. The orbit is given by one of three forms, checked in order:
// two TLE lines (propagated at epoch), an apogee/perigee pair (HEO; the
// circularised semi-major axis altitude is used), or a circular altitude.
type OrbitalConfig struct {

	// circular orbit
	AltitudeKm float64 `json:"altitudeKm"` // altitude above Earth's surface [km]

	// highly elliptical orbit
	ApogeeKm  float64 `json:"apogeeKm"`  // apogee altitude [km]
	PerigeeKm float64 `json:"perigeeKm"` // perigee altitude [km]; must be < apogee

	// orientation
	IncDeg  float64 `json:"incDeg"`  // inclination i [deg]
	RaanDeg float64 `json:"raanDeg"` // right ascension of ascending node Ω [deg]

	// timing
	Epoch time.Time `json:"epoch"` // absolute epoch; fixes the sun position

	// optional
	Attitude string `json:"attitude"` // "" or one of: nadir, sun
	TLE1     string `json:"tle1"`     // first TLE line; overrides AltitudeKm when set
	TLE2     string `json:"tle2"`     // second TLE line
}

// CopyOrbitalConfig returns a deep copy of an orbital configuration
func CopyOrbitalConfig(cfg *OrbitalConfig) *OrbitalConfig {
	if cfg == nil {
		return nil
	}
	c := *cfg
	return &c
}
