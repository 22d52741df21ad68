// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orb

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	gosatellite "github.com/joshuaferrara/go-satellite"
)

// AltitudeFromTLE propagates a two-line element set to the given epoch
// with SGP4 (WGS84 gravity) and returns the geocentric altitude in km.
func AltitudeFromTLE(line1, line2 string, epoch time.Time) (altKm float64, err error) {
	if len(line1) < 62 || len(line2) < 62 {
		return 0, chk.Err("malformed TLE lines (%d and %d characters)", len(line1), len(line2))
	}
	sat := gosatellite.TLEToSat(line1, line2, gosatellite.GravityWGS84)
	u := epoch.UTC()
	pos, _ := gosatellite.Propagate(sat, u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second())
	r := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
	altKm = r - EarthRadiusKm
	if altKm <= 0 || math.IsNaN(altKm) {
		return 0, chk.Err("TLE propagation gave a non-orbital radius (%g km)", r)
	}
	return
}
