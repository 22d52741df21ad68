// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// heat load kinds
const (
	LoadConstant    = "constant"     // fixed power
	LoadTimeVarying = "time_varying" // piecewise-linear power over time
	LoadOrbital     = "orbital"      // environment fluxes on one surface
)

// orbital load surface categories
const (
	SurfSolar       = "solar"        // sun-facing: solar + albedo when sunlit, Earth IR always
	SurfEarthFacing = "earth_facing" // nadir: albedo when sunlit, Earth IR always
	SurfAntiEarth   = "anti_earth"   // zenith: solar only, no Earth terms
	SurfCustom      = "custom"       // tumbling/average: same terms as solar
)

// TimePoint holds one sample of a time-varying load
type TimePoint struct {
	T float64 `json:"t"` // time [s]
	Q float64 `json:"q"` // power [W]
}

// OrbitalLoadPrms holds the surface parameters of an orbital heat load
type OrbitalLoadPrms struct {
	Alpha   float64 `json:"alpha"`   // solar absorptivity of the surface
	Epsilon float64 `json:"epsilon"` // IR emissivity of the surface
	Area    float64 `json:"area"`    // exposed area [m²]
	Surface string  `json:"surface"` // one of: solar, earth_facing, anti_earth, custom
}

// HeatLoad holds one heat load record. Multiple loads attached to the same
// node sum.
type HeatLoad struct {

	// identity
	Id   string `json:"id"`   // unique identifier
	Name string `json:"name"` // human readable name
	Node string `json:"node"` // id of the loaded node
	Kind string `json:"kind"` // one of: constant, time_varying, orbital

	// constant
	Value float64 `json:"value"` // power [W]

	// time varying; sorted by T, clamped outside the domain
	Points []TimePoint `json:"points"`

	// orbital
	Orbital *OrbitalLoadPrms `json:"orbital"`
}

// CopyLoads returns a deep copy of a list of heat load records
func CopyLoads(loads []*HeatLoad) (res []*HeatLoad) {
	res = make([]*HeatLoad, len(loads))
	for i, l := range loads {
		c := *l
		if l.Points != nil {
			c.Points = make([]TimePoint, len(l.Points))
			copy(c.Points, l.Points)
		}
		if l.Orbital != nil {
			p := *l.Orbital
			c.Orbital = &p
		}
		res[i] = &c
	}
	return
}
