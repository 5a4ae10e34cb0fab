// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package head implements the myosin head: two springs in series (a
// torsional converter and a linear globular domain) carrying a three-state
// kinetic machine, following the teacher's one-model-per-file layout in
// mdl/solid (e.g. rjointm1.go's parametrized 1-D constitutive model).
package head

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/multifil/mdl/spring"
	"github.com/cpmech/multifil/rng"
)

// State is the myosin head's kinetic state.
type State int

const (
	Free State = iota
	Loose
	Tight
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Loose:
		return "loose"
	case Tight:
		return "tight"
	}
	return "?"
}

// Transition labels, matching the teacher's convention of returning a
// string tag for the edge that fired (mirrors mdl/solid's state-machine
// transition bookkeeping).
const (
	NoTransition = ""
	T12          = "12" // free -> loose
	T21          = "21" // loose -> free
	T23          = "23" // loose -> tight
	T32          = "32" // tight -> loose
	T31          = "31" // tight -> free
)

// Head is a single myosin head: the converter (torsional) and globular
// (linear) springs plus the kinetic state and the free-energy constants
// derived from ATP hydrolysis.
type Head struct {
	Converter *spring.Spring // torsional, radians
	Globular  *spring.Spring // linear, nm
	State     State

	AlphaDG float64 // free energy of the loose state, not counting elastic energy
	EtaDG   float64 // free energy of the tight state, not counting elastic energy

	Br float64 // binding rate modifier
	Dr float64 // detachment rate modifier

	tipValid    bool
	tipTimestep int
	tipX, tipY  float64
}

// DeltaG computes the free energy of ATP hydrolysis (in units of kT) from
// the hydrolysis constant and the ATP/ADP/Pi concentrations, per
// deltaG = |-g_atp - ln(atp/(adp*pi))|.
func DeltaG(gAtp, atp, adp, pi float64) float64 {
	return math.Abs(-gAtp - math.Log(atp/(adp*pi)))
}

// Default ATP hydrolysis parameters, as used throughout the reference
// implementation: g_atp in units of RT, concentrations in M.
const (
	DefaultGAtp = 13.0
	DefaultAtp  = 5e-3
	DefaultAdp  = 30e-6
	DefaultPi   = 3e-3
)

// New builds a head from its two springs and free-energy/rate constants.
func New(converter, globular *spring.Spring, alphaDG, etaDG, br, dr float64) *Head {
	return &Head{
		Converter: converter,
		Globular:  globular,
		State:     Free,
		AlphaDG:   alphaDG,
		EtaDG:     etaDG,
		Br:        br,
		Dr:        dr,
	}
}

// NewDefault builds a head using the reference spring geometry (converter
// rest 47.16deg/73.20deg, stiffness 40/40; globular rest 19.93/16.47nm,
// stiffness 2/2) and the default ATP hydrolysis constants, optionally
// overridden by a fun.Prms record carrying the mh_c_* / mh_g_* / mh_br /
// mh_dr keys named in §9's configuration enumeration.
func NewDefault(prms fun.Prms) (*Head, error) {
	gAtp, atp, adp, pi := DefaultGAtp, DefaultAtp, DefaultAdp, DefaultPi
	br, dr := 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "mh_br":
			br = p.V
		case "mh_dr":
			dr = p.V
		case "g_atp":
			gAtp = p.V
		case "atp":
			atp = p.V
		case "adp":
			adp = p.V
		case "pi":
			pi = p.V
		}
	}
	conv, err := spring.FromPrms(prms, "mh_c_rw", "mh_c_rs", "mh_c_kw", "mh_c_ks",
		math.Pi*47.16/180, math.Pi*73.20/180, 40.0, 40.0)
	if err != nil {
		return nil, chk.Err("head: invalid converter spring: %v", err)
	}
	glob, err := spring.FromPrms(prms, "mh_g_rw", "mh_g_rs", "mh_g_kw", "mh_g_ks",
		19.93, 16.47, 2.0, 2.0)
	if err != nil {
		return nil, chk.Err("head: invalid globular spring: %v", err)
	}
	deltaG := DeltaG(gAtp, atp, adp, pi)
	return New(conv, glob, 0.28*-deltaG, 0.68*-deltaG, br, dr), nil
}

// segValues converts a tip location (x,y) into the converter angle and
// globular length it implies.
func segValues(tip [2]float64) (cAng, gLen float64) {
	gLen = math.Hypot(tip[0], tip[1])
	cAng = math.Atan2(tip[1], tip[0])
	return
}

// Energy returns the elastic energy stored in the head, at tip location
// tip, in the given state.
func (o *Head) Energy(tip [2]float64, s State) float64 {
	cAng, gLen := segValues(tip)
	return o.Converter.Energy(cAng, toSpringState(s)) + o.Globular.Energy(gLen, toSpringState(s))
}

// AxialForce computes the axial (x) force the head generates at tip,
// using the head's current kinetic state.
func (o *Head) AxialForce(tip [2]float64) float64 {
	cAng, gLen := segValues(tip)
	cS, gS := o.Converter.Rest(toSpringState(o.State)), o.Globular.Rest(toSpringState(o.State))
	cK, gK := o.Converter.Stiffness(toSpringState(o.State)), o.Globular.Stiffness(toSpringState(o.State))
	return gK*(gLen-gS)*math.Cos(cAng) + 1/gLen*cK*(cAng-cS)*math.Sin(cAng)
}

// RadialForce computes the radial (y) force the head generates at tip,
// using the head's current kinetic state.
func (o *Head) RadialForce(tip [2]float64) float64 {
	cAng, gLen := segValues(tip)
	cS, gS := o.Converter.Rest(toSpringState(o.State)), o.Globular.Rest(toSpringState(o.State))
	cK, gK := o.Converter.Stiffness(toSpringState(o.State)), o.Globular.Stiffness(toSpringState(o.State))
	return gK*(gLen-gS)*math.Sin(cAng) + 1/gLen*cK*(cAng-cS)*math.Cos(cAng)
}

// toSpringState maps a kinetic State onto the spring's weak/strong selector:
// Free and Loose both use the weak spring, Tight uses the strong one.
func toSpringState(s State) spring.State {
	if s == Tight {
		return spring.Strong
	}
	return spring.Weak
}

// UnboundTip returns the cached diffused tip location for the current
// timestep, sampling a fresh one (by rejection against the lattice
// spacing) the first time it is requested for a given timestep index.
func (o *Head) UnboundTip(rs *rng.Stream, timestep int, latticeSpacing float64) (x, y float64) {
	if o.tipValid && o.tipTimestep == timestep {
		return o.tipX, o.tipY
	}
	for {
		cAng := o.Converter.SampleFree(rs.Normal)
		gLen := o.Globular.SampleFree(rs.Normal)
		x, y = gLen*math.Cos(cAng), gLen*math.Sin(cAng)
		if y > 0 && y <= latticeSpacing {
			break
		}
	}
	o.tipX, o.tipY = x, y
	o.tipValid = true
	o.tipTimestep = timestep
	return
}
