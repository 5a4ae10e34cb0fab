// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tropo implements the tropomyosin/troponin regulatory unit
// guarding a single actin binding site: a three-state (blocked, closed,
// open) cooperative kinetic machine, built the way mdl/solid's 1-D models
// carry an internal state plus an Init(prms)-style constructor.
package tropo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/multifil/rng"
)

// State is a regulatory unit's occupancy state.
type State int

const (
	Blocked State = iota // myosin cannot bind
	Closed               // calcium bound, not yet cooperatively opened
	Open                 // permissive: myosin may bind
)

func (s State) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Closed:
		return "closed"
	case Open:
		return "open"
	}
	return "?"
}

// Rate constants for the six directed edges of the regulatory unit's
// kinetic graph. Unlike mdl/head's rates, these are not derivable from the
// retrieval pack's Python source (the thin-filament source file was not
// part of the retrieved corpus); they are hand-calibrated constants in the
// idiom of a Hill/Michaelis-Menten calcium-activation model, documented as
// an explicit open-question decision.
type Rates struct {
	K12Max, Kd12 float64 // blocked->closed: Ca-dependent, Michaelis-Menten
	K21          float64 // closed->blocked: constant
	K23Base      float64 // closed->open: cooperative
	K32Base      float64 // open->closed: cooperative
	CoopFactor   float64 // multiplier/divisor applied when cooperativity is active
	K13, K31     float64 // direct blocked<->open "leak" rates, small
}

// DefaultRates returns a representative, internally consistent rate set.
func DefaultRates() Rates {
	return Rates{
		K12Max:     70,
		Kd12:       6e-7,
		K21:        24,
		K23Base:    15,
		K32Base:    15,
		CoopFactor: 7,
		K13:        0.5,
		K31:        0.5,
	}
}

// RatesFromPrms overrides DefaultRates with any tm_* keys present in prms.
func RatesFromPrms(prms fun.Prms) Rates {
	r := DefaultRates()
	for _, pr := range prms {
		switch pr.N {
		case "tm_k12max":
			r.K12Max = pr.V
		case "tm_kd12":
			r.Kd12 = pr.V
		case "tm_k21":
			r.K21 = pr.V
		case "tm_k23base":
			r.K23Base = pr.V
		case "tm_k32base":
			r.K32Base = pr.V
		case "tm_coop":
			r.CoopFactor = pr.V
		case "tm_k13":
			r.K13 = pr.V
		case "tm_k31":
			r.K31 = pr.V
		}
	}
	return r
}

// Site is a single regulatory unit, one per actin binding site.
type Site struct {
	State      State
	Rates      Rates
	Cooperate  bool // set true when a neighboring site within the cooperative span is Open
}

// New builds a site in the Blocked state.
func New(rates Rates) (*Site, error) {
	if rates.K12Max <= 0 || rates.Kd12 <= 0 {
		return nil, chk.Err("tropo: invalid rate constants: K12Max=%g Kd12=%g must be > 0", rates.K12Max, rates.Kd12)
	}
	return &Site{State: Blocked, Rates: rates}, nil
}

// p converts a rate (1/ms) and timestep length (ms) into a Poisson-process
// firing probability.
func p(rate, dtMs float64) float64 {
	return 1 - math.Exp(-rate*dtMs)
}

func (o *Site) r12(ca float64) float64 {
	return o.Rates.K12Max * ca / (ca + o.Rates.Kd12)
}

func (o *Site) r23() float64 {
	if o.Cooperate {
		return o.Rates.K23Base * o.Rates.CoopFactor
	}
	return o.Rates.K23Base
}

func (o *Site) r32() float64 {
	if o.Cooperate {
		return o.Rates.K32Base / o.Rates.CoopFactor
	}
	return o.Rates.K32Base
}

// R12, R21, R23, R32, R13, R31 are the exported instantaneous rate values
// for this site's six kinetic edges (§4.7 "r_12..r_31 (averaged across all
// sites)"), independent of whether any transition actually fires.
func (o *Site) R12(ca float64) float64 { return o.r12(ca) }
func (o *Site) R21() float64           { return o.Rates.K21 }
func (o *Site) R23() float64           { return o.r23() }
func (o *Site) R32() float64           { return o.r32() }
func (o *Site) R13() float64           { return o.Rates.K13 }
func (o *Site) R31() float64           { return o.Rates.K31 }

// Transition draws a single uniform and applies at most one transition,
// restricted to the two edges leaving the current state, ordered per the
// overall cycle 1->2, 2->1, 2->3, 3->2, 1->3, 3->1.
func (o *Site) Transition(rs *rng.Stream, ca, dtMs float64) string {
	u := rs.Uniform01()
	switch o.State {
	case Blocked:
		p12, p13 := p(o.r12(ca), dtMs), p(o.Rates.K13, dtMs)
		if u < p12 {
			o.State = Closed
			return "12"
		}
		if u < p12+p13 {
			o.State = Open
			return "13"
		}
		return ""
	case Closed:
		p21, p23 := p(o.Rates.K21, dtMs), p(o.r23(), dtMs)
		if u < p21 {
			o.State = Blocked
			return "21"
		}
		if u < p21+p23 {
			o.State = Open
			return "23"
		}
		return ""
	case Open:
		p32, p31 := p(o.r32(), dtMs), p(o.Rates.K31, dtMs)
		if u < p32 {
			o.State = Closed
			return "32"
		}
		if u < p32+p31 {
			o.State = Blocked
			return "31"
		}
		return ""
	}
	return ""
}

// Permissive reports whether a myosin head may bind this site.
func (o *Site) Permissive() bool {
	return o.State == Open
}
