// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package head

import (
	"math"

	"github.com/cpmech/multifil/rng"
)

// p converts a rate (1/ms) and a timestep length (ms) into the probability
// of at least one Poisson-process firing during that step.
func p(rate, dtMs float64) float64 {
	return 1 - math.Exp(-rate*dtMs)
}

// freeEnergy returns the Gibbs free energy (elastic + chemical) of the head
// at bs (the candidate/actual binding-site offset, (dx, lattice_spacing)) in
// the given state. Free is the zero reference.
func (o *Head) freeEnergy(bs [2]float64, s State) float64 {
	switch s {
	case Loose:
		return o.AlphaDG + o.Energy(bs, Loose)
	case Tight:
		return o.EtaDG + o.Energy(bs, Tight)
	default:
		return 0
	}
}

// bind is the free -> loose binding rate, given the unbound tip's diffused
// location (tip): a Gaussian-shaped rate in the tip-to-site distance, scaled
// by the binding rate modifier. Site permissiveness is not applied here;
// Transition multiplies the binding probability by ap.
func (o *Head) bind(tip, bs [2]float64) float64 {
	dx := bs[0] - tip[0]
	dy := bs[1] - tip[1]
	dist2 := dx*dx + dy*dy
	return o.Br * 72 * math.Exp(-dist2)
}

// r23 is the loose -> tight rate: a sigmoid in the energy difference
// between the loose and tight configurations at bs.
func (o *Head) r23(bs [2]float64) float64 {
	eLoose := o.Energy(bs, Loose)
	eTight := o.Energy(bs, Tight)
	return 0.6 * (1 + math.Tanh(6+0.2*(eLoose-eTight)))
}

// r31 is the tight -> free rate.
func (o *Head) r31(bs [2]float64) float64 {
	eTight := o.Energy(bs, Tight)
	v := 0.01 * eTight
	if v < 0 {
		v = 0
	}
	return o.Dr * (math.Sqrt(v) + 0.02)
}

// detailedBalanceRate divides forward by exp(deltaG), defaulting to 1 when
// the ratio is degenerate (division by an underflowed-to-zero denominator),
// matching the reference source's behavior on ZeroDivisionError.
func detailedBalanceRate(forward, deltaG float64) float64 {
	denom := math.Exp(deltaG)
	if denom == 0 {
		return 1
	}
	return forward / denom
}

// r21 is the loose -> free rate, obtained from bind via detailed balance:
// bind / exp(G_free - G_loose), so a lower-energy loose state unbinds slowly.
func (o *Head) r21(tip, bs [2]float64) float64 {
	forward := o.bind(tip, bs)
	deltaG := o.freeEnergy(bs, Free) - o.freeEnergy(bs, Loose)
	return detailedBalanceRate(forward, deltaG)
}

// r32 is the tight -> loose rate, obtained from r23 via detailed balance:
// r23 / exp(G_loose - G_tight).
func (o *Head) r32(bs [2]float64) float64 {
	forward := o.r23(bs)
	deltaG := o.freeEnergy(bs, Loose) - o.freeEnergy(bs, Tight)
	return detailedBalanceRate(forward, deltaG)
}

// Transition draws a single uniform and fires at most one kinetic
// transition, in the branch order free->loose, loose->{tight,free},
// tight->{free,loose}. bs is the actual-or-candidate (dx, lattice_spacing)
// binding-site offset; ap is the site's actin permissiveness (ignored
// except in the free state); dtMs is the timestep length; timestep and
// latticeSpacing feed the unbound-tip cache. Returns the edge tag that
// fired, or NoTransition.
func (o *Head) Transition(rs *rng.Stream, bs [2]float64, ap float64, dtMs float64, timestep int, latticeSpacing float64) string {
	u := rs.Uniform01()
	switch o.State {
	case Free:
		tipX, tipY := o.UnboundTip(rs, timestep, latticeSpacing)
		tip := [2]float64{tipX, tipY}
		if p(o.bind(tip, bs), dtMs)*ap > u {
			o.State = Loose
			return T12
		}
		return NoTransition
	case Loose:
		if p(o.r23(bs), dtMs) > u {
			o.State = Tight
			return T23
		}
		tipX, tipY := o.UnboundTip(rs, timestep, latticeSpacing)
		tip := [2]float64{tipX, tipY}
		if 1-p(o.r21(tip, bs), dtMs) < u {
			o.State = Free
			return T21
		}
		return NoTransition
	case Tight:
		if p(o.r31(bs), dtMs) > u {
			o.State = Free
			return T31
		}
		if 1-p(o.r32(bs), dtMs) < u {
			o.State = Loose
			return T32
		}
		return NoTransition
	}
	return NoTransition
}
