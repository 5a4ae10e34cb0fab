// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package titin implements the nonlinear titin spring connecting a thick
// filament's tip to its opposing thin filament's tip, following the same
// parametrized-nonlinear-1D-model idiom as mdl/solid/rjointm1.go.
package titin

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Titin is an exponential nonlinear spring: Force(x) = a*(exp(b*x)-1),
// which reduces to the linear spring a*b*x in the small-extension limit
// (exp(b*x)-1 ≈ b*x for |b*x| << 1), satisfying §4.6's small-extension
// linearity requirement while still stiffening steeply at larger extension.
type Titin struct {
	A, B   float64
	Rest   float64 // rest (slack) length, zero-force extension reference
}

// New builds a titin spring with slack length rest. a and b must both be
// positive (a is a pN force scale, b is a 1/nm stiffening rate).
func New(a, b, rest float64) (*Titin, error) {
	if a <= 0 || b <= 0 {
		return nil, chk.Err("titin: invalid parameters a=%g b=%g, both must be > 0", a, b)
	}
	return &Titin{A: a, B: b, Rest: rest}, nil
}

// FromPrms builds a titin spring from the nameA/nameB parameters plus an
// explicit rest length (computed by the caller from initial topology, since
// titin's slack length is a geometric fact, not a tunable constant).
func FromPrms(prms fun.Prms, nameA, nameB string, rest float64) (*Titin, error) {
	var a, b float64
	for _, p := range prms {
		switch p.N {
		case nameA:
			a = p.V
		case nameB:
			b = p.V
		}
	}
	return New(a, b, rest)
}

// extension returns length minus the rest length; negative values
// (compression) are clamped to zero since titin, like any worm-like chain,
// cannot push.
func (o *Titin) extension(length float64) float64 {
	x := length - o.Rest
	if x < 0 {
		return 0
	}
	return x
}

// Force returns the tensile force at the given end-to-end length.
func (o *Titin) Force(length float64) float64 {
	x := o.extension(length)
	return o.A * (math.Exp(o.B*x) - 1)
}

// Energy returns the stored elastic energy at the given end-to-end length,
// the integral of Force over extension: ∫ a(e^(bx)-1)dx = a/b*(e^(bx)-1) - a*x.
func (o *Titin) Energy(length float64) float64 {
	x := o.extension(length)
	return o.A/o.B*(math.Exp(o.B*x)-1) - o.A*x
}

// Stiffness returns the local (tangent) stiffness dF/dx at the given length.
func (o *Titin) Stiffness(length float64) float64 {
	x := o.extension(length)
	return o.A * o.B * math.Exp(o.B*x)
}
