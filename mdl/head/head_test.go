// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package head

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/multifil/rng"
)

func TestNewDefault(tst *testing.T) {
	chk.PrintTitle("NewDefault")
	h, err := NewDefault(fun.Prms{})
	if err != nil {
		tst.Errorf("NewDefault failed: %v", err)
		return
	}
	if h.State != Free {
		tst.Errorf("new head should start free, got %v", h.State)
	}
	if h.AlphaDG >= 0 || h.EtaDG >= 0 {
		tst.Errorf("alphaDG/etaDG should be negative (binding is favorable): got %g %g", h.AlphaDG, h.EtaDG)
	}
}

func TestEnergyZeroAtRest(tst *testing.T) {
	chk.PrintTitle("EnergyZeroAtRest")
	h, _ := NewDefault(fun.Prms{})
	// tip at the weak rest configuration has zero elastic energy in Loose.
	x := h.Globular.Rw * math.Cos(h.Converter.Rw)
	y := h.Globular.Rw * math.Sin(h.Converter.Rw)
	e := h.Energy([2]float64{x, y}, Loose)
	chk.Scalar(tst, "E(rest, loose)", 1e-9, e, 0)
}

func TestUnboundTipWithinLattice(tst *testing.T) {
	chk.PrintTitle("UnboundTipWithinLattice")
	h, _ := NewDefault(fun.Prms{})
	rs := rng.New(42)
	ls := 12.0
	for ts := 0; ts < 5; ts++ {
		_, y := h.UnboundTip(rs, ts, ls)
		if y <= 0 || y > ls {
			tst.Errorf("tip y=%g out of (0, %g]", y, ls)
		}
	}
}

func TestTransitionFreeToLooseOnCertainBind(tst *testing.T) {
	chk.PrintTitle("TransitionFreeToLoose")
	h, _ := NewDefault(fun.Prms{})
	h.Br = 1e6 // force an overwhelmingly large binding rate
	rs := rng.New(7)
	// place the site at the diffused tip itself, so exp(-dist^2) = 1.
	tx, ty := h.UnboundTip(rs, 0, 10)
	bs := [2]float64{tx, ty}
	trans := h.Transition(rs, bs, 1.0, 1.0, 0, 10)
	if trans != T12 || h.State != Loose {
		tst.Errorf("expected certain free->loose transition, got %q state=%v", trans, h.State)
	}
}
