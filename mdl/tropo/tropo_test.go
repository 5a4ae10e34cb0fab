// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tropo

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/multifil/rng"
)

func TestNewStartsBlocked(tst *testing.T) {
	chk.PrintTitle("NewStartsBlocked")
	s, err := New(DefaultRates())
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	if s.State != Blocked || s.Permissive() {
		tst.Errorf("new site should start blocked and non-permissive")
	}
}

func TestTransitionActivatesUnderSaturatingCalcium(tst *testing.T) {
	chk.PrintTitle("TransitionActivatesUnderSaturatingCalcium")
	s, _ := New(DefaultRates())
	rs := rng.New(11)
	sawOpen := false
	for i := 0; i < 500 && !sawOpen; i++ {
		s.Transition(rs, 1e-4, 1.0)
		if s.State == Open {
			sawOpen = true
		}
	}
	if !sawOpen {
		tst.Errorf("expected site to reach Open under saturating calcium within 500 steps")
	}
}

func TestCooperativityBoostsOpeningRate(tst *testing.T) {
	chk.PrintTitle("CooperativityBoostsOpeningRate")
	s, _ := New(DefaultRates())
	s.State = Closed
	base := s.r23()
	s.Cooperate = true
	boosted := s.r23()
	if boosted <= base {
		tst.Errorf("cooperativity should increase r23: base=%g boosted=%g", base, boosted)
	}
}
