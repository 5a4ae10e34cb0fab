// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestTimeExcludesDuration(tst *testing.T) {
	chk.PrintTitle("TimeExcludesDuration")
	t := Time(0.5, 2.0)
	for _, v := range t {
		if v >= 2.0 {
			tst.Errorf("time trace should exclude duration, got %g", v)
		}
	}
	chk.Scalar(tst, "t[0]", 1e-12, t[0], 0)
}

func TestZlineWorkloopPeriodic(tst *testing.T) {
	chk.PrintTitle("ZlineWorkloopPeriodic")
	time := Time(1.0, 2000)
	z := ZlineWorkloop(1250, 20, 1, time)
	chk.Scalar(tst, "z(0)", 1e-6, z[0], 1250+10)
	chk.Scalar(tst, "z(period)", 1e-3, z[1000], z[0])
}

func TestZlineForceVelocityHoldsThenShortens(tst *testing.T) {
	chk.PrintTitle("ZlineForceVelocityHoldsThenShortens")
	time := Time(1.0, 200)
	z := ZlineForceVelocity(1250, 100, 1, time)
	chk.Scalar(tst, "z during hold", 1e-9, z[50], 1250)
	if z[150] >= 1250 {
		tst.Errorf("expected shortening after hold, got z[150]=%g", z[150])
	}
}

func TestActinPermissivenessWorkloopHasOnePeakPerCycle(tst *testing.T) {
	chk.PrintTitle("ActinPermissivenessWorkloopOnePeakPerCycle")
	time := Time(1.0, 2000)
	x := ActinPermissivenessWorkloop(1, 0.01, 20, 2, 50, time, 1.0)
	peaks := 0
	for i := 1; i < len(x)-1; i++ {
		if x[i] > x[i-1] && x[i] > x[i+1] && x[i] > 0.1 {
			peaks++
		}
	}
	if peaks < 1 || peaks > 3 {
		tst.Errorf("expected roughly one prominent peak per 1000ms cycle over 2 cycles, got %d", peaks)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Errorf("non-finite value in activation trace")
			break
		}
	}
}
