// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package titin

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestForceZeroAtRest(tst *testing.T) {
	chk.PrintTitle("ForceZeroAtRest")
	ti, err := New(1.0, 0.1, 100)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.Scalar(tst, "F(rest)", 1e-12, ti.Force(100), 0)
}

func TestSmallExtensionIsLinear(tst *testing.T) {
	chk.PrintTitle("SmallExtensionIsLinear")
	ti, _ := New(2.0, 0.01, 100)
	dx := 0.001
	f := ti.Force(100 + dx)
	linear := ti.A * ti.B * dx
	chk.Scalar(tst, "F(small dx) ~ linear", 1e-6, f, linear)
}

func TestCompressionClampedToZero(tst *testing.T) {
	chk.PrintTitle("CompressionClampedToZero")
	ti, _ := New(1.0, 0.1, 100)
	chk.Scalar(tst, "F(compressed)", 1e-12, ti.Force(50), 0)
}

func TestStiffensAtLargeExtension(tst *testing.T) {
	chk.PrintTitle("StiffensAtLargeExtension")
	ti, _ := New(1.0, 0.05, 100)
	kSmall := ti.Stiffness(100.1)
	kLarge := ti.Stiffness(150)
	if kLarge <= kSmall {
		tst.Errorf("expected stiffening at larger extension: k(small)=%g k(large)=%g", kSmall, kLarge)
	}
}
