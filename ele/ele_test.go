// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/multifil/mdl/tropo"
	"github.com/cpmech/multifil/rng"
)

func TestThinFilamentSpacing(tst *testing.T) {
	chk.PrintTitle("ThinFilamentSpacing")
	tf, err := NewThinFilament(0, 10, 37.3, 1250, 0, tropo.DefaultRates())
	if err != nil {
		tst.Errorf("NewThinFilament failed: %v", err)
		return
	}
	chk.Scalar(tst, "site[0].Axial", 1e-9, tf.Sites[0].Axial, 1250)
	chk.Scalar(tst, "site[1].Axial", 1e-9, tf.Sites[1].Axial, 1250-37.3)
}

func TestBindingSiteSingleOccupancy(tst *testing.T) {
	chk.PrintTitle("BindingSiteSingleOccupancy")
	tf, _ := NewThinFilament(0, 3, 37.3, 1250, 0, tropo.DefaultRates())
	mf, err := NewThickFilament(0, 2, 81.3, 14.3, fun.Prms{})
	if err != nil {
		tst.Errorf("NewThickFilament failed: %v", err)
		return
	}
	mf.Faces[0].Opposing = tf.Faces[0]
	tf.Faces[0].Opposing = mf.Faces[0]
	site := tf.Sites[0]
	x1 := mf.Faces[0].Crossbridges[0]
	x2 := mf.Faces[0].Crossbridges[1]
	if !site.BindTo(x1) {
		tst.Errorf("first bind should succeed")
	}
	if site.BindTo(x2) {
		tst.Errorf("second bind to an occupied site should fail")
	}
}

func TestCrossbridgeTransitionFreeWithoutOpposingFace(tst *testing.T) {
	chk.PrintTitle("CrossbridgeTransitionFreeWithoutOpposingFace")
	mf, _ := NewThickFilament(0, 1, 81.3, 14.3, fun.Prms{})
	rs := rng.New(3)
	x := mf.Faces[0].Crossbridges[0]
	trans := x.Transition(rs, 12, -1e9, 1.0, 0)
	if trans != "" {
		tst.Errorf("expected no transition without an opposing face, got %q", trans)
	}
}
