// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func TestToFemConfigScalarTrace(tst *testing.T) {
	chk.PrintTitle("ToFemConfigScalarTrace")
	m := &Meta{
		TimestepLength: 0.5, TimestepNumber: 10,
		LatticeSpacing: 37.0, ZLine: 1250.0, PCa: 4.0,
		PoissonRatio: 0.5, Seed: 1,
	}
	cfg, td, err := m.ToFemConfig()
	if err != nil {
		tst.Errorf("ToFemConfig failed: %v", err)
		return
	}
	chk.Scalar(tst, "cfg.LS0", 1e-9, cfg.LS0, 37.0)
	chk.Scalar(tst, "cfg.ZLine0", 1e-9, cfg.ZLine0, 1250.0)
	if len(td.PCa) != 10 {
		tst.Errorf("expected pCa trace of length 10, got %d", len(td.PCa))
	}
}

func TestToFemConfigMismatchedTraceLength(tst *testing.T) {
	chk.PrintTitle("ToFemConfigMismatchedTraceLength")
	m := &Meta{TimestepNumber: 10, ZLine: []float64{1250, 1260}}
	_, _, err := m.ToFemConfig()
	if err == nil {
		tst.Errorf("expected a configuration error for a mismatched trace length")
	}
}

func TestToFemConfigWiresPrmsIntoHeadAndTropoRates(tst *testing.T) {
	chk.PrintTitle("ToFemConfigWiresPrmsIntoHeadAndTropoRates")
	m := &Meta{
		TimestepNumber: 1,
		Prms: fun.Prms{
			{N: "mh_br", V: 2.5},
			{N: "tm_k21", V: 99},
		},
	}
	cfg, _, err := m.ToFemConfig()
	if err != nil {
		tst.Errorf("ToFemConfig failed: %v", err)
		return
	}
	if len(cfg.HeadPrms) != 2 || cfg.HeadPrms[0].N != "mh_br" {
		tst.Errorf("expected HeadPrms to carry the mh_br override, got %v", cfg.HeadPrms)
	}
	chk.Scalar(tst, "cfg.TropoRates.K21", 1e-12, cfg.TropoRates.K21, 99)
}

func TestIsoformPrmsByCluster(tst *testing.T) {
	chk.PrintTitle("IsoformPrmsByCluster")
	m := &Meta{
		MhIso: []IsoPrm{
			{Name: "slow", IsoP: 0.3, Prms: fun.Prms{{N: "mh_br", V: 0.5}}},
			{Name: "fast", IsoP: 0.7, Prms: fun.Prms{{N: "mh_br", V: 2.0}}},
		},
		MhCluster: []int{1, 0},
	}
	p := m.IsoformPrms(0, func() float64 { return 0 })
	if len(p) == 0 || p[0].N != "mh_br" || p[0].V != 2.0 {
		tst.Errorf("expected cluster index 0 -> isoform 1 (fast), got %v", p)
	}
}

func TestIsoformPrmsByWeightedSample(tst *testing.T) {
	chk.PrintTitle("IsoformPrmsByWeightedSample")
	m := &Meta{
		MhIso: []IsoPrm{
			{Name: "slow", IsoP: 0.3, Prms: fun.Prms{{N: "mh_br", V: 0.5}}},
			{Name: "fast", IsoP: 0.7, Prms: fun.Prms{{N: "mh_br", V: 2.0}}},
		},
	}
	p := m.IsoformPrms(0, func() float64 { return 0.99 })
	if len(p) == 0 || p[0].V != 2.0 {
		tst.Errorf("expected a high uniform draw to land in the fast isoform, got %v", p)
	}
}
