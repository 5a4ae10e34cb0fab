// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the activation-trace generators used as
// boundary-condition collaborators (§4.8), built in the style of the
// teacher's ana package (ana/colpresfluid.go's closed-form boundary-value
// generator feeding a fun.Func into the FEM driver).
package ana

import "math"

// Time returns [0, dt, 2dt, ...] up to but excluding duration.
func Time(dt, durationMs float64) []float64 {
	n := int(math.Ceil(durationMs / dt))
	t := make([]float64, 0, n)
	for v := 0.0; v < durationMs; v += dt {
		t = append(t, v)
	}
	return t
}

// ZlineWorkloop produces a sinusoidal z-line length trace.
func ZlineWorkloop(mean, amp, freqHz float64, time []float64) []float64 {
	period := 1000.0 / freqHz
	out := make([]float64, len(time))
	for i, t := range time {
		out[i] = mean + 0.5*amp*math.Cos(2*math.Pi*t/period)
	}
	return out
}

// ZlineForceVelocity holds at L0 for holdMs, then shortens linearly at
// L0PerSec * L0 per second.
func ZlineForceVelocity(l0, holdMs, l0PerSec float64, time []float64) []float64 {
	out := make([]float64, len(time))
	if len(time) == 0 {
		return out
	}
	dt := 0.0
	if len(time) > 1 {
		dt = time[1] - time[0]
	}
	z := l0
	for i, t := range time {
		if t < holdMs {
			out[i] = l0
			continue
		}
		z -= dt * l0PerSec * l0 / 1000.0
		out[i] = z
	}
	return out
}

// ActinPermissivenessWorkloop produces a per-cycle calcium-activation
// profile: growth during the stimulus window via a logistic-like update,
// exponential decay afterward, convolved with a narrow Gaussian kernel and
// shifted by a fractional-cycle phase (§4.8).
func ActinPermissivenessWorkloop(freqHz, phase, stimDurMs, influxTimeMs, halfLifeMs float64, time []float64, max float64) []float64 {
	if max <= 0 {
		max = 1.0
	}
	period := 1000.0 / freqHz
	n := len(time)
	raw := make([]float64, n)
	if n == 0 {
		return raw
	}
	dt := 0.0
	if n > 1 {
		dt = time[1] - time[0]
	}
	x := 1e-9
	for i, t := range time {
		cyclePos := math.Mod(t, period)
		if cyclePos < stimDurMs {
			x += dt * x * (0.5 / influxTimeMs) * (1 - x/max)
		} else {
			x += dt * x * math.Log(0.5) / halfLifeMs
		}
		if x < 0 {
			x = 0
		}
		raw[i] = x
	}

	shift := period * math.Mod(phase, 1.0)
	shifted := make([]float64, n)
	if dt > 0 {
		shiftSteps := int(math.Round(shift / dt))
		for i := range shifted {
			src := i - shiftSteps
			src = ((src % n) + n) % n
			shifted[i] = raw[src]
		}
	} else {
		copy(shifted, raw)
	}

	return gaussianConvolve(shifted, dt)
}

// gaussianConvolve convolves signal with a Gaussian kernel of sigma=1ms
// truncated at +/-3ms, matching §4.8's stated kernel.
func gaussianConvolve(signal []float64, dt float64) []float64 {
	if dt <= 0 {
		return signal
	}
	const sigma = 1.0
	support := int(math.Round(3.0 / dt))
	kernel := make([]float64, 2*support+1)
	var ksum float64
	for i := -support; i <= support; i++ {
		v := float64(i) * dt
		w := math.Exp(-v * v / (2 * sigma * sigma))
		kernel[i+support] = w
		ksum += w
	}
	for i := range kernel {
		kernel[i] /= ksum
	}
	n := len(signal)
	out := make([]float64, n)
	for i := range signal {
		var acc float64
		for k := -support; k <= support; k++ {
			src := i + k
			if src < 0 || src >= n {
				continue
			}
			acc += signal[src] * kernel[k+support]
		}
		out[i] = acc
	}
	return out
}
