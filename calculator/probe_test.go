package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarfield/model"
)

func TestGenerateProbes(t *testing.T) {
	const (
		l = 0.30
		r = 0.15
	)
	rs := 0.8 * r
	probes := GenerateProbes([]float64{0, 90, 180, 45, 45}, 0.8, r, l)
	require.Len(t, probes, 5)

	tcs := map[string]struct {
		n    int
		y, z float64
	}{
		"0 deg":   {0, rs, 0},
		"90 deg":  {1, 0, rs},
		"180 deg": {2, -rs, 0},
		"45 deg":  {3, rs * math.Sqrt2 / 2, rs * math.Sqrt2 / 2},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			p := probes[tc.n]
			assert.Equal(t, 0.0, p.Start.X)
			assert.Equal(t, l, p.End.X)
			assert.InDelta(t, tc.y, p.Start.Y, 1e-12)
			assert.InDelta(t, tc.z, p.Start.Z, 1e-12)
			assert.Equal(t, p.Start.Y, p.End.Y)
			assert.Equal(t, p.Start.Z, p.End.Z)
		})
	}

	// 0° 和 180° 的 y 精确等于 ±0.8R
	assert.Equal(t, rs, probes[0].Start.Y)
	assert.Equal(t, 0.0, probes[0].Start.Z)
	assert.Equal(t, -rs, probes[2].End.Y)
	assert.Equal(t, rs, probes[1].End.Z)

	// 重复角度生成重合的探针
	assert.Equal(t, probes[3], probes[4])
}

func TestGenerateProbesOrderAndEmpty(t *testing.T) {
	angles := model.DefaultAngles()
	probes := GenerateProbes(angles, model.DefaultRadiusFraction, model.DefaultRadius, model.DefaultLength)
	require.Len(t, probes, len(angles))
	for n, p := range probes {
		assert.Equal(t, angles[n], p.AngleDeg)
		assert.InDelta(t, 0.8*model.DefaultRadius, math.Hypot(p.Start.Y, p.Start.Z), 1e-12)
	}
	assert.Empty(t, GenerateProbes(nil, 0.8, 1, 1))
}

func TestProbePoints(t *testing.T) {
	p := GenerateProbes([]float64{135}, 0.8, 1, 2)[0]
	xs := Linspace(0, 2, 5)
	points := p.Points(xs)
	require.Len(t, points, 5)
	for n, pt := range points {
		assert.Equal(t, xs[n], pt.X)
		assert.Equal(t, p.Start.Y, pt.Y)
		assert.Equal(t, p.Start.Z, pt.Z)
	}
	assert.Equal(t, p.Start, points[0])
	assert.Equal(t, p.End, points[4])
}

func TestSampleProbe(t *testing.T) {
	d := model.Domain{L: 1, R: 1, Nx: 9, Ny: 9, Nz: 9}
	g, mask, field := synthesizeTestField(t, d)
	ds, err := Assemble(g.Mesh, field, mask, d, "SAR")
	require.NoError(t, err)
	masked, err := MaskField(field, mask)
	require.NoError(t, err)

	// y = 0.8 最近的网格点为 y = 0.75 (j = 7)，z = 0 (k = 4)
	inside := GenerateProbes([]float64{0}, 0.8, d.R, d.L)[0]
	samples, err := SampleProbe(ds, g, inside, "SAR")
	require.NoError(t, err)
	require.Len(t, samples, d.Nx)
	for i, v := range samples {
		assert.Equal(t, masked.At(i, 7, 4), v)
	}

	// y = z ≈ 0.707 最近的网格点为 (0.75, 0.75)，在圆柱外
	outside := GenerateProbes([]float64{45}, 1, d.R, d.L)[0]
	samples, err = SampleProbe(ds, g, outside, "SAR")
	require.NoError(t, err)
	for _, v := range samples {
		assert.True(t, math.IsNaN(v))
	}

	_, err = SampleProbe(ds, g, inside, "T")
	assert.Error(t, err)
}

func TestNearest(t *testing.T) {
	axis := []float64{-1, -0.5, 0, 0.5, 1}
	tcs := map[string]struct {
		v    float64
		want int
	}{
		"below": {-3, 0},
		"above": {3, 4},
		"exact": {0.5, 3},
		"left":  {0.2, 2},
		"right": {0.3, 3},
		"tie":   {0.25, 2},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, nearest(axis, tc.v))
		})
	}
}
