package calculator

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// 探针：圆柱内平行于轴线的线段，从 x=0 到 x=L
// (y, z) = (r_s·cosθ, r_s·sinθ)，r_s = fraction·R
type Probe struct {
	AngleDeg float64 `json:"angle_deg"`
	Start    r3.Vec  `json:"start"`
	End      r3.Vec  `json:"end"`
}

// GenerateProbes 每个角度生成一根探针，顺序与输入一致，重复角度不去重
func GenerateProbes(angles []float64, fraction, r, l float64) []Probe {
	rs := fraction * r
	probes := make([]Probe, 0, len(angles))
	for _, angle := range angles {
		theta := angle * math.Pi / 180
		y, z := rs*math.Cos(theta), rs*math.Sin(theta)
		probes = append(probes, Probe{
			AngleDeg: angle,
			Start:    r3.Vec{X: 0, Y: y, Z: z},
			End:      r3.Vec{X: l, Y: y, Z: z},
		})
	}
	return probes
}

// Points 探针在给定轴向位置上的点
func (p Probe) Points(xs []float64) []r3.Vec {
	points := make([]r3.Vec, len(xs))
	for n, x := range xs {
		points[n] = r3.Vec{X: x, Y: p.Start.Y, Z: p.Start.Z}
	}
	return points
}

// SampleProbe 沿探针在每个 x_i 处读取最近网格点的标量值，最近点在圆柱外时为 NaN
func SampleProbe(ds *StructuredGrid, g *Grid, p Probe, name string) ([]float64, error) {
	values, ok := ds.Scalars(name)
	if !ok {
		return nil, errors.Errorf("scalars %q not found", name)
	}
	if ds.Dims != g.Shape() {
		return nil, shapeMismatch("sample probe", ds.Dims, g.Shape())
	}
	j := nearest(g.Axes.Y, p.Start.Y)
	k := nearest(g.Axes.Z, p.Start.Z)
	samples := make([]float64, ds.Dims.Nx)
	for i := range samples {
		samples[i] = values[ds.Dims.index(i, j, k)]
	}
	return samples, nil
}

// nearest 有序坐标轴上离 v 最近的下标
func nearest(axis []float64, v float64) int {
	n := sort.SearchFloat64s(axis, v)
	if n == 0 {
		return 0
	}
	if n == len(axis) {
		return len(axis) - 1
	}
	if v-axis[n-1] <= axis[n]-v {
		return n - 1
	}
	return n
}

// 一根探针上的采样结果，Points 与 Values 一一对应
type ProbeSample struct {
	AngleDeg float64
	Points   []r3.Vec
	Values   []float64
}

// SampleProbes 按探针顺序依次采样
func SampleProbes(ds *StructuredGrid, g *Grid, probes []Probe, name string) ([]ProbeSample, error) {
	samples := make([]ProbeSample, 0, len(probes))
	for _, p := range probes {
		values, err := SampleProbe(ds, g, p, name)
		if err != nil {
			return nil, errors.Wrapf(err, "probe %v", p.AngleDeg)
		}
		samples = append(samples, ProbeSample{
			AngleDeg: p.AngleDeg,
			Points:   p.Points(g.Axes.X),
			Values:   values,
		})
	}
	return samples, nil
}
