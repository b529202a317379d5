package calculator

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"sarfield/model"
)

// 坐标轴
// X: [0, L]，Y、Z: [-R, R]，均包含端点
type Axes struct {
	X []float64
	Y []float64
	Z []float64
}

// 坐标网格，形状均为 (Nx, Ny, Nz)
// X[i,j,k] = x_i, Y[i,j,k] = y_j, Z[i,j,k] = z_k
type Mesh struct {
	X *Array3
	Y *Array3
	Z *Array3
}

func (m Mesh) Shape() Shape {
	return m.X.Shape()
}

type Grid struct {
	Domain model.Domain
	Axes   Axes
	Mesh   Mesh
}

func (g *Grid) Shape() Shape {
	return shapeOf(g.Domain)
}

// Spacing 三个方向的步长
func (g *Grid) Spacing() (dx, dy, dz float64) {
	return g.Axes.X[1] - g.Axes.X[0], g.Axes.Y[1] - g.Axes.Y[0], g.Axes.Z[1] - g.Axes.Z[0]
}

func shapeOf(d model.Domain) Shape {
	return Shape{Nx: d.Nx, Ny: d.Ny, Nz: d.Nz}
}

func validateDomain(d model.Domain) error {
	if !(d.L > 0) || !(d.R > 0) || math.IsInf(d.L, 0) || math.IsInf(d.R, 0) {
		return errors.Wrapf(ErrInvalidDomain, "L=%v R=%v", d.L, d.R)
	}
	if d.Nx < 2 || d.Ny < 2 || d.Nz < 2 {
		return errors.Wrapf(ErrInvalidResolution, "Nx=%d Ny=%d Nz=%d", d.Nx, d.Ny, d.Nz)
	}
	return nil
}

// validateField KR、KX 为 0 时轴线或中截面上出现 0/0，场内会混入 NaN
func validateField(p model.FieldParams) error {
	for _, v := range []float64{p.T0, p.A, p.KR, p.KX} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidField, "T0=%v A=%v KR=%v KX=%v", p.T0, p.A, p.KR, p.KX)
		}
	}
	if p.A < 0 || p.KR <= 0 || p.KX <= 0 {
		return errors.Wrapf(ErrInvalidField, "A=%v KR=%v KX=%v", p.A, p.KR, p.KX)
	}
	return nil
}

// Linspace n 个在 [lo, hi] 上均匀分布的点，末端点精确等于 hi
// n <= 0 时为空，n == 1 时只有 lo
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	axis := floats.Span(make([]float64, n), lo, hi)
	axis[n-1] = hi
	return axis
}

// BuildGrid 构建坐标轴和坐标网格
func BuildGrid(d model.Domain) (*Grid, error) {
	if err := validateDomain(d); err != nil {
		return nil, err
	}
	axes := Axes{
		X: Linspace(0, d.L, d.Nx),
		Y: Linspace(-d.R, d.R, d.Ny),
		Z: Linspace(-d.R, d.R, d.Nz),
	}
	return &Grid{
		Domain: d,
		Axes:   axes,
		Mesh:   MeshGrid(axes),
	}, nil
}

// MeshGrid 按下标顺序展开坐标轴 (ij)
func MeshGrid(axes Axes) Mesh {
	shape := Shape{Nx: len(axes.X), Ny: len(axes.Y), Nz: len(axes.Z)}
	mesh := Mesh{
		X: NewArray3(shape),
		Y: NewArray3(shape),
		Z: NewArray3(shape),
	}
	for k := 0; k < shape.Nz; k++ {
		for j := 0; j < shape.Ny; j++ {
			for i := 0; i < shape.Nx; i++ {
				n := shape.index(i, j, k)
				mesh.X.data[n] = axes.X[i]
				mesh.Y.data[n] = axes.Y[j]
				mesh.Z.data[n] = axes.Z[k]
			}
		}
	}
	return mesh
}
