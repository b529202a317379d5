package calculator

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"sarfield/model"
)

// MaskField 掩码外的点替换为 NaN，渲染时视为完全透明
func MaskField(field *Array3, mask *Mask3) (*Array3, error) {
	if field.Shape() != mask.Shape() {
		return nil, shapeMismatch("mask field", mask.Shape(), field.Shape())
	}
	masked := NewArray3(field.Shape())
	for n, v := range field.data {
		if mask.data[n] {
			masked.data[n] = v
		} else {
			masked.data[n] = math.NaN()
		}
	}
	return masked, nil
}

// 结构网格：显式坐标 + 每个点上的标量属性
// 点的顺序为列优先（i 变化最快），与 PointData 中的标量逐一对应
type StructuredGrid struct {
	Dims      Shape
	X         []float64
	Y         []float64
	Z         []float64
	PointData map[string][]float64
}

// Assemble 掩码 + 场 -> 结构网格，标量以列优先展平后挂在 name 上
func Assemble(mesh Mesh, field *Array3, mask *Mask3, d model.Domain, name string) (*StructuredGrid, error) {
	want := shapeOf(d)
	checks := []struct {
		what string
		got  Shape
	}{
		{"x mesh", mesh.X.Shape()},
		{"y mesh", mesh.Y.Shape()},
		{"z mesh", mesh.Z.Shape()},
		{"field", field.Shape()},
		{"mask", mask.Shape()},
	}
	for _, c := range checks {
		if c.got != want {
			return nil, shapeMismatch("assemble: "+c.what, c.got, want)
		}
	}

	masked, err := MaskField(field, mask)
	if err != nil {
		return nil, err
	}
	ds := &StructuredGrid{
		Dims:      want,
		X:         mesh.X.Flatten(ColumnMajor),
		Y:         mesh.Y.Flatten(ColumnMajor),
		Z:         mesh.Z.Flatten(ColumnMajor),
		PointData: map[string][]float64{},
	}
	if err := ds.AddScalars(name, masked.Flatten(ColumnMajor)); err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *StructuredGrid) NumPoints() int {
	return s.Dims.Size()
}

// AddScalars 添加一个点属性，长度必须等于点数
func (s *StructuredGrid) AddScalars(name string, values []float64) error {
	if len(values) != s.NumPoints() {
		return errors.Wrapf(ErrShapeMismatch, "scalars %q: %d values for %d points", name, len(values), s.NumPoints())
	}
	s.PointData[name] = values
	return nil
}

func (s *StructuredGrid) Scalars(name string) ([]float64, bool) {
	v, ok := s.PointData[name]
	return v, ok
}

// Point 第 n 个点的坐标
func (s *StructuredGrid) Point(n int) r3.Vec {
	return r3.Vec{X: s.X[n], Y: s.Y[n], Z: s.Z[n]}
}

// Bounds 坐标范围
func (s *StructuredGrid) Bounds() (min, max r3.Vec) {
	min = r3.Vec{X: floats.Min(s.X), Y: floats.Min(s.Y), Z: floats.Min(s.Z)}
	max = r3.Vec{X: floats.Max(s.X), Y: floats.Max(s.Y), Z: floats.Max(s.Z)}
	return
}

// Validate 检查坐标与属性长度是否与维度一致
func (s *StructuredGrid) Validate() error {
	n := s.NumPoints()
	if len(s.X) != n || len(s.Y) != n || len(s.Z) != n {
		return errors.Wrapf(ErrShapeMismatch, "coordinates %d/%d/%d for %d points", len(s.X), len(s.Y), len(s.Z), n)
	}
	for name, values := range s.PointData {
		if len(values) != n {
			return errors.Wrapf(ErrShapeMismatch, "scalars %q: %d values for %d points", name, len(values), n)
		}
	}
	return nil
}
