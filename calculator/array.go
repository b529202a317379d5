package calculator

import (
	"fmt"

	"github.com/pkg/errors"
)

// 三维数组的存储顺序
// 采用列优先（第一个下标变化最快），与结构网格的点序一致：
// index = i + Nx*(j + Ny*k)

type Order int

const (
	ColumnMajor Order = iota // 第一个下标变化最快
	RowMajor                 // 最后一个下标变化最快
)

func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "F"
	case RowMajor:
		return "C"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

type Shape struct {
	Nx, Ny, Nz int
}

func (s Shape) Size() int {
	return s.Nx * s.Ny * s.Nz
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Nx, s.Ny, s.Nz)
}

// index 列优先下标
func (s Shape) index(i, j, k int) int {
	return i + s.Nx*(j+s.Ny*k)
}

// offset 按指定顺序计算 (i, j, k) 在展平数组中的位置
func (s Shape) offset(i, j, k int, order Order) int {
	if order == RowMajor {
		return k + s.Nz*(j+s.Ny*i)
	}
	return s.index(i, j, k)
}

// Unravel 列优先位置 n 对应的 (i, j, k)
func (s Shape) Unravel(n int) (i, j, k int) {
	i = n % s.Nx
	n /= s.Nx
	j = n % s.Ny
	k = n / s.Ny
	return
}

// 浮点三维数组
type Array3 struct {
	shape Shape
	data  []float64
}

func NewArray3(shape Shape) *Array3 {
	return &Array3{
		shape: shape,
		data:  make([]float64, shape.Size()),
	}
}

// Full 所有元素均为 v 的数组
func Full(shape Shape, v float64) *Array3 {
	a := NewArray3(shape)
	for n := range a.data {
		a.data[n] = v
	}
	return a
}

func (a *Array3) Shape() Shape {
	return a.shape
}

func (a *Array3) At(i, j, k int) float64 {
	return a.data[a.shape.index(i, j, k)]
}

func (a *Array3) Set(i, j, k int, v float64) {
	a.data[a.shape.index(i, j, k)] = v
}

// Flatten 按指定顺序展平，返回新分配的切片
func (a *Array3) Flatten(order Order) []float64 {
	out := make([]float64, len(a.data))
	if order == ColumnMajor {
		copy(out, a.data)
		return out
	}
	s := a.shape
	for k := 0; k < s.Nz; k++ {
		for j := 0; j < s.Ny; j++ {
			for i := 0; i < s.Nx; i++ {
				out[s.offset(i, j, k, RowMajor)] = a.data[s.index(i, j, k)]
			}
		}
	}
	return out
}

// Reshape 将展平数据按指定顺序还原为三维数组
func Reshape(data []float64, shape Shape, order Order) (*Array3, error) {
	if len(data) != shape.Size() {
		return nil, errors.Wrapf(ErrShapeMismatch, "reshape %d values into %v", len(data), shape)
	}
	a := NewArray3(shape)
	if order == ColumnMajor {
		copy(a.data, data)
		return a, nil
	}
	for k := 0; k < shape.Nz; k++ {
		for j := 0; j < shape.Ny; j++ {
			for i := 0; i < shape.Nx; i++ {
				a.data[shape.index(i, j, k)] = data[shape.offset(i, j, k, RowMajor)]
			}
		}
	}
	return a, nil
}

// 布尔三维数组，存储顺序与 Array3 一致
type Mask3 struct {
	shape Shape
	data  []bool
}

func NewMask3(shape Shape) *Mask3 {
	return &Mask3{
		shape: shape,
		data:  make([]bool, shape.Size()),
	}
}

func (m *Mask3) Shape() Shape {
	return m.shape
}

func (m *Mask3) At(i, j, k int) bool {
	return m.data[m.shape.index(i, j, k)]
}

func (m *Mask3) Set(i, j, k int, v bool) {
	m.data[m.shape.index(i, j, k)] = v
}

// Count 为 true 的元素个数
func (m *Mask3) Count() int {
	count := 0
	for _, v := range m.data {
		if v {
			count++
		}
	}
	return count
}
