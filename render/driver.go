// Package render 描述交给外部渲染器的接口：体渲染的数据集、探针线段以及坐标轴/网格开关。
// 具体的窗口、相机、传递函数和着色由渲染器自己实现。
package render

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"sarfield/calculator"
)

var (
	ErrNoVolume        = errors.New("no volume added")
	ErrUnknownColorMap = errors.New("unknown color map")
	ErrUnknownScalars  = errors.New("unknown scalars")
)

// 体渲染参数
type VolumeOptions struct {
	Scalars  string `json:"scalars"`
	Opacity  string `json:"opacity"` // 不透明度传递函数，例如 linear
	ColorMap string `json:"color_map"`
	Shade    bool   `json:"shade"`
}

// 线段样式，颜色为 #rrggbb
type LineStyle struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

// Driver 外部渲染器
type Driver interface {
	// 添加体渲染数据集，数据集中的 NaN 视为完全透明
	AddVolume(ds *calculator.StructuredGrid, opts VolumeOptions) error
	// 添加叠加显示的线段
	AddLine(start, end r3.Vec, style LineStyle) error
	ShowAxes() error
	ShowGrid() error
	// 显示，阻塞直到渲染器关闭
	Show() error
}
