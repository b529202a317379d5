package render

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"sarfield/calculator"
)

type Volume struct {
	Dataset *calculator.StructuredGrid
	Options VolumeOptions
	Colors  []string // 颜色表色标
}

type Line struct {
	Start r3.Vec    `json:"start"`
	End   r3.Vec    `json:"end"`
	Style LineStyle `json:"style"`
}

// Scene 记录所有渲染请求，不做实际显示
type Scene struct {
	Volumes  []Volume
	Lines    []Line
	Axes     bool
	GridOn   bool
	Shown    bool
	ShowHook func(s *Scene) error // Show 时调用
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) AddVolume(ds *calculator.StructuredGrid, opts VolumeOptions) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	if _, ok := ds.Scalars(opts.Scalars); !ok {
		return errors.Wrap(ErrUnknownScalars, opts.Scalars)
	}
	stops, err := ColorMap(opts.ColorMap)
	if err != nil {
		return err
	}
	s.Volumes = append(s.Volumes, Volume{Dataset: ds, Options: opts, Colors: stops})
	return nil
}

func (s *Scene) AddLine(start, end r3.Vec, style LineStyle) error {
	color, err := ParseColor(style.Color)
	if err != nil {
		return err
	}
	style.Color = color
	s.Lines = append(s.Lines, Line{Start: start, End: end, Style: style})
	return nil
}

func (s *Scene) ShowAxes() error {
	s.Axes = true
	return nil
}

func (s *Scene) ShowGrid() error {
	s.GridOn = true
	return nil
}

func (s *Scene) Show() error {
	if len(s.Volumes) == 0 {
		return ErrNoVolume
	}
	if s.ShowHook != nil {
		if err := s.ShowHook(s); err != nil {
			return err
		}
	}
	s.Shown = true
	return nil
}
