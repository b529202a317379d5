package server

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"sarfield/calculator"
	"sarfield/render"
)

// JSON 无法表示 NaN，圆柱外的点在推送时不发送：
// 标量按连续的有效值分段，每段记录起始下标和取值，段与段之间的空缺即为 NaN

type Segment struct {
	Start  int       `json:"start"`
	Values []float64 `json:"values"`
}

type Encoded struct {
	Len      int       `json:"len"`
	Segments []Segment `json:"segments"`
}

func Encode(values []float64) Encoded {
	e := Encoded{Len: len(values), Segments: make([]Segment, 0)}
	index := 0
	for index < len(values) {
		if math.IsNaN(values[index]) {
			index++
			continue
		}
		start := index
		for index < len(values) && !math.IsNaN(values[index]) {
			index++
		}
		e.Segments = append(e.Segments, Segment{Start: start, Values: values[start:index]})
	}
	return e
}

func Decode(e Encoded) []float64 {
	res := make([]float64, e.Len)
	for n := range res {
		res[n] = math.NaN()
	}
	for _, s := range e.Segments {
		copy(res[s.Start:], s.Values)
	}
	return res
}

type EncodedSection struct {
	Index  int     `json:"index"`
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Values Encoded `json:"values"`
}

// 探针沿 x 的采样，圆柱外的点同样以空缺表示
type EncodedSample struct {
	Angle  float64  `json:"angle"`
	Points []r3.Vec `json:"points"`
	Values Encoded  `json:"values"`
}

type Dims struct {
	Nx int `json:"nx"`
	Ny int `json:"ny"`
	Nz int `json:"nz"`
}

type VolumeData struct {
	Dims    Dims                 `json:"dims"`
	Bounds  [2]r3.Vec            `json:"bounds"`
	X       []float64            `json:"x"`
	Y       []float64            `json:"y"`
	Z       []float64            `json:"z"`
	Scalars map[string]Encoded   `json:"scalars"`
	Options render.VolumeOptions `json:"options"`
	Colors  []string             `json:"colors"`
}

// 推送给前端的场景数据
type ScenePayload struct {
	Session  string              `json:"session"`
	Volumes  []VolumeData        `json:"volumes"`
	Lines    []render.Line       `json:"lines"`
	Axes     bool                `json:"axes"`
	Grid     bool                `json:"grid"`
	Summary  *calculator.Summary `json:"summary,omitempty"`
	Sections []EncodedSection    `json:"sections,omitempty"`
	Samples  []EncodedSample     `json:"samples,omitempty"`
}

func encodeSection(s calculator.Section) EncodedSection {
	return EncodedSection{Index: s.Index, Rows: s.Rows, Cols: s.Cols, Values: Encode(s.Values)}
}

func encodeSamples(samples []calculator.ProbeSample) []EncodedSample {
	out := make([]EncodedSample, 0, len(samples))
	for _, s := range samples {
		out = append(out, EncodedSample{Angle: s.AngleDeg, Points: s.Points, Values: Encode(s.Values)})
	}
	return out
}

func buildPayload(session string, s *render.Scene) *ScenePayload {
	p := &ScenePayload{
		Session: session,
		Volumes: make([]VolumeData, 0, len(s.Volumes)),
		Lines:   s.Lines,
		Axes:    s.Axes,
		Grid:    s.GridOn,
	}
	for _, v := range s.Volumes {
		ds := v.Dataset
		min, max := ds.Bounds()
		data := VolumeData{
			Dims:    Dims{Nx: ds.Dims.Nx, Ny: ds.Dims.Ny, Nz: ds.Dims.Nz},
			Bounds:  [2]r3.Vec{min, max},
			X:       ds.X,
			Y:       ds.Y,
			Z:       ds.Z,
			Scalars: make(map[string]Encoded, len(ds.PointData)),
			Options: v.Options,
			Colors:  v.Colors,
		}
		for name, values := range ds.PointData {
			data.Scalars[name] = Encode(values)
		}
		p.Volumes = append(p.Volumes, data)
	}
	return p
}
