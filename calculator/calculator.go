package calculator

import (
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sarfield/model"
)

// 计算流程的各个阶段
// grid -> {mask, field} -> assemble -> summary，probes 独立
// {assemble, probes} -> samples
const (
	StageGrid     = "grid"
	StageMask     = "mask"
	StageField    = "field"
	StageAssemble = "assemble"
	StageProbes   = "probes"
	StageSummary  = "summary"
	StageSamples  = "samples"
)

// 一次计算的全部结果，计算完成后不再修改
type Result struct {
	Grid     *Grid
	Mask     *Mask3
	Field    *Array3
	Masked   *Array3
	Dataset  *StructuredGrid
	Probes   []Probe
	Samples  []ProbeSample
	Sections Sections
	Summary  Summary
}

type stageFunc func(r *Result) error

type Calculator struct {
	cfg    model.Config
	stages map[string]stageFunc
	g      graph.Graph[string, string]
	order  []string
}

// NewCalculator 根据配置构建计算阶段的有向无环图
func NewCalculator(cfg model.Config) (*Calculator, error) {
	c := &Calculator{
		cfg:    cfg,
		stages: make(map[string]stageFunc),
		g:      graph.New(graph.StringHash, graph.Directed(), graph.Acyclic(), graph.PreventCycles()),
	}

	steps := []struct {
		name string
		deps []string
		f    stageFunc
	}{
		{StageGrid, nil, c.buildGrid},
		{StageMask, []string{StageGrid}, c.buildMask},
		{StageField, []string{StageGrid, StageMask}, c.synthesize},
		{StageAssemble, []string{StageGrid, StageMask, StageField}, c.assemble},
		{StageProbes, nil, c.generateProbes},
		{StageSummary, []string{StageAssemble}, c.summarize},
		{StageSamples, []string{StageGrid, StageAssemble, StageProbes}, c.sampleProbes},
	}
	for _, s := range steps {
		if err := c.addStage(s.name, s.f, s.deps...); err != nil {
			return nil, err
		}
	}

	order, err := graph.StableTopologicalSort(c.g, func(a, b string) bool {
		return a < b
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to order stages")
	}
	c.order = order
	return c, nil
}

func (c *Calculator) addStage(name string, f stageFunc, deps ...string) error {
	if err := c.g.AddVertex(name); err != nil {
		return errors.Wrapf(err, "unable to add stage %s", name)
	}
	c.stages[name] = f
	for _, dep := range deps {
		if _, ok := c.stages[dep]; !ok {
			return errors.Wrapf(ErrUnknownStage, "%s depends on %s", name, dep)
		}
		if err := c.g.AddEdge(dep, name); err != nil {
			return errors.Wrapf(err, "unable to link %s to %s", dep, name)
		}
	}
	return nil
}

// Stages 阶段的执行顺序
func (c *Calculator) Stages() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Run 按拓扑顺序执行一次全部阶段，遇到第一个错误立即返回
func (c *Calculator) Run() (*Result, error) {
	start := time.Now()
	res := &Result{}
	for _, name := range c.order {
		stageStart := time.Now()
		if err := c.stages[name](res); err != nil {
			return nil, errors.Wrapf(err, "stage %s", name)
		}
		log.WithFields(log.Fields{
			"stage": name,
			"cost":  time.Since(stageStart),
		}).Debug("阶段完成")
	}
	log.WithFields(log.Fields{
		"points":  res.Dataset.NumPoints(),
		"inside":  res.Summary.Inside,
		"max":     res.Summary.Max,
		"probes":  len(res.Probes),
		"elapsed": time.Since(start),
	}).Info("计算完成")
	return res, nil
}

func (c *Calculator) buildGrid(r *Result) error {
	g, err := BuildGrid(c.cfg.Domain)
	if err != nil {
		return err
	}
	r.Grid = g
	return nil
}

func (c *Calculator) buildMask(r *Result) error {
	mask, err := CylinderMask(r.Grid.Mesh.Y, r.Grid.Mesh.Z, c.cfg.Domain.R)
	if err != nil {
		return err
	}
	r.Mask = mask
	return nil
}

func (c *Calculator) synthesize(r *Result) error {
	field, err := Synthesize(r.Grid.Mesh, r.Mask, c.cfg.Domain, c.cfg.Field, Workers(c.cfg.Workers))
	if err != nil {
		return err
	}
	r.Field = field
	return nil
}

func (c *Calculator) assemble(r *Result) error {
	ds, err := Assemble(r.Grid.Mesh, r.Field, r.Mask, c.cfg.Domain, c.cfg.Render.Scalars)
	if err != nil {
		return err
	}
	scalars, _ := ds.Scalars(c.cfg.Render.Scalars)
	masked, err := Reshape(scalars, ds.Dims, ColumnMajor)
	if err != nil {
		return err
	}
	r.Dataset = ds
	r.Masked = masked
	return nil
}

func (c *Calculator) generateProbes(r *Result) error {
	r.Probes = GenerateProbes(c.cfg.Probes.Angles, c.cfg.Probes.RadiusFraction, c.cfg.Domain.R, c.cfg.Domain.L)
	return nil
}

func (c *Calculator) summarize(r *Result) error {
	r.Summary = Summarize(r.Masked)
	r.Sections = BuildSections(r.Masked)
	return nil
}

func (c *Calculator) sampleProbes(r *Result) error {
	samples, err := SampleProbes(r.Dataset, r.Grid, r.Probes, c.cfg.Render.Scalars)
	if err != nil {
		return err
	}
	r.Samples = samples
	return nil
}
