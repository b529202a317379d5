package calculator

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarfield/model"
)

func smallConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Domain.Nx, cfg.Domain.Ny, cfg.Domain.Nz = 9, 9, 9
	return cfg
}

func TestCalculatorStages(t *testing.T) {
	c, err := NewCalculator(smallConfig())
	require.NoError(t, err)

	stages := c.Stages()
	assert.ElementsMatch(t, []string{StageGrid, StageMask, StageField, StageAssemble, StageProbes, StageSummary, StageSamples}, stages)

	pos := make(map[string]int, len(stages))
	for n, s := range stages {
		pos[s] = n
	}
	deps := map[string][]string{
		StageMask:     {StageGrid},
		StageField:    {StageGrid, StageMask},
		StageAssemble: {StageField, StageMask},
		StageSummary:  {StageAssemble},
		StageSamples:  {StageGrid, StageAssemble, StageProbes},
	}
	for stage, before := range deps {
		for _, dep := range before {
			assert.Less(t, pos[dep], pos[stage], "%s must run before %s", dep, stage)
		}
	}
}

func TestCalculatorRun(t *testing.T) {
	cfg := smallConfig()
	c, err := NewCalculator(cfg)
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	require.NotNil(t, res.Dataset)
	assert.Equal(t, cfg.Domain.Size(), res.Dataset.NumPoints())
	assert.Len(t, res.Probes, len(cfg.Probes.Angles))

	// 每根探针都有沿 x 的采样，与探针顺序一致
	require.Len(t, res.Samples, len(res.Probes))
	for n, sample := range res.Samples {
		assert.Equal(t, res.Probes[n].AngleDeg, sample.AngleDeg)
		require.Len(t, sample.Points, cfg.Domain.Nx)
		require.Len(t, sample.Values, cfg.Domain.Nx)
		assert.Equal(t, res.Probes[n].Start, sample.Points[0])
		assert.Equal(t, res.Probes[n].End, sample.Points[cfg.Domain.Nx-1])
		want, err := SampleProbe(res.Dataset, res.Grid, res.Probes[n], cfg.Render.Scalars)
		require.NoError(t, err)
		sameValues(t, want, sample.Values)
	}
	// 0° 探针 y = 0.12 最近 y = 0.1125 (j = 7)，z = 0 在圆柱内
	for _, v := range res.Samples[0].Values {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, cfg.Field.T0)
	}

	masked, err := MaskField(res.Field, res.Mask)
	require.NoError(t, err)
	sameValues(t, masked.Flatten(ColumnMajor), res.Masked.Flatten(ColumnMajor))

	scalars, ok := res.Dataset.Scalars(cfg.Render.Scalars)
	require.True(t, ok)
	sameValues(t, scalars, res.Masked.Flatten(ColumnMajor))

	assert.Equal(t, res.Mask.Count(), res.Summary.Inside)
	assert.Equal(t, cfg.Field.T0+cfg.Field.A, res.Summary.Max)
	assert.Equal(t, cfg.Field.T0+cfg.Field.A, res.Masked.At(4, 4, 4))
	assert.GreaterOrEqual(t, res.Summary.Min, cfg.Field.T0)
	assert.True(t, math.IsNaN(res.Masked.At(0, 0, 0)))
}

func TestCalculatorRunErrors(t *testing.T) {
	tcs := map[string]struct {
		mutate func(cfg *model.Config)
		want   error
		stage  string
	}{
		"zero radius": {func(cfg *model.Config) { cfg.Domain.R = 0 }, ErrInvalidDomain, StageGrid},
		"nx one":      {func(cfg *model.Config) { cfg.Domain.Nx = 1 }, ErrInvalidResolution, StageGrid},
		"kr zero":     {func(cfg *model.Config) { cfg.Field.KR = 0 }, ErrInvalidField, StageField},
		"a negative":  {func(cfg *model.Config) { cfg.Field.A = -30 }, ErrInvalidField, StageField},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig()
			tc.mutate(&cfg)
			c, err := NewCalculator(cfg)
			require.NoError(t, err)
			res, err := c.Run()
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Contains(t, err.Error(), "stage "+tc.stage)
		})
	}
}

func TestAddStageUnknownDependency(t *testing.T) {
	c, err := NewCalculator(smallConfig())
	require.NoError(t, err)
	err = c.addStage("render", func(r *Result) error { return nil }, "display")
	assert.True(t, errors.Is(err, ErrUnknownStage))
}
