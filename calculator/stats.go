package calculator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// 掩码后场的统计信息，仅统计非 NaN 的点
type Summary struct {
	Inside  int     `json:"inside"`
	Outside int     `json:"outside"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
}

func Summarize(masked *Array3) Summary {
	defined := make([]float64, 0, len(masked.data))
	for _, v := range masked.data {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	s := Summary{
		Inside:  len(defined),
		Outside: len(masked.data) - len(defined),
	}
	if len(defined) == 0 {
		s.Min, s.Max, s.Mean = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Min = floats.Min(defined)
	s.Max = floats.Max(defined)
	s.Mean = floats.Sum(defined) / float64(len(defined))
	return s
}
