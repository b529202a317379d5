package render

import (
	"math"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"
)

const colorMapStops = 16

// ColorMap 颜色表的十六进制色标，从低值到高值
func ColorMap(name string) ([]string, error) {
	var f func(t float64) (r, g, b float64)
	switch name {
	case "hot":
		// 黑 -> 红 -> 黄 -> 白
		f = func(t float64) (float64, float64, float64) {
			return clamp(t / 0.375), clamp((t - 0.375) / 0.375), clamp((t - 0.75) / 0.25)
		}
	case "gray":
		f = func(t float64) (float64, float64, float64) {
			return t, t, t
		}
	default:
		return nil, errors.Wrap(ErrUnknownColorMap, name)
	}

	stops := make([]string, colorMapStops)
	for n := range stops {
		r, g, b := f(float64(n) / (colorMapStops - 1))
		c, err := colors.RGB(toByte(r), toByte(g), toByte(b))
		if err != nil {
			return nil, errors.Wrap(err, "unable to get colour")
		}
		stops[n] = c.ToHEX().String()
	}
	return stops, nil
}

// ParseColor 校验并规范化颜色字符串（#rgb / #rrggbb）
func ParseColor(s string) (string, error) {
	c, err := colors.ParseHEX(s)
	if err != nil {
		return "", errors.Wrapf(err, "invalid colour %q", s)
	}
	return c.ToRGB().ToHEX().String(), nil
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
