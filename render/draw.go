package render

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sarfield/calculator"
	"sarfield/model"
)

// Draw 把一次计算结果交给渲染器：
// 体渲染 -> 每根探针一条线段 -> 坐标轴 -> 网格 -> 显示
func Draw(d Driver, res *calculator.Result, p model.RenderParams) error {
	err := d.AddVolume(res.Dataset, VolumeOptions{
		Scalars:  p.Scalars,
		Opacity:  p.Opacity,
		ColorMap: p.ColorMap,
		Shade:    p.Shade,
	})
	if err != nil {
		return errors.Wrap(err, "unable to add volume")
	}

	style := LineStyle{Color: p.ProbeColor, Width: p.ProbeWidth}
	for _, probe := range res.Probes {
		if err := d.AddLine(probe.Start, probe.End, style); err != nil {
			return errors.Wrapf(err, "unable to add probe %v", probe.AngleDeg)
		}
	}

	if p.ShowAxes {
		if err := d.ShowAxes(); err != nil {
			return err
		}
	}
	if p.ShowGrid {
		if err := d.ShowGrid(); err != nil {
			return err
		}
	}
	log.WithFields(log.Fields{
		"scalars": p.Scalars,
		"probes":  len(res.Probes),
	}).Debug("渲染")
	return d.Show()
}
