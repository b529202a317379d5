package calculator

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"sarfield/model"
)

// LoadConfig 读取 ini 配置文件，缺省项使用参考实例的默认值
func LoadConfig(path string) (model.Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return model.DefaultConfig(), errors.Wrapf(err, "load config %s", path)
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) model.Config {
	def := model.DefaultConfig()
	domain := file.Section("domain")
	field := file.Section("field")
	probe := file.Section("probe")
	render := file.Section("render")

	cfg := model.Config{
		Domain: model.Domain{
			L:  domain.Key("L").MustFloat64(def.Domain.L),
			R:  domain.Key("R").MustFloat64(def.Domain.R),
			Nx: domain.Key("Nx").MustInt(def.Domain.Nx),
			Ny: domain.Key("Ny").MustInt(def.Domain.Ny),
			Nz: domain.Key("Nz").MustInt(def.Domain.Nz),
		},
		Field: model.FieldParams{
			T0: field.Key("T0").MustFloat64(def.Field.T0),
			A:  field.Key("A").MustFloat64(def.Field.A),
			KR: field.Key("KR").MustFloat64(def.Field.KR),
			KX: field.Key("KX").MustFloat64(def.Field.KX),
		},
		Probes: model.ProbeParams{
			Angles:         def.Probes.Angles,
			RadiusFraction: probe.Key("RadiusFraction").MustFloat64(def.Probes.RadiusFraction),
		},
		Render: model.RenderParams{
			Scalars:    render.Key("Scalars").MustString(def.Render.Scalars),
			Opacity:    render.Key("Opacity").MustString(def.Render.Opacity),
			ColorMap:   render.Key("ColorMap").MustString(def.Render.ColorMap),
			Shade:      render.Key("Shade").MustBool(def.Render.Shade),
			ProbeColor: render.Key("ProbeColor").MustString(def.Render.ProbeColor),
			ProbeWidth: render.Key("ProbeWidth").MustInt(def.Render.ProbeWidth),
			ShowAxes:   render.Key("ShowAxes").MustBool(def.Render.ShowAxes),
			ShowGrid:   render.Key("ShowGrid").MustBool(def.Render.ShowGrid),
		},
		Workers: file.Section("calculator").Key("Workers").MustInt(def.Workers),
		Addr:    file.Section("server").Key("Addr").MustString(def.Addr),
	}
	if probe.HasKey("Angles") {
		angles, err := probe.Key("Angles").StrictFloat64s(",")
		switch {
		case err != nil:
			log.WithField("angles", probe.Key("Angles").String()).Warn("探针角度无法解析，使用默认值: ", err)
		case len(angles) > 0:
			cfg.Probes.Angles = angles
		}
	}

	log.WithFields(log.Fields{
		"L":       cfg.Domain.L,
		"R":       cfg.Domain.R,
		"Nx":      cfg.Domain.Nx,
		"Ny":      cfg.Domain.Ny,
		"Nz":      cfg.Domain.Nz,
		"T0":      cfg.Field.T0,
		"A":       cfg.Field.A,
		"angles":  cfg.Probes.Angles,
		"workers": cfg.Workers,
	}).Info("加载配置")
	return cfg
}
