package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"

	"sarfield/model"
)

// Synthesize 计算解析温度/SAR 场
// field = T0 + mask * A * exp(-((y²+z²)/(R²·KR) + (x-L/2)²/(L²·KX)))
// 掩码外的点恰好等于 T0，置为 NaN 在 MaskField 中完成。
func Synthesize(mesh Mesh, mask *Mask3, d model.Domain, p model.FieldParams, opts ...ExecOption) (*Array3, error) {
	if err := validateField(p); err != nil {
		return nil, err
	}
	shape := mesh.X.Shape()
	if mesh.Y.Shape() != shape {
		return nil, shapeMismatch("field: y mesh", mesh.Y.Shape(), shape)
	}
	if mesh.Z.Shape() != shape {
		return nil, shapeMismatch("field: z mesh", mesh.Z.Shape(), shape)
	}
	if mask.Shape() != shape {
		return nil, shapeMismatch("field: mask", mask.Shape(), shape)
	}

	field := NewArray3(shape)
	radial := d.R * d.R * p.KR
	axial := d.L * d.L * p.KX
	mid := d.L / 2

	e := newExecutor(opts...)
	cost, err := e.dispatchTask(shape.Nx, func(t task) error {
		for k := 0; k < shape.Nz; k++ {
			for j := 0; j < shape.Ny; j++ {
				for i := t.start; i < t.end; i++ {
					n := shape.index(i, j, k)
					field.data[n] = p.T0
					if !mask.data[n] {
						continue
					}
					x, y, z := mesh.X.data[n], mesh.Y.data[n], mesh.Z.data[n]
					field.data[n] += p.A * math.Exp(-((y*y+z*z)/radial + (x-mid)*(x-mid)/axial))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"workers": e.workers,
		"cost":    cost,
	}).Debug("场计算完成")
	return field, nil
}
