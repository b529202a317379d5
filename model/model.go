package model

// 圆柱区域参数
type Domain struct {
	L  float64 `json:"l"` // 长度，沿 x 方向
	R  float64 `json:"r"` // 半径
	Nx int     `json:"nx"`
	Ny int     `json:"ny"`
	Nz int     `json:"nz"`
}

// Size 网格点总数
func (d Domain) Size() int {
	return d.Nx * d.Ny * d.Nz
}

// 解析场参数
// field = T0 + mask * A * exp(-((y²+z²)/(R²·KR) + (x-L/2)²/(L²·KX)))
type FieldParams struct {
	T0 float64 `json:"t0"` // 基准温度
	A  float64 `json:"a"`  // 高斯增量幅值
	KR float64 `json:"kr"` // 径向衰减
	KX float64 `json:"kx"` // 轴向衰减
}

// 探针参数
type ProbeParams struct {
	Angles         []float64 `json:"angles"` // 单位：度
	RadiusFraction float64   `json:"radius_fraction"`
}

// 渲染参数
type RenderParams struct {
	Scalars    string `json:"scalars"`
	Opacity    string `json:"opacity"`
	ColorMap   string `json:"color_map"`
	Shade      bool   `json:"shade"`
	ProbeColor string `json:"probe_color"`
	ProbeWidth int    `json:"probe_width"`
	ShowAxes   bool   `json:"show_axes"`
	ShowGrid   bool   `json:"show_grid"`
}

type Config struct {
	Domain  Domain       `json:"domain"`
	Field   FieldParams  `json:"field"`
	Probes  ProbeParams  `json:"probes"`
	Render  RenderParams `json:"render"`
	Workers int          `json:"workers"`
	Addr    string       `json:"addr"`
}

// DefaultConfig 参考实例的配置
func DefaultConfig() Config {
	return Config{
		Domain: Domain{
			L:  DefaultLength,
			R:  DefaultRadius,
			Nx: DefaultN,
			Ny: DefaultN,
			Nz: DefaultN,
		},
		Field: FieldParams{
			T0: DefaultT0,
			A:  DefaultA,
			KR: DefaultKR,
			KX: DefaultKX,
		},
		Probes: ProbeParams{
			Angles:         DefaultAngles(),
			RadiusFraction: DefaultRadiusFraction,
		},
		Render: RenderParams{
			Scalars:    DefaultScalars,
			Opacity:    DefaultOpacity,
			ColorMap:   DefaultColorMap,
			Shade:      true,
			ProbeColor: DefaultProbeColor,
			ProbeWidth: DefaultProbeWidth,
			ShowAxes:   true,
			ShowGrid:   true,
		},
		Workers: DefaultWorkers,
		Addr:    DefaultAddr,
	}
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgRender    = "render"
	MsgConfig    = "config"
	MsgStop      = "stop"
	MsgScene     = "scene"
	MsgConfigSet = "configSet"
	MsgStopped   = "stopped"
	MsgError     = "error"
)
