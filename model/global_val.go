package model

// 参考实例的默认参数
// 1. 圆柱长度 L = 0.30 m，半径 R = 0.15 m
// 2. 三个方向的网格数均为 80
// 3. 场的基准温度 T0，高斯增量幅值 A，径向/轴向衰减系数 KR、KX
// 4. 探针所在半径为 0.8R

const (
	DefaultLength = 0.30
	DefaultRadius = 0.15
	DefaultN      = 80

	DefaultT0 = 25.0
	DefaultA  = 30.0
	DefaultKR = 0.2
	DefaultKX = 0.1

	DefaultRadiusFraction = 0.8

	DefaultScalars    = "SAR"
	DefaultOpacity    = "linear"
	DefaultColorMap   = "hot"
	DefaultProbeColor = "#0000ff"
	DefaultProbeWidth = 3

	DefaultWorkers = 1
	DefaultAddr    = ":9000"
)

// DefaultAngles 探针的角度，单位为度
func DefaultAngles() []float64 {
	return []float64{0, 45, 80, 135, 180}
}
