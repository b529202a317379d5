package calculator

// 推送给前端的截面数据
// 1. 横截面：x = L/2 处的 (y, z) 截面，即场的峰值所在截面
// 2. 纵截面：y = 0 附近的 (x, z) 截面
// 截面按行优先展平，Values[r*Cols+c]

type Section struct {
	Index  int       `json:"index"` // 截面所在的下标
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Values []float64 `json:"values"`
}

type Sections struct {
	Cross        Section `json:"cross"`        // rows = Ny, cols = Nz
	Longitudinal Section `json:"longitudinal"` // rows = Nx, cols = Nz
}

// CrossSection x 方向第 i 个切片
func CrossSection(a *Array3, i int) Section {
	s := a.Shape()
	section := Section{Index: i, Rows: s.Ny, Cols: s.Nz, Values: make([]float64, s.Ny*s.Nz)}
	for j := 0; j < s.Ny; j++ {
		for k := 0; k < s.Nz; k++ {
			section.Values[j*s.Nz+k] = a.At(i, j, k)
		}
	}
	return section
}

// LongitudinalSection y 方向第 j 个切片
func LongitudinalSection(a *Array3, j int) Section {
	s := a.Shape()
	section := Section{Index: j, Rows: s.Nx, Cols: s.Nz, Values: make([]float64, s.Nx*s.Nz)}
	for i := 0; i < s.Nx; i++ {
		for k := 0; k < s.Nz; k++ {
			section.Values[i*s.Nz+k] = a.At(i, j, k)
		}
	}
	return section
}

// BuildSections 取中间位置的两个截面
func BuildSections(masked *Array3) Sections {
	s := masked.Shape()
	return Sections{
		Cross:        CrossSection(masked, s.Nx/2),
		Longitudinal: LongitudinalSection(masked, s.Ny/2),
	}
}
