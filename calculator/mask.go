package calculator

// CylinderMask 圆柱截面掩码，y² + z² <= r² 时为 true（边界包含在内）
func CylinderMask(y, z *Array3, r float64) (*Mask3, error) {
	if y.Shape() != z.Shape() {
		return nil, shapeMismatch("mask: z mesh", z.Shape(), y.Shape())
	}
	mask := NewMask3(y.Shape())
	r2 := r * r
	for n := range mask.data {
		mask.data[n] = y.data[n]*y.data[n]+z.data[n]*z.data[n] <= r2
	}
	return mask, nil
}
