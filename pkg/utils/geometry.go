package utils

// Rect 以中心点和尺寸描述的轴对齐矩形
type Rect struct {
	CX, CY float64
	W, H   float64
}

// Left 返回左边界
func (r Rect) Left() float64 { return r.CX - r.W/2 }

// Right 返回右边界
func (r Rect) Right() float64 { return r.CX + r.W/2 }

// Top 返回上边界
func (r Rect) Top() float64 { return r.CY - r.H/2 }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.CY + r.H/2 }

// Overlaps 严格的 AABB 重叠检测
// 仅接触边缘不算重叠
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Bottom() > o.Top()
}

// Bounds 场地边界（世界坐标，Y 轴向下）
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Width 返回场地宽度
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height 返回场地高度
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Contains 检查点是否在边界内（含边界）
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// Outside 检查矩形是否完全离开边界
func (b Bounds) Outside(r Rect) bool {
	return r.Right() < b.Left || r.Left() > b.Right || r.Bottom() < b.Top || r.Top() > b.Bottom
}

// ClampX 把中心点 X 限制在边界内，使宽度为 w 的物体不越界
func (b Bounds) ClampX(x, w float64) float64 {
	return clamp(x, b.Left+w/2, b.Right-w/2)
}

// ClampY 把中心点 Y 限制在 [minY, b.Bottom] 内，使高度为 h 的物体不越界
func (b Bounds) ClampY(y, h, minY float64) float64 {
	return clamp(y, minY+h/2, b.Bottom-h/2)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
