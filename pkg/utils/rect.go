package utils

// Rect 轴对齐矩形（局部坐标系，原点在左上角，Y 轴向下）
//
// 用于调色板点击区域、按钮区域和对话框区域的命中测试。
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect 创建矩形
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains 判断点 (x, y) 是否在矩形内
//
// 采用半开区间：左/上边界包含，右/下边界不包含。
// 即 X <= x < X+Width 且 Y <= y < Y+Height。
// 宽或高为 0 的矩形不包含任何点。
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Origin 返回矩形左上角坐标
func (r Rect) Origin() (x, y float64) {
	return r.X, r.Y
}

// Right 返回矩形右边界 X 坐标（不包含）
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom 返回矩形下边界 Y 坐标（不包含）
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// AnyContains 判断一组矩形中是否有任意一个包含点 (x, y)
func AnyContains(rects []Rect, x, y float64) bool {
	for _, r := range rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
