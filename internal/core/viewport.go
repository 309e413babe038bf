package core

// Viewport maps world coordinates (fixed-size, y pointing up) onto the
// terminal cell grid (y pointing down). Games pass their world-space
// rectangles through it when rendering so gameplay code never deals in
// cells.
type Viewport struct {
	screenW int
	screenH int
}

// NewViewport creates a viewport targeting a screen of the given cell size.
func NewViewport(screenW, screenH int) Viewport {
	if screenW < 1 {
		screenW = 1
	}
	if screenH < 1 {
		screenH = 1
	}
	return Viewport{screenW: screenW, screenH: screenH}
}

// Col converts a world x coordinate to a screen column.
func (vp Viewport) Col(x float64) int {
	return int(x / WorldW * float64(vp.screenW))
}

// Row converts a world y coordinate to a screen row, flipping the axis.
func (vp Viewport) Row(y float64) int {
	return int((WorldH - y) / WorldH * float64(vp.screenH))
}

// Point converts a world position to a screen cell.
func (vp Viewport) Point(p Vec2) (col, row int) {
	return vp.Col(p.X), vp.Row(p.Y)
}

// RectCells converts a world rectangle to a cell-space box (top-left
// column/row plus width/height). The result always covers at least one
// cell so small entities stay visible.
func (vp Viewport) RectCells(r Rect) (x, y, w, h int) {
	x = vp.Col(r.Left())
	y = vp.Row(r.Top())
	w = Max(1, vp.Col(r.Right())-x)
	h = Max(1, vp.Row(r.Bottom())-y)
	return x, y, w, h
}
