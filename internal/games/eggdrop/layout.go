package eggdrop

import (
	"github.com/vovakirdan/eggdrop/internal/config"
	platformcore "github.com/vovakirdan/eggdrop/internal/core"
)

// Screen requirements
const (
	hudRows    = 2
	minScreenW = 30
	minScreenH = 12
)

// layout maps the pixel board onto terminal cells.
type layout struct {
	screenW, screenH int
	inner            platformcore.Rect // Board area inside the border
	sx, sy           float64           // Board pixels per cell
	tooSmall         bool
}

func newLayout(cfg *config.EggdropConfig, screenW, screenH int) layout {
	l := layout{
		screenW:  screenW,
		screenH:  screenH,
		tooSmall: screenW < minScreenW || screenH < minScreenH,
	}
	l.inner = platformcore.NewRect(1, hudRows+1, max(screenW-2, 1), max(screenH-hudRows-2, 1))
	l.sx = cfg.Board.Width / float64(l.inner.W)
	l.sy = cfg.Board.Height / float64(l.inner.H)
	return l
}

// fits reports whether the layout was computed for a w×h screen.
func (l layout) fits(w, h int) bool {
	return l.screenW == w && l.screenH == h
}

// cell converts a board point to a screen cell.
func (l layout) cell(x, y float64) (int, int) {
	return l.inner.X + int(x/l.sx), l.inner.Y + int(y/l.sy)
}

// rect converts a board box to the screen cells it covers, at least one cell.
func (l layout) rect(b platformcore.Box) platformcore.Rect {
	x0, y0 := l.cell(b.X, b.Y)
	x1, y1 := l.cell(b.Right(), b.Bottom())
	return platformcore.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// boardX converts a screen column to the board x at the centre of that column.
func (l layout) boardX(col int) float64 {
	return (float64(col-l.inner.X) + 0.5) * l.sx
}

// visible reports whether a screen cell lies inside the board area.
func (l layout) visible(x, y int) bool {
	return l.inner.Contains(x, y)
}
