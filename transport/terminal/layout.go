package terminal

const (
	minTileSide = 3

	gridOriginX = 2
	gridOriginY = 2
)

// Layout places the board on the terminal. All values are in terminal cells.
type Layout struct {
	OriginX    int
	OriginY    int
	TileWidth  int
	TileHeight int
	Size       int
}

// NewLayout - tiles smaller than 3x3 have no room for a fill and are widened.
func NewLayout(size, tileWidth, tileHeight int) Layout {
	return Layout{
		OriginX:    gridOriginX,
		OriginY:    gridOriginY,
		TileWidth:  max(tileWidth, minTileSide),
		TileHeight: max(tileHeight, minTileSide),
		Size:       size,
	}
}

func (that Layout) Width() int {
	return that.Size * that.TileWidth
}

func (that Layout) Height() int {
	return that.Size * that.TileHeight
}

// CellAt translates a terminal position into grid coordinates. ok is false outside the grid.
func (that Layout) CellAt(x, y int) (row, col int, ok bool) {
	gx, gy := x-that.OriginX, y-that.OriginY
	if gx < 0 || gy < 0 || gx >= that.Width() || gy >= that.Height() {
		return 0, 0, false
	}

	return gy / that.TileHeight, gx / that.TileWidth, true
}

// TileOrigin returns the top-left terminal position of a tile.
func (that Layout) TileOrigin(row, col int) (x, y int) {
	return that.OriginX + col*that.TileWidth, that.OriginY + row*that.TileHeight
}

// StatusY is the first terminal row below the grid.
func (that Layout) StatusY() int {
	return that.OriginY + that.Height() + 1
}
