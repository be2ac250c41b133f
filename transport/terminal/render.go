package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/bigisle/internal/entity"
	"github.com/rocketscienceinc/bigisle/internal/usecase"
)

const title = "Big Isle!!!"

const (
	redFill   = '█'
	blackFill = '▓'
	emptyFill = ' '
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	redStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	blackStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

func fillFor(cell entity.Cell) (rune, tcell.Style) {
	owner, ok := cell.Owner()
	if !ok {
		return emptyFill, tcell.StyleDefault
	}

	if owner == entity.PlayerRed {
		return redFill, redStyle
	}
	return blackFill, blackStyle
}

func drawFrame(screen tcell.Screen, layout Layout, board *entity.Board, score usecase.Scoreboard) {
	screen.Clear()

	drawText(screen, layout.OriginX, 0, textStyle, title)

	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			drawTile(screen, layout, row, col, board.At(row, col))
		}
	}

	for i, line := range score.Lines() {
		drawText(screen, layout.OriginX, layout.StatusY()+i, textStyle, line)
	}

	screen.Show()
}

func drawTile(screen tcell.Screen, layout Layout, row, col int, cell entity.Cell) {
	x0, y0 := layout.TileOrigin(row, col)
	x1, y1 := x0+layout.TileWidth-1, y0+layout.TileHeight-1

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, borderStyle)

	fill, style := fillFor(cell)
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			screen.SetContent(x, y, fill, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
