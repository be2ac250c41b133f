package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/bigisle/internal/entity"
	"github.com/rocketscienceinc/bigisle/internal/usecase"
)

type uSession interface {
	Place(ctx context.Context, row, col int) (usecase.Scoreboard, error)
	Scoreboard() usecase.Scoreboard
	Board() *entity.Board
}

// Server runs the terminal front end of one session.
type Server struct {
	logger  *slog.Logger
	session uSession
	screen  tcell.Screen
	layout  Layout

	// pressed is true while the left button is held, so a drag places one tile.
	pressed bool
}

func New(logger *slog.Logger, session uSession, screen tcell.Screen, layout Layout) *Server {
	return &Server{
		logger:  logger.With("component", "terminal"),
		session: session,
		screen:  screen,
		layout:  layout,
	}
}

// Run - draws the game and processes input until the player quits or ctx is canceled.
// The screen must already be initialized; finalizing it is left to the caller.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.EnableMouse()
	that.screen.HideCursor()
	that.draw()

	stop := context.AfterFunc(ctx, func() {
		// wake PollEvent up
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	log.Info("terminal started")

	for {
		if ctx.Err() != nil {
			log.Info("context canceled, leaving")
			return nil
		}

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			log.Info("screen finalized, leaving")
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
			that.draw()
		case *tcell.EventKey:
			if isQuit(ev) {
				log.Info("quit requested")
				return nil
			}
		case *tcell.EventMouse:
			that.handleMouse(ctx, ev)
		}
	}
}

func (that *Server) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down || that.pressed {
		that.pressed = down
		return
	}
	that.pressed = true

	x, y := ev.Position()
	that.handleClick(ctx, x, y)
}

// handleClick places a tile under the pointer. Clicks outside the grid are ignored.
func (that *Server) handleClick(ctx context.Context, x, y int) {
	log := that.logger.With("method", "handleClick", "x", x, "y", y)

	row, col, ok := that.layout.CellAt(x, y)
	if !ok {
		return
	}

	if _, err := that.session.Place(ctx, row, col); err != nil {
		log.Debug("click declined", "error", err)
		return
	}

	that.draw()
}

func (that *Server) draw() {
	drawFrame(that.screen, that.layout, that.session.Board(), that.session.Scoreboard())
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	default:
		return false
	}
}
