package game

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deepfloor/internal/telemetry"
	"github.com/samdwyer/deepfloor/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	turns    int
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or Stop is called.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	initCtx, initSpan := tracer.Start(ctx, "game.init")

	session, err := NewSession(initCtx, g.cfg, g.cfg.NewRand())
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.session = session
	initSpan.End()

	// First frame: nothing has been seen yet.
	g.session.UpdateVisibility(ctx)
	g.render()

	// Each tick: input, then visibility, then render.
	for g.running {
		if !g.handleInput(ctx) {
			continue
		}
		g.session.UpdateVisibility(ctx)
		g.render()
	}

	slog.InfoContext(ctx, "game over", "turns", g.turns)
	return nil
}

// Stop asks a running loop to exit. Safe to call from any goroutine.
func (g *Game) Stop() {
	g.screen.Interrupt()
}

func (g *Game) render() {
	g.session.BeginRender()
	g.renderer.Render(ui.View{
		Grid:     g.session.Grid,
		Registry: g.session.Registry,
		Focus:    g.session.PlayerPosition(),
		Status:   g.session.Status(),
	})
}

// handleInput processes a single input event and reports whether the
// frame needs redrawing.
func (g *Game) handleInput(ctx context.Context) bool {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
		return true
	case *tcell.EventInterrupt:
		g.running = false
	case nil:
		// Screen finalized
		g.running = false
	}
	return false
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return false
	case tcell.KeyUp:
		return g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		return g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		return g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		return g.tryMove(ctx, 1, 0)
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			g.running = false
			return false
		}
		if ev.Rune() == 'r' {
			g.session.Restart(ctx)
			g.turns = 0
			return true
		}
		if d, ok := runeDirections[ev.Rune()]; ok {
			return g.tryMove(ctx, d[0], d[1])
		}
	}
	return false
}

// runeDirections maps vi keys to movement deltas.
var runeDirections = map[rune][2]int{
	'h': {-1, 0},
	'j': {0, 1},
	'k': {0, -1},
	'l': {1, 0},
	'y': {-1, -1},
	'u': {1, -1},
	'b': {-1, 1},
	'n': {1, 1},
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(ctx context.Context, dx, dy int) bool {
	moved := g.session.MovePlayer(dx, dy)
	if moved {
		g.turns++
	}

	_, span := telemetry.Tracer("game").Start(ctx, "player.move")
	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Bool("move.allowed", moved),
		attribute.String("game.phase", g.session.Phase().String()),
	)
	span.End()

	return moved
}
