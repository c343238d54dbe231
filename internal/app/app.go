//go:build ebiten

// Package app adapts a recorded switch-toggle run to the ebiten.Game
// interface: each applied command becomes one row of a scrolling
// time-space diagram, played back at a fixed rate.
package app

import (
	"image/color"

	"bojlab/internal/core"
	"bojlab/internal/render"
	"bojlab/internal/switches"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game replays one problem instance command by command.
type Game struct {
	initial  *core.StateRow
	commands []switches.Command

	engine  *switches.Engine
	history *core.HistoryGrid
	next    int

	painter *render.GridPainter
	timer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	stepOnce bool
}

// New constructs a Game for the parsed problem input.
func New(in *switches.Input, scale, sps int) *Game {
	g := &Game{
		initial:  in.Row.Clone(),
		commands: in.Commands,
		painter:  render.NewGridPainter(in.Row.Len(), len(in.Commands)+1),
		timer:    core.NewFixedStep(sps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
	g.rewind()
	return g
}

// rewind restarts playback from the initial state.
func (g *Game) rewind() {
	row := g.initial.Clone()
	g.history = core.NewHistoryGrid(row.Len())
	g.history.AppendRow(row)
	g.engine = switches.New(row)
	g.engine.Record(g.history)
	g.next = 0
}

// Update handles per-frame input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rewind()
	}

	if g.next >= len(g.commands) {
		return nil
	}
	if (g.timer.ShouldStep() && !g.paused) || g.stepOnce {
		if err := g.engine.Apply(g.commands[g.next]); err != nil {
			return err
		}
		g.next++
		g.stepOnce = false
	}
	return nil
}

// Draw renders every history row recorded so far.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.history.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout reports the fixed window size for the full diagram.
func (g *Game) Layout(int, int) (int, int) {
	return g.initial.Len() * g.scale, (len(g.commands) + 1) * g.scale
}
