package client

import (
	"errors"
	"fmt"

	"hex-tactics/internal/client/hexview"
	"hex-tactics/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	sidebarWidth = 380
	boardMargin  = 20
	messageTicks = 180
)

// BattleScene drives one session: it maps mouse and keyboard input onto
// controller commands and draws the board with the active preview.
type BattleScene struct {
	game   *Game
	ctrl   *game.Controller
	layout hexview.Layout

	hovered    game.CellID
	hasHovered bool

	message      string
	messageTimer int

	endTurnBtn *Button
	copyBtn    *Button
}

// NewBattleScene creates the battle scene.
func NewBattleScene(g *Game) *BattleScene {
	s := &BattleScene{
		game:   g,
		layout: hexview.Fit(boardMargin, boardMargin, ScreenWidth-sidebarWidth-2*boardMargin, ScreenHeight-2*boardMargin),
	}
	s.endTurnBtn = &Button{
		X: ScreenWidth - sidebarWidth + 20, Y: ScreenHeight - 70, W: 160, H: 40,
		Text:    "End Turn (Space)",
		Primary: true,
		OnClick: s.endTurn,
	}
	s.copyBtn = &Button{
		X: ScreenWidth - 180, Y: ScreenHeight - 70, W: 160, H: 40,
		Text:    "Copy Report (C)",
		OnClick: s.copyReport,
	}
	return s
}

// SetController attaches a new session.
func (s *BattleScene) SetController(ctrl *game.Controller) {
	s.ctrl = ctrl
	s.hasHovered = false
	s.message = ""
}

func (s *BattleScene) OnEnter() {}

func (s *BattleScene) OnExit() {}

// Update handles input.
func (s *BattleScene) Update() error {
	if s.ctrl == nil {
		return nil
	}
	if s.messageTimer > 0 {
		s.messageTimer--
	}

	if s.endTurnBtn.Update() || s.copyBtn.Update() {
		return nil
	}

	s.updateHover()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.hasHovered {
		s.handleCellClick(s.hovered)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctrl.Cancel()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.report(s.ctrl.ArmAttack(0))
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.report(s.ctrl.ArmAttack(1))
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.report(s.ctrl.DisarmAttack())
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.endTurn()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.copyReport()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		cfg := s.game.Config()
		cfg.ShowHostileIntents = !cfg.ShowHostileIntents
	}

	if s.ctrl.Outcome() != game.OutcomeOngoing {
		s.game.EndSession(s.ctrl)
	}
	return nil
}

// updateHover forwards pointer movement to the controller only when the
// hovered cell changes.
func (s *BattleScene) updateHover() {
	mx, my := ebiten.CursorPosition()
	cell, ok := s.layout.CellAt(float64(mx), float64(my))
	if ok == s.hasHovered && cell == s.hovered {
		return
	}
	s.hovered, s.hasHovered = cell, ok
	if ok {
		s.ctrl.Hover(cell)
	} else {
		s.ctrl.ClearHover()
	}
}

// handleCellClick selects, moves or attacks depending on the mode.
func (s *BattleScene) handleCellClick(cell game.CellID) {
	switch s.ctrl.Mode() {
	case game.ModeIdle:
		s.report(s.ctrl.Select(cell))
	case game.ModeMovement:
		selected, _ := s.ctrl.Selected()
		if _, occupied := s.ctrl.UnitAt(cell); occupied && cell != selected {
			// Clicking another unit switches the selection.
			s.ctrl.Cancel()
			s.report(s.ctrl.Select(cell))
			return
		}
		s.report(s.ctrl.CommitMove(cell))
	case game.ModeAction:
		s.report(s.ctrl.CommitAction(cell))
	}
}

func (s *BattleScene) endTurn() {
	s.ctrl.NextTurn()
	s.flash(fmt.Sprintf("Turn %d", s.ctrl.Turn))
}

func (s *BattleScene) copyReport() {
	if CopyText(hexview.StatusReport(s.ctrl)) {
		s.flash("Report copied to clipboard")
	} else {
		s.flash("Clipboard unavailable")
	}
}

// report shows a rejected command in the status line.
func (s *BattleScene) report(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if errors.Is(err, game.ErrIllegalTransition) {
		msg = "Not allowed: " + msg
	}
	s.flash(msg)
}

func (s *BattleScene) flash(msg string) {
	s.message = msg
	s.messageTimer = messageTicks
}
