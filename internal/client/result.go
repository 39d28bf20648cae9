package client

import (
	"fmt"

	"hex-tactics/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultScene shows the outcome of a finished session.
type ResultScene struct {
	game    *Game
	outcome game.Outcome
	turn    int

	newBtn  *Button
	quitBtn *Button
	quit    bool
}

// NewResultScene creates the result scene.
func NewResultScene(g *Game) *ResultScene {
	s := &ResultScene{game: g}
	s.newBtn = &Button{
		X: ScreenWidth/2 - 170, Y: ScreenHeight/2 + 40, W: 160, H: 40,
		Text:    "New Session (N)",
		Primary: true,
		OnClick: s.restart,
	}
	s.quitBtn = &Button{
		X: ScreenWidth/2 + 10, Y: ScreenHeight/2 + 40, W: 160, H: 40,
		Text:    "Quit (Esc)",
		OnClick: func() { s.quit = true },
	}
	return s
}

// SetResult sets what the scene reports.
func (s *ResultScene) SetResult(outcome game.Outcome, turn int) {
	s.outcome = outcome
	s.turn = turn
}

func (s *ResultScene) OnEnter() {}

func (s *ResultScene) OnExit() {}

func (s *ResultScene) Update() error {
	s.newBtn.Update()
	s.quitBtn.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.restart()
	}
	if s.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (s *ResultScene) Draw(screen *ebiten.Image) {
	w, h := 400, 180
	x, y := (ScreenWidth-w)/2, (ScreenHeight-h)/2-30
	DrawPanel(screen, x, y, w, h)

	title := "Victory"
	if s.outcome == game.OutcomeDefeat {
		title = "Defeat"
	}
	DrawTextCentered(screen, title, ScreenWidth/2, y+24, ColorText)
	DrawTextCentered(screen, fmt.Sprintf("after %d turns", s.turn), ScreenWidth/2, y+48, ColorTextMuted)

	s.newBtn.Draw(screen)
	s.quitBtn.Draw(screen)
}

func (s *ResultScene) restart() {
	if err := s.game.StartSession(); err != nil {
		s.quit = true
	}
}
