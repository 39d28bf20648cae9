package client

import (
	"fmt"
	"image/color"
	"math"

	"hex-tactics/internal/client/hexview"
	"hex-tactics/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the board, previews and the sidebar.
func (s *BattleScene) Draw(screen *ebiten.Image) {
	if s.ctrl == nil {
		return
	}
	s.drawBoard(screen)
	s.drawReachable(screen)
	s.drawUnits(screen)

	preview, ok := s.ctrl.CurrentPrevisualisation()
	if ok {
		s.drawPreview(screen, preview)
	}
	if s.game.Config().ShowHostileIntents {
		s.drawConsequences(screen, s.ctrl.StagedHostileConsequences(), ColorWarning)
	}
	s.drawSidebar(screen)
}

func (s *BattleScene) hexPoints(c game.CellID, inset float64) [][2]float32 {
	cx, cy := s.layout.Center(c)
	corners := s.layout.Corners(c)
	pts := make([][2]float32, len(corners))
	for i, p := range corners {
		// Pull each corner toward the centre by inset pixels.
		k := (s.layout.Size - inset) / s.layout.Size
		pts[i] = [2]float32{float32(cx + (p[0]-cx)*k), float32(cy + (p[1]-cy)*k)}
	}
	return pts
}

// drawBoard draws terrain tiles and the hovered cell.
func (s *BattleScene) drawBoard(screen *ebiten.Image) {
	for _, c := range game.AllCells() {
		tile := s.ctrl.TileAt(c)
		base := TileColors[tile.Kind]
		clr := shade(base, 0.85+0.1*float64(tile.Variant))
		pts := s.hexPoints(c, 1)
		fillPolygon(screen, pts, clr)
		strokePolygon(screen, pts, 1, ColorBorder)
	}
	if s.hasHovered {
		fillPolygon(screen, s.hexPoints(s.hovered, 1), ColorHovered)
	}
}

// drawReachable tints the cells the selected unit can move to.
func (s *BattleScene) drawReachable(screen *ebiten.Image) {
	if s.ctrl.Mode() != game.ModeMovement {
		return
	}
	for _, c := range s.ctrl.ReachableSet() {
		fillPolygon(screen, s.hexPoints(c, 3), ColorReach)
	}
	if sel, ok := s.ctrl.Selected(); ok {
		strokePolygon(screen, s.hexPoints(sel, 2), 3, ColorRoute)
	}
}

// drawUnits draws each unit as a disc with its initial and life.
func (s *BattleScene) drawUnits(screen *ebiten.Image) {
	r := float32(s.layout.Size * 0.55)
	for _, c := range s.ctrl.OccupiedCells() {
		u, _ := s.ctrl.UnitAt(c)
		cx, cy := s.layout.Center(c)
		clr := ColorAlly
		if u.IsHostile() {
			clr = ColorEnemy
		}
		if !u.ActionRemaining && u.RemainingMoves == 0 {
			clr = shade(clr, 0.6)
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, clr, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), r, 2, color.Black, true)

		label := u.Type.String()[:1]
		DrawTextCentered(screen, label, int(cx), int(cy)-12, ColorText)
		DrawTextCentered(screen, fmt.Sprintf("%d/%d", u.Life.Current, u.Life.Max), int(cx), int(cy), ColorText)
	}
}

// drawPreview draws the route in movement mode or the targets and
// consequences in action mode.
func (s *BattleScene) drawPreview(screen *ebiten.Image, p game.Previsualisation) {
	sel, _ := s.ctrl.Selected()
	switch p.Kind {
	case game.PreviewMovement:
		if !p.IsMovementSome() {
			return
		}
		px, py := s.layout.Center(sel)
		for _, step := range p.Route {
			x, y := s.layout.Center(step)
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 4, ColorRoute, true)
			vector.DrawFilledCircle(screen, float32(x), float32(y), 5, ColorRoute, true)
			px, py = x, y
		}
	case game.PreviewAction:
		for _, t := range p.Targets {
			strokePolygon(screen, s.hexPoints(t, 3), 2, ColorTarget)
		}
		s.drawConsequences(screen, p.Consequences, ColorTarget)
	}
}

// drawConsequences draws life changes, push arrows and ranged shots.
func (s *BattleScene) drawConsequences(screen *ebiten.Image, consequences []game.Consequence, clr color.RGBA) {
	for _, c := range consequences {
		cx, cy := s.layout.Center(c.Cell)
		switch c.Kind {
		case game.ConsequenceLifeChange:
			label := fmt.Sprintf("%+d", -c.Life.PendingLoss)
			if c.Life.WouldDie() {
				label = "KO"
			}
			x, y := int(cx+s.layout.Size*0.4), int(cy-s.layout.Size*0.8)
			vector.DrawFilledRect(screen, float32(x-2), float32(y-1), float32(len(label)*6+4), 16, clr, false)
			DrawText(screen, label, x, y, ColorText)
		case game.ConsequencePushArrow:
			tx, ty := s.layout.Step(c.Cell, c.Direction)
			// Arrow from the unit halfway to the next cell.
			ex, ey := cx+(tx-cx)*0.6, cy+(ty-cy)*0.6
			s.drawArrow(screen, cx, cy, ex, ey, clr)
			if c.Cancelled {
				mx, my := float32(ex), float32(ey)
				vector.StrokeLine(screen, mx-6, my-6, mx+6, my+6, 3, ColorDanger, true)
				vector.StrokeLine(screen, mx+6, my-6, mx-6, my+6, 3, ColorDanger, true)
			}
		case game.ConsequenceLongDistanceShoot:
			tx, ty := s.layout.Center(c.Target)
			vector.StrokeLine(screen, float32(cx), float32(cy), float32(tx), float32(ty), 2, clr, true)
		}
	}
}

func (s *BattleScene) drawArrow(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, clr, true)
	angle := math.Atan2(y1-y0, x1-x0)
	head := s.layout.Size * 0.3
	left := [2]float32{float32(x1 - head*math.Cos(angle-math.Pi/6)), float32(y1 - head*math.Sin(angle-math.Pi/6))}
	right := [2]float32{float32(x1 - head*math.Cos(angle+math.Pi/6)), float32(y1 - head*math.Sin(angle+math.Pi/6))}
	fillPolygon(screen, [][2]float32{{float32(x1), float32(y1)}, left, right}, clr)
}

// drawSidebar draws session info, the selected unit and key help.
func (s *BattleScene) drawSidebar(screen *ebiten.Image) {
	x := ScreenWidth - sidebarWidth
	DrawPanel(screen, x, 0, sidebarWidth, ScreenHeight)

	y := 16
	line := func(text string) {
		DrawText(screen, text, x+16, y, ColorText)
		y += 16
	}

	line(fmt.Sprintf("Turn %d    %s", s.ctrl.Turn, s.ctrl.Mode()))
	y += 8

	if u, ok := s.ctrl.SelectedUnit(); ok {
		line(hexview.UnitSummary(u))
		line(fmt.Sprintf("  1: %s", u.Attacks[0]))
		line(fmt.Sprintf("  2: %s", u.Attacks[1]))
		y += 8
		for _, l := range hexview.PreviewLines(s.ctrl) {
			line(l)
		}
	} else if s.hasHovered {
		if u, ok := s.ctrl.UnitAt(s.hovered); ok {
			line(hexview.UnitSummary(u))
		} else {
			line(fmt.Sprintf("%s %s", s.hovered, s.ctrl.TileAt(s.hovered).Kind))
		}
	}

	y = ScreenHeight - 250
	if intents := s.ctrl.HostileIntents(); len(intents) > 0 {
		line("Enemy intents:")
		for _, in := range intents {
			line(fmt.Sprintf("  %s %s -> %s", in.Origin, in.Action.Attack, in.Target))
		}
	}

	y = ScreenHeight - 150
	line("Click: select / move / attack")
	line("1 2: arm attack   M: back to move")
	line("Right click, Esc: cancel   I: intents")
	if s.messageTimer > 0 {
		y += 4
		line(s.message)
	}

	s.endTurnBtn.Draw(screen)
	s.copyBtn.Draw(screen)
}
