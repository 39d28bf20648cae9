package client

import (
	"image"
	"image/color"

	"hex-tactics/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Colors used in the UI
var (
	ColorBackground     = color.RGBA{20, 20, 30, 255}
	ColorPanel          = color.RGBA{30, 35, 50, 255}
	ColorPanelLight     = color.RGBA{45, 50, 70, 255}
	ColorPrimary        = color.RGBA{70, 130, 180, 255} // Steel blue
	ColorPrimaryHover   = color.RGBA{100, 160, 210, 255}
	ColorSecondary      = color.RGBA{60, 60, 80, 255}
	ColorSecondaryHover = color.RGBA{80, 80, 100, 255}
	ColorSuccess        = color.RGBA{50, 150, 80, 255}
	ColorDanger         = color.RGBA{180, 60, 60, 255}
	ColorWarning        = color.RGBA{230, 150, 40, 255}
	ColorText           = color.RGBA{220, 220, 230, 255}
	ColorTextMuted      = color.RGBA{140, 140, 160, 255}
	ColorBorder         = color.RGBA{60, 65, 80, 255}
)

// Side colors
var (
	ColorAlly    = color.RGBA{80, 100, 200, 255}
	ColorEnemy   = color.RGBA{200, 50, 50, 255}
	ColorReach   = color.RGBA{120, 200, 255, 70}
	ColorRoute   = color.RGBA{255, 255, 255, 220}
	ColorTarget  = color.RGBA{255, 90, 60, 255}
	ColorHovered = color.RGBA{255, 255, 255, 50}
)

// TileColors holds the base color per terrain kind; variants shade it.
var TileColors = map[game.TileKind]color.RGBA{
	game.TileGrassyPlain: {96, 150, 72, 255},
	game.TileForest:      {40, 96, 52, 255},
	game.TilePlain:       {170, 160, 100, 255},
}

// emptyImage is the white source texture for DrawTriangles.
var (
	emptyImage    = ebiten.NewImage(3, 3)
	emptySubImage = emptyImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	emptyImage.Fill(color.White)
}

// Button represents a clickable button.
type Button struct {
	X, Y, W, H int
	Text       string
	OnClick    func()
	Disabled   bool
	Primary    bool
	hovered    bool
}

// Update handles button input. It reports whether the button consumed a click.
func (b *Button) Update() bool {
	if b.Disabled {
		b.hovered = false
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	if b.Disabled {
		bgColor = ColorSecondary
	} else if b.Primary {
		if b.hovered {
			bgColor = ColorPrimaryHover
		} else {
			bgColor = ColorPrimary
		}
	} else {
		if b.hovered {
			bgColor = ColorSecondaryHover
		} else {
			bgColor = ColorSecondary
		}
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bgColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, ColorBorder, false)

	textColor := ColorText
	if b.Disabled {
		textColor = ColorTextMuted
	}
	DrawTextCentered(screen, b.Text, b.X+b.W/2, b.Y+b.H/2-6, textColor)
}

// DrawPanel draws a panel background.
func DrawPanel(screen *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), ColorPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, ColorBorder, false)
}

// DrawText draws text at a position.
func DrawText(screen *ebiten.Image, text string, x, y int, clr color.Color) {
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// DrawTextCentered draws text centered at a position.
func DrawTextCentered(screen *ebiten.Image, text string, x, y int, clr color.Color) {
	w := len(text) * 6
	ebitenutil.DebugPrintAt(screen, text, x-w/2, y)
}

// fillPolygon fills a convex polygon.
func fillPolygon(screen *ebiten.Image, pts [][2]float32, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, emptySubImage, nil)
}

// strokePolygon outlines a closed polygon.
func strokePolygon(screen *ebiten.Image, pts [][2]float32, width float32, clr color.Color) {
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, pts[i][0], pts[i][1], next[0], next[1], width, clr, true)
	}
}

// shade scales a color's brightness.
func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
