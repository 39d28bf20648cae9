package client

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"hex-tactics/internal/database"
	"hex-tactics/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Scene represents a game screen/state.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

// Options override the saved config from the command line.
type Options struct {
	Seed        int64
	JournalPath string
	NoJournal   bool
}

// Game is the main Ebitengine game struct.
type Game struct {
	config *Config

	db      *database.DB
	journal *database.Journal
	seed    int64

	// Current scene
	currentScene Scene
	nextScene    Scene

	// Scenes
	battleScene *BattleScene
	resultScene *ResultScene
}

// NewGame creates a new game instance and starts the first session.
func NewGame(opts Options) (*Game, error) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
	}

	InitClipboard()

	g := &Game{
		config: config,
		seed:   config.Seed,
	}
	if opts.Seed != 0 {
		g.seed = opts.Seed
	}

	if config.JournalEnabled && !opts.NoJournal {
		db, err := openJournal(config, opts.JournalPath)
		if err != nil {
			log.Printf("Journal disabled: %v", err)
		} else {
			log.Printf("Journal at %s", db.Path())
			g.db = db
		}
	}

	g.battleScene = NewBattleScene(g)
	g.resultScene = NewResultScene(g)

	if err := g.StartSession(); err != nil {
		return nil, err
	}
	g.currentScene = g.nextScene
	g.nextScene = nil
	g.currentScene.OnEnter()

	return g, nil
}

func openJournal(config *Config, path string) (*database.DB, error) {
	if path == "" {
		resolved, err := config.ResolveJournalPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return database.New(path)
}

// Config returns the loaded client config.
func (g *Game) Config() *Config {
	return g.config
}

// StartSession begins a fresh session on newly generated terrain and
// switches to the battle scene.
func (g *Game) StartSession() error {
	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		// A fixed seed replays the same terrain only for the first session.
		g.seed++
	}

	var recorder game.Recorder
	if g.db != nil {
		g.journal = database.NewJournal(g.db, seed)
		recorder = g.journal
	}

	ctrl, err := game.NewSession(game.DefaultSetup(), rand.New(rand.NewSource(seed)), recorder)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	log.Printf("Session %s started with seed %d", ctrl.ID, seed)

	g.battleScene.SetController(ctrl)
	g.SetScene(g.battleScene)
	return nil
}

// EndSession records the outcome and shows the result screen.
func (g *Game) EndSession(ctrl *game.Controller) {
	if g.journal != nil {
		g.journal.Finish(ctrl)
	}
	log.Printf("Session %s ended: %s on turn %d", ctrl.ID, ctrl.Outcome(), ctrl.Turn)
	g.resultScene.SetResult(ctrl.Outcome(), ctrl.Turn)
	g.SetScene(g.resultScene)
}

// Update handles game logic.
func (g *Game) Update() error {
	if g.nextScene != nil {
		if g.currentScene != nil {
			g.currentScene.OnExit()
		}
		g.currentScene = g.nextScene
		g.nextScene = nil
		g.currentScene.OnEnter()
	}

	if g.currentScene != nil {
		return g.currentScene.Update()
	}
	return nil
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	if g.currentScene != nil {
		g.currentScene.Draw(screen)
	}
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// SetScene transitions to a new scene.
func (g *Game) SetScene(scene Scene) {
	g.nextScene = scene
}

// Close saves the window geometry and closes the journal.
func (g *Game) Close() {
	w, h := ebiten.WindowSize()
	if w > 0 && h > 0 {
		g.config.WindowWidth, g.config.WindowHeight = w, h
	}
	if err := g.config.Save(); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	if g.db != nil {
		if err := g.db.Close(); err != nil {
			log.Printf("Failed to close journal: %v", err)
		}
	}
}
