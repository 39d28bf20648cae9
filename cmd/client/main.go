package main

import (
	"flag"
	"log"

	"hex-tactics/internal/client"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	profile := flag.String("profile", "", "Profile name for separate config (e.g., test, demo)")
	seed := flag.Int64("seed", 0, "Terrain seed for the first session (0 = from config or random)")
	dbPath := flag.String("db", "", "Session journal path (default: next to the config file)")
	noJournal := flag.Bool("no-journal", false, "Do not record sessions")
	flag.Parse()

	client.SetProfile(*profile)

	game, err := client.NewGame(client.Options{
		Seed:        *seed,
		JournalPath: *dbPath,
		NoJournal:   *noJournal,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.Close()

	cfg := game.Config()
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Hex Tactics")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
