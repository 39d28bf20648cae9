package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"hex-tactics/internal/database"
	"hex-tactics/internal/game"

	"github.com/spf13/cobra"
)

func cmdSimulate() *cobra.Command {
	var seed int64
	turns := 20
	showBoard := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().Int64Var(&seed, "seed", seed, "terrain seed (0 = random)")
		cmd.Flags().IntVar(&turns, "turns", turns, "maximum number of turns to play")
		cmd.Flags().BoolVar(&showBoard, "show-board", showBoard, "print the board after every turn")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "simulate",
		Short:        "play a headless session with the autopilot",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			if turns < 1 {
				return fmt.Errorf("--turns must be at least 1")
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			path, err := journalPath(cmd, false)
			if err != nil {
				return err
			}
			var recorder game.Recorder
			var journal *database.Journal
			if path != "" {
				db, err := database.New(path)
				if err != nil {
					return err
				}
				defer db.Close()
				journal = database.NewJournal(db, seed)
				recorder = journal
			}

			c, err := game.NewSession(game.DefaultSetup(), rand.New(rand.NewSource(seed)), recorder)
			if err != nil {
				return err
			}
			if !quiet {
				log.Printf("simulate: session %s seed %d\n", c.ID, seed)
			}

			out := io.Discard
			if showBoard {
				out = cmd.OutOrStdout()
			}
			outcome := runSimulation(c, turns, out)
			if journal != nil {
				journal.Finish(c)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s after %d turns\n", outcome, c.Turn)
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// runSimulation alternates autopilot turns with hostile turns until one
// side is gone or the turn limit is reached.
func runSimulation(c *game.Controller, turns int, out io.Writer) game.Outcome {
	for c.Turn <= turns && c.Outcome() == game.OutcomeOngoing {
		autoplay(c)
		if c.Outcome() != game.OutcomeOngoing {
			break
		}
		c.NextTurn()
		fmt.Fprintf(out, "turn %d\n%s\n", c.Turn, c.BoardString())
	}
	return c.Outcome()
}
