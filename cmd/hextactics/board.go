package main

import (
	"fmt"
	"log"
	"math/rand"

	"hex-tactics/internal/game"

	"github.com/spf13/cobra"
)

func cmdBoard() *cobra.Command {
	var seed int64 = 1
	showCells := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().Int64Var(&seed, "seed", seed, "terrain seed")
		cmd.Flags().BoolVar(&showCells, "cells", showCells, "list every cell with its neighbors")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "board",
		Short:        "print the opening board for a seed",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := game.NewSession(game.DefaultSetup(), rand.New(rand.NewSource(seed)), nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, c.BoardString())
			if showCells {
				for _, cell := range game.AllCells() {
					fmt.Fprintf(out, "%-10s %-12s %v\n", cell, c.TileAt(cell).Kind, cell.Neighbors())
				}
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
