package main

import (
	"fmt"
	"log"
	"text/tabwriter"

	"hex-tactics/internal/database"

	"github.com/spf13/cobra"
)

func openJournal(cmd *cobra.Command) (*database.DB, error) {
	path, err := journalPath(cmd, true)
	if err != nil {
		return nil, err
	}
	return database.New(path)
}

func cmdSessions() *cobra.Command {
	limit := 20
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().IntVar(&limit, "limit", limit, "number of sessions to list")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "sessions",
		Short:        "list journaled sessions, most recent first",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			sessions, err := db.ListSessions(limit)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSEED\tSTATUS\tTURN\tOUTCOME\tSTARTED")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\n", s.ID, s.Seed, s.Status, s.Turn, s.Outcome, s.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdHistory() *cobra.Command {
	var unitID string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&unitID, "unit", unitID, "only show events of this unit")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "history <session-id>",
		Short:        "print the event history of a session",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openJournal(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.GetSession(args[0]); err != nil {
				return err
			}
			var events []*database.HistoryEvent
			if unitID != "" {
				events, err = db.GetUnitHistory(args[0], unitID)
			} else {
				events, err = db.GetSessionHistory(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}
			for _, e := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "turn %-3d %-15s %s\n", e.Turn, e.EventType, e.Message)
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
