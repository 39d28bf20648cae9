// Command hextactics runs headless sessions and inspects the session journal.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("db", "", "session journal path (env HEX_TACTICS_DB)")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "hextactics",
		Short: "Hex Tactics command line utility",
		Long:  `Run headless sessions against the rules engine and inspect the session journal`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)
			return nil
		},
	}
	cmdRoot.AddCommand(cmdSimulate())
	cmdRoot.AddCommand(cmdSessions())
	cmdRoot.AddCommand(cmdHistory())
	cmdRoot.AddCommand(cmdBoard())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// journalPath resolves the --db flag, then HEX_TACTICS_DB, then the
// client's default journal when fallback is set.
func journalPath(cmd *cobra.Command, fallback bool) (string, error) {
	path, _ := cmd.Flags().GetString("db")
	if envPath := os.Getenv("HEX_TACTICS_DB"); envPath != "" && !cmd.Flags().Changed("db") {
		path = envPath
		log.Printf("Using HEX_TACTICS_DB from environment: %s", path)
	}
	if path != "" || !fallback {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "hex-tactics", "journal.db"), nil
}
