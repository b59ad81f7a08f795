package cmd

import (
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slam",
	Short: "Answer evaluation backend for math practice",
	Long:  "SLAM — backend engine that grades math answers, names the misconception behind wrong ones, and awards XP and coins.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SLAM_DB env var)")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(misconceptionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SLAM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
