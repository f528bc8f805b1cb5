package cmd

import (
	"github.com/nauta-treinamentos/nauta/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nauta",
	Short: "Terminal course player for offshore training",
	Long:  "Nauta Treinamentos — study offshore safety courses, take quizzes and earn certificates, all in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NAUTA_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON course catalog (defaults to the embedded catalog)")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NAUTA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
