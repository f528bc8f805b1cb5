package cmd

import (
	"fmt"

	"github.com/nauta-treinamentos/nauta/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <course-id>",
	Short: "Reset progress for a course",
	Long:  "Deletes the stored progress for a course. Issued certificates are kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID := args[0]

		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		course, ok := cat.Course(courseID)
		if !ok {
			return fmt.Errorf("unknown course %q", courseID)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ProgressRepo().Delete(cmd.Context(), courseID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress for %q reset.\n", course.Name)
		return nil
	},
}
