package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nauta-treinamentos/nauta/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress across started courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
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

		ctx := cmd.Context()
		records, err := st.ProgressRepo().List(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No courses started yet. Run `nauta` to begin.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CURSO\tPROGRESSO\tSTATUS")
		for _, record := range records {
			name := record.CourseID
			if course, ok := cat.Course(record.CourseID); ok {
				name = course.Name
			}
			status := "em andamento"
			if record.IsCompleted {
				status = "concluído"
			}
			fmt.Fprintf(w, "%s\t%d%%\t%s\n", name, record.ProgressPercent, status)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		certs, err := st.CertificateRepo().List(ctx)
		if err != nil {
			return err
		}
		if len(certs) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\nCertificados: %d\n", len(certs))
			for _, cert := range certs {
				fmt.Fprintf(cmd.OutOrStdout(), "  🏅 %s (%s)\n", cert.CourseName, cert.IssuedAt.Format("02/01/2006"))
			}
		}
		return nil
	},
}
