package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCURSO\tCATEGORIA\tDURAÇÃO\tPREÇO\tAULAS")
		for _, course := range cat.Courses() {
			lessons := "-"
			if course.Playable() {
				lessons = fmt.Sprintf("%d", course.TotalLessons())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				course.ID, course.Name, course.Category, course.Duration, course.Price, lessons)
		}
		return w.Flush()
	},
}
