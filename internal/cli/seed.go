package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample companies and jobs into empty collections",
	Long: `seed inserts five sample companies when the companies collection is
empty, then five sample jobs when the jobs collection is empty. Job N is
attached to the Nth company returned by the store. Nothing is rolled back
when a step fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := mustApp(cmd)
		res, err := a.Seeder.Seed(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Database initialization complete"))
		field(out, "Companies inserted", fmt.Sprint(res.CompaniesInserted))
		field(out, "Jobs inserted", fmt.Sprint(res.JobsInserted))
		return nil
	},
}
