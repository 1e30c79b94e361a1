package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to the data store",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := mustApp(cmd)
		if !a.Seeder.ConnectionCheck(cmd.Context()) {
			return errors.New("database connection failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Database connection successful"))
		return nil
	},
}
