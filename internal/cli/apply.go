package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/workflows"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Submit an application for a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identityFromFlags(cmd)
		if err != nil {
			return err
		}
		a := mustApp(cmd)

		form := workflows.NewApplicationForm(a.Applications, args[0], id.UserID, a.Log)
		cover, _ := cmd.Flags().GetString("cover-letter")
		form.SetCoverLetter(cover)

		out := cmd.OutOrStdout()
		form.OnSuccess = func(app *models.Application) {
			field(out, "Application", app.ID)
			field(out, "Status", string(app.Status))
		}

		if _, err := form.Submit(cmd.Context()); err != nil {
			if msg := form.Status().Message; msg != "" {
				return errors.New(msg)
			}
			return err
		}
		fmt.Fprintln(out, okStyle.Render(form.Status().Message))
		return nil
	},
}

func init() {
	addIdentityFlags(applyCmd)
	applyCmd.Flags().String("cover-letter", "", "optional cover letter")
}
