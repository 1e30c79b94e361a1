package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/workflows"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit a candidate profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile, creating the default one on first use",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identityFromFlags(cmd)
		if err != nil {
			return err
		}
		a := mustApp(cmd)

		ed := workflows.NewProfileEditor(a.Profiles, id, a.Log)
		p, err := ed.Load(cmd.Context())
		if err != nil {
			return err
		}
		renderProfile(cmd.OutOrStdout(), p)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit profile fields and save",
	Example: `  jobboard profile set --user-id 6f1c... --location Berlin --add-skill Go --add-skill SQL
  jobboard profile set --user-id 6f1c... --experience senior --remove-skill PHP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := identityFromFlags(cmd)
		if err != nil {
			return err
		}
		a := mustApp(cmd)

		ed := workflows.NewProfileEditor(a.Profiles, id, a.Log)
		if _, err := ed.Load(cmd.Context()); err != nil {
			return err
		}

		flags := cmd.Flags()
		ed.Update(func(p *models.Profile) {
			if flags.Changed("full-name") {
				p.FullName, _ = flags.GetString("full-name")
			}
			if flags.Changed("phone") {
				p.Phone, _ = flags.GetString("phone")
			}
			if flags.Changed("location") {
				p.Location, _ = flags.GetString("location")
			}
			if flags.Changed("experience") {
				lvl, _ := flags.GetString("experience")
				p.ExperienceLevel = models.ExperienceLevel(lvl)
			}
			if flags.Changed("resume-url") {
				p.ResumeURL, _ = flags.GetString("resume-url")
			}
		})
		add, _ := flags.GetStringArray("add-skill")
		for _, s := range add {
			ed.AddSkill(s)
		}
		remove, _ := flags.GetStringArray("remove-skill")
		for _, s := range remove {
			ed.RemoveSkill(s)
		}

		out := cmd.OutOrStdout()
		ed.OnSaved = func(p *models.Profile) {
			fmt.Fprintln(out, okStyle.Render("Profile updated successfully"))
			renderProfile(out, p)
		}
		return ed.Save(cmd.Context())
	},
}

func init() {
	for _, c := range []*cobra.Command{profileShowCmd, profileSetCmd} {
		addIdentityFlags(c)
	}

	f := profileSetCmd.Flags()
	f.String("full-name", "", "full name")
	f.String("phone", "", "phone number")
	f.String("location", "", "location")
	f.String("experience", "", "experience level: entry, mid-level, senior or executive")
	f.String("resume-url", "", "resume link")
	f.StringArray("add-skill", nil, "skill to add (repeatable)")
	f.StringArray("remove-skill", nil, "skill to remove (repeatable)")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
}
