package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/yoockh/jobboard/internal/models"
)

func TestIdentityFromFlags(t *testing.T) {
	t.Setenv("JOBBOARD_USER_ID", "")
	t.Setenv("JOBBOARD_EMAIL", "env@example.com")
	t.Setenv("JOBBOARD_NAME", "")

	cmd := &cobra.Command{}
	addIdentityFlags(cmd)

	if _, err := identityFromFlags(cmd); err == nil {
		t.Fatal("expected error without user id")
	}

	if err := cmd.Flags().Set("user-id", "u-1"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("name", "Margaret"); err != nil {
		t.Fatal(err)
	}
	id, err := identityFromFlags(cmd)
	if err != nil {
		t.Fatal(err)
	}
	want := models.Identity{UserID: "u-1", Email: "env@example.com", FullName: "Margaret", Role: models.RoleUser}
	if id != want {
		t.Errorf("identity = %+v, want %+v", id, want)
	}
}

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	renderProfile(&buf, &models.Profile{
		FullName:        "Margaret Hamilton",
		Email:           "mh@example.com",
		Skills:          pq.StringArray{"Go", "SQL"},
		ExperienceLevel: models.LevelExecutive,
	})
	out := buf.String()
	for _, want := range []string{"Margaret Hamilton", "mh@example.com", "Go, SQL", "executive"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
