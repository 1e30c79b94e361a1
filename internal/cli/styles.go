package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yoockh/jobboard/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func field(w io.Writer, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func renderProfile(w io.Writer, p *models.Profile) {
	fmt.Fprintln(w, titleStyle.Render("Profile"))
	field(w, "Full Name", p.FullName)
	field(w, "Email", p.Email)
	field(w, "Phone", p.Phone)
	field(w, "Location", p.Location)
	field(w, "Experience", string(p.ExperienceLevel))
	field(w, "Skills", strings.Join(p.Skills, ", "))
	field(w, "Resume", p.ResumeURL)
}
