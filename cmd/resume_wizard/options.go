package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/wizard"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the values offered while filling in a resume",
	Long:  "Lists degree names, skill levels, skill categories and skill presets. Degree and category are free text in the resume file; these are the suggested values.",
	RunE:  runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(out, "Degrees:")
	for _, d := range types.Degrees {
		_, _ = fmt.Fprintf(out, "  - %s\n", d)
	}

	_, _ = fmt.Fprintln(out, "\nSkill levels (lowest to highest):")
	for _, l := range types.SkillLevels {
		_, _ = fmt.Fprintf(out, "  %d. %s\n", l.Rank(), l)
	}

	_, _ = fmt.Fprintln(out, "\nSkill categories:")
	for _, c := range wizard.SkillCategories {
		_, _ = fmt.Fprintf(out, "  - %s\n", c)
	}

	_, _ = fmt.Fprintln(out, "\nSkill presets (new --preset NAME):")
	for _, p := range wizard.SkillPresets {
		_, _ = fmt.Fprintf(out, "  - %s [%s]: %s\n", p.Name, p.Category, strings.Join(p.Skills, ", "))
	}
	return nil
}
